package charformat

import "sync"

// MemoryControl is an in-process Control holding the formatting of a
// single selection.  SendFormat merges only the fields named by the
// record's mask, the way a rich-edit control does, so callers can observe
// what a record would and would not change.
type MemoryControl struct {
	mu    sync.Mutex
	state Record
	sends int
}

// NewMemoryControl returns a control whose selection starts with the
// formatting in initial.  Fields of initial that are absent start at zero.
func NewMemoryControl(initial Format) (*MemoryControl, error) {
	m := &MemoryControl{state: NewRecord()}
	rec, err := EncodeRecord(initial)
	if err != nil {
		return nil, err
	}
	mergeRecord(&m.state, &rec)
	return m, nil
}

// SendFormat merges the masked fields of rec into the selection.  Scope is
// ignored: the control only has one range.
func (m *MemoryControl) SendFormat(_ Scope, rec *Record) error {
	if rec.Size != RecordSize {
		return ErrRecordSize
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	mergeRecord(&m.state, rec)
	m.sends++
	return nil
}

// QueryFormat copies the current selection formatting into rec.
func (m *MemoryControl) QueryFormat(_ Scope, rec *Record) error {
	if rec.Size != RecordSize {
		return ErrRecordSize
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	*rec = m.state
	rec.Mask = MaskEffects | MaskSize | MaskOffset | MaskColor | MaskFace | MaskUnderlineType
	return nil
}

// Snapshot returns a copy of the stored record.
func (m *MemoryControl) Snapshot() Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Sends returns how many records SendFormat has accepted.
func (m *MemoryControl) Sends() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sends
}

func mergeRecord(dst, src *Record) {
	// Effect bits are merged individually: only the effects named in the
	// mask are replaced.
	if bits := src.Mask & uint32(AllEffects) &^ MaskColor; bits != 0 {
		dst.Effects = dst.Effects&^bits | src.Effects&bits
	}
	if src.Mask&MaskSize != 0 {
		dst.Height = src.Height
	}
	if src.Mask&MaskOffset != 0 {
		dst.Offset = src.Offset
	}
	if src.Mask&MaskColor != 0 {
		dst.TextColor = src.TextColor
		dst.Effects = dst.Effects&^uint32(AutoColor) | src.Effects&uint32(AutoColor)
	}
	if src.Mask&MaskFace != 0 {
		dst.FaceName = src.FaceName
	}
	if src.Mask&MaskUnderlineType != 0 {
		dst.UnderlineType = src.UnderlineType
	}
}
