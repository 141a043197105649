package charformat

import "fmt"

// Scope selects the text range a formatting command applies to.
type Scope uint32

const (
	ScopeDefault   Scope = 0
	ScopeSelection Scope = 1
	ScopeWord      Scope = 2
	ScopeAll       Scope = 4
)

// Control is a rich-text control able to apply and report character
// formatting.  Implementations own the control handle and its threading
// rules; the codec only hands them records.
type Control interface {
	// SendFormat applies rec to the given scope and returns once the
	// control has processed it.
	SendFormat(scope Scope, rec *Record) error
	// QueryFormat fills rec with the current formatting of the scope.
	// rec arrives zeroed with Size set.
	QueryFormat(scope Scope, rec *Record) error
}

var underlineCodes = [...]uint8{
	UnderlineNone:        0,
	UnderlineSolid:       1,
	UnderlineDash:        5,
	UnderlineDashDot:     6,
	UnderlineDashDotDot:  7,
	UnderlineDotted:      4,
	UnderlineDoubleSolid: 3,
	UnderlineWave:        8,
}

// underlineFromCode maps a native code back to a style.  Code 0 and codes
// outside the table have no abstract counterpart.
func underlineFromCode(code uint8) (UnderlineType, bool) {
	if code == 0 {
		return 0, false
	}
	for u, c := range underlineCodes {
		if c == code {
			return UnderlineType(u), true
		}
	}
	return 0, false
}

// EncodeRecord builds the native record for f.  Only present fields get a
// mask bit; everything the format does not model is left zero.  Encoding
// fails for a face name that does not fit the record or is not valid UTF-8,
// and for an underline type outside the native table.
func EncodeRecord(f Format) (Record, error) {
	rec := Record{Size: RecordSize}

	if f.Effects != nil {
		rec.Mask |= MaskEffects
		rec.Effects = uint32(*f.Effects)
	}
	if f.Height != nil {
		rec.Mask |= MaskSize
		rec.Height = *f.Height
	}
	if f.YOffset != nil {
		rec.Mask |= MaskOffset
		rec.Offset = *f.YOffset
	}
	if f.TextColor != nil {
		rec.Mask |= MaskColor
		rec.TextColor = f.TextColor.Pack()
	}
	if f.FaceName != nil {
		if err := putFaceName(&rec.FaceName, *f.FaceName); err != nil {
			return Record{}, err
		}
		rec.Mask |= MaskFace
	}
	if f.Underline != nil {
		if int(*f.Underline) >= len(underlineCodes) {
			return Record{}, fmt.Errorf("%w: %v", ErrUnknownUnderline, *f.Underline)
		}
		rec.Mask |= MaskUnderlineType
		rec.UnderlineType = underlineCodes[*f.Underline]
	}
	return rec, nil
}

// DecodeRecord translates a record reported by a control.  The query path
// carries no reliable presence mask, so presence is inferred from values:
// effects are always present, and a zero height, offset or color, an empty
// face name, or an underline code of 0 (or one outside the table) are
// reported as absent.
func DecodeRecord(rec *Record) Format {
	var f Format
	f.SetEffects(Effects(rec.Effects) & AllEffects)
	if rec.Height != 0 {
		f.SetHeight(rec.Height)
	}
	if rec.Offset != 0 {
		f.SetYOffset(rec.Offset)
	}
	if rec.TextColor != 0 {
		f.SetTextColor(UnpackColor(rec.TextColor))
	}
	if rec.FaceName[0] != 0 {
		f.SetFaceName(rec.FaceNameString())
	}
	if u, ok := underlineFromCode(rec.UnderlineType); ok {
		f.SetUnderline(u)
	}
	return f
}

// Apply formats the current selection of c with f.  Encoding errors are
// reported before c is touched.  Errors from c are returned as
// they are.
func Apply(c Control, f Format) error {
	return ApplyScope(c, ScopeSelection, f)
}

// ApplyScope is Apply with an explicit scope.
func ApplyScope(c Control, scope Scope, f Format) error {
	rec, err := EncodeRecord(f)
	if err != nil {
		return err
	}
	return c.SendFormat(scope, &rec)
}

// MustApply is like Apply but panics if f cannot be encoded.  Control
// errors are still returned.
func MustApply(c Control, f Format) error {
	rec, err := EncodeRecord(f)
	if err != nil {
		panic("charformat: " + err.Error())
	}
	return c.SendFormat(ScopeSelection, &rec)
}

// Query reads the formatting of the current selection of c.
func Query(c Control) (Format, error) {
	rec := NewRecord()
	if err := c.QueryFormat(ScopeSelection, &rec); err != nil {
		return Format{}, err
	}
	return DecodeRecord(&rec), nil
}
