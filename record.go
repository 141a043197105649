package charformat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Record layout (CHARFORMAT2W, little-endian, 116 bytes):
//
//	 0  Size            uint32
//	 4  Mask            uint32
//	 8  Effects         uint32
//	12  Height          int32
//	16  Offset          int32
//	20  TextColor       uint32  R | G<<8 | B<<16
//	24  CharSet         uint8
//	25  PitchAndFamily  uint8
//	26  FaceName        [32]uint16, NUL terminated, zero padded
//	90  Weight          uint16
//	92  Spacing         int16
//	94  (padding)       2 bytes
//	96  BackColor       uint32
//	100 LCID            uint32
//	104 Reserved        uint32
//	108 Style           int16
//	110 Kerning         uint16
//	112 UnderlineType   uint8
//	113 Animation       uint8
//	114 RevAuthor       uint8
//	115 UnderlineColor  uint8
const (
	RecordSize = 116
	FaceSize   = 32 // capacity of FaceName in UTF-16 code units
)

// Mask bits.  MaskEffects requests every effect the codec models at once,
// and shares its top bit with MaskColor.
const (
	MaskEffects       uint32 = 0x001 | 0x002 | 0x004 | 0x008 | 0x010 | 0x020 | 0x40000000
	MaskSize          uint32 = 0x80000000
	MaskOffset        uint32 = 0x10000000
	MaskColor         uint32 = 0x40000000
	MaskFace          uint32 = 0x20000000
	MaskUnderlineType uint32 = 0x00800000
)

// Record is the native formatting record exchanged with a Control.  Its
// field order and sizes are the external binary contract; the Go memory
// layout matches it as well, so a *Record may be handed to the host
// control directly.
type Record struct {
	Size           uint32
	Mask           uint32
	Effects        uint32
	Height         int32
	Offset         int32
	TextColor      uint32
	CharSet        uint8
	PitchAndFamily uint8
	FaceName       [FaceSize]uint16
	Weight         uint16
	Spacing        int16
	_              [2]byte
	BackColor      uint32
	LCID           uint32
	Reserved       uint32
	Style          int16
	Kerning        uint16
	UnderlineType  uint8
	Animation      uint8
	RevAuthor      uint8
	UnderlineColor uint8
}

// NewRecord returns a zero record with Size set, ready to be filled by a
// query.
func NewRecord() Record {
	return Record{Size: RecordSize}
}

// MarshalBinary encodes the record in its 116-byte wire layout.
func (r *Record) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(RecordSize)
	if err := binary.Write(&buf, binary.LittleEndian, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a record from its wire layout.  The embedded
// Size field must equal RecordSize.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) < RecordSize {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrShortRecord, len(data), RecordSize)
	}
	var rec Record
	if err := binary.Read(bytes.NewReader(data[:RecordSize]), binary.LittleEndian, &rec); err != nil {
		return err
	}
	if rec.Size != RecordSize {
		return fmt.Errorf("%w: %d", ErrRecordSize, rec.Size)
	}
	*r = rec
	return nil
}

// FaceNameString returns the face name buffer up to the first NUL.
func (r *Record) FaceNameString() string {
	n := 0
	for n < len(r.FaceName) && r.FaceName[n] != 0 {
		n++
	}
	return string(utf16.Decode(r.FaceName[:n]))
}

// putFaceName copies name into the face buffer, left-aligned and
// zero-padded.  The encoded name plus its terminator must fit in FaceSize
// units; anything longer is refused rather than truncated.  Invalid UTF-8
// is refused too.
func putFaceName(dst *[FaceSize]uint16, name string) error {
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFaceName, name)
	}
	units := utf16.Encode([]rune(name))
	if len(units)+1 >= FaceSize {
		return &FaceNameError{Name: name, Units: len(units) + 1}
	}
	*dst = [FaceSize]uint16{}
	copy(dst[:], units)
	return nil
}
