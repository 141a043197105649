package charformat

import (
	"errors"
	"fmt"
)

var (
	// ErrFaceNameTooLong is returned when a face name plus its terminator
	// does not fit in FaceSize UTF-16 code units.
	ErrFaceNameTooLong = errors.New("font face name too long")

	// ErrInvalidFaceName is returned for a face name that is not valid UTF-8.
	ErrInvalidFaceName = errors.New("font face name is not valid UTF-8")

	ErrShortRecord      = errors.New("record too short")
	ErrRecordSize       = errors.New("record size field mismatch")
	ErrUnknownEffect    = errors.New("unknown effect")
	ErrUnknownUnderline = errors.New("unknown underline type")
	ErrBadColor         = errors.New("invalid color")
)

// FaceNameError reports a face name that cannot be stored in a Record.
type FaceNameError struct {
	Name  string
	Units int // encoded length including the terminator
}

func (e *FaceNameError) Error() string {
	return fmt.Sprintf("font face name %q needs %d code units, limit is %d including terminator",
		e.Name, e.Units, FaceSize-1)
}

func (e *FaceNameError) Unwrap() error { return ErrFaceNameTooLong }
