// Package win32 connects the codec to a live rich-edit control.
//
// HWND implements charformat.Control by sending EM_SETCHARFORMAT and
// EM_GETCHARFORMAT to the window.  Both messages are synchronous; callers
// must use the HWND from the thread that owns the window.
package win32

import "errors"

var (
	// ErrNullHandle is returned for a zero window handle.
	ErrNullHandle = errors.New("win32: null window handle")
	// ErrSetRejected is returned when the control reports that it did not
	// apply a formatting record.
	ErrSetRejected = errors.New("win32: EM_SETCHARFORMAT rejected")
)
