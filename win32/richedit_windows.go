//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/aerissecure/charformat"
)

const (
	wmUser = 0x0400

	EMGetCharFormat = wmUser + 58
	EMSetCharFormat = wmUser + 68
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSendMessageW = user32.NewProc("SendMessageW")
)

// HWND is a handle to a rich-edit window.
type HWND windows.HWND

var _ charformat.Control = HWND(0)

func (h HWND) send(msg uint32, wparam uintptr, rec *charformat.Record) (uintptr, error) {
	if h == 0 {
		return 0, ErrNullHandle
	}
	if err := procSendMessageW.Find(); err != nil {
		return 0, err
	}
	ret, _, _ := procSendMessageW.Call(uintptr(h), uintptr(msg), wparam, uintptr(unsafe.Pointer(rec)))
	return ret, nil
}

// SendFormat applies rec to scope.
func (h HWND) SendFormat(scope charformat.Scope, rec *charformat.Record) error {
	ret, err := h.send(EMSetCharFormat, uintptr(scope), rec)
	if err != nil {
		return err
	}
	if ret == 0 {
		return ErrSetRejected
	}
	return nil
}

// QueryFormat fills rec with the formatting of scope.  EM_GETCHARFORMAT
// only distinguishes the selection from the default format; any scope
// other than ScopeDefault reads the selection.
func (h HWND) QueryFormat(scope charformat.Scope, rec *charformat.Record) error {
	wparam := uintptr(charformat.ScopeSelection)
	if scope == charformat.ScopeDefault {
		wparam = uintptr(charformat.ScopeDefault)
	}
	_, err := h.send(EMGetCharFormat, wparam, rec)
	return err
}
