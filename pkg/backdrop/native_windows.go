//go:build windows

package backdrop

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yourusername/window-backdrop/internal/winver"
)

var (
	dwmapi                        = windows.NewLazySystemDLL("dwmapi.dll")
	procDwmEnableBlurBehindWindow = dwmapi.NewProc("DwmEnableBlurBehindWindow")
	procDwmSetWindowAttribute     = dwmapi.NewProc("DwmSetWindowAttribute")
)

const dwmBBEnable = 0x00000001

// dwmBlurBehind mirrors DWM_BLURBEHIND.
type dwmBlurBehind struct {
	Flags                 uint32
	Enable                int32
	RgnBlur               windows.Handle
	TransitionOnMaximized int32
}

// windowCompositionAttribData mirrors WINDOWCOMPOSITIONATTRIBDATA.
type windowCompositionAttribData struct {
	Attrib uint32
	Data   unsafe.Pointer
	Size   uintptr
}

type nativeSystem struct{}

// NativeSystem returns the System that calls into Windows.
func NativeSystem() System {
	return nativeSystem{}
}

func (nativeSystem) Version() (winver.Version, bool) {
	return winver.Detect()
}

func (nativeSystem) EnableBlurBehind(hwnd HWND, enable bool) error {
	if err := procDwmEnableBlurBehindWindow.Find(); err != nil {
		return fmt.Errorf("DwmEnableBlurBehindWindow: %w", ErrProcNotFound)
	}

	bb := dwmBlurBehind{Flags: dwmBBEnable}
	if enable {
		bb.Enable = 1
	}

	hr, _, _ := procDwmEnableBlurBehindWindow.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&bb)))
	return hresult("DwmEnableBlurBehindWindow", hr)
}

func (nativeSystem) SetWindowAttribute(hwnd HWND, attr WindowAttribute, value uint32) error {
	if err := procDwmSetWindowAttribute.Find(); err != nil {
		return fmt.Errorf("DwmSetWindowAttribute: %w", ErrProcNotFound)
	}

	hr, _, _ := procDwmSetWindowAttribute.Call(
		uintptr(hwnd),
		uintptr(attr),
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
	return hresult("DwmSetWindowAttribute", hr)
}

// SetAccentPolicy resolves SetWindowCompositionAttribute on every call. The
// return value of the call carries no useful information and is dropped.
func (nativeSystem) SetAccentPolicy(hwnd HWND, policy AccentPolicy) error {
	proc, ok := lookupProc("user32.dll", "SetWindowCompositionAttribute")
	if !ok {
		return ErrProcNotFound
	}

	data := windowCompositionAttribData{
		Attrib: uint32(AttrAccentPolicy),
		Data:   unsafe.Pointer(&policy),
		Size:   unsafe.Sizeof(policy),
	}
	syscall.SyscallN(proc, uintptr(hwnd), uintptr(unsafe.Pointer(&data)))
	return nil
}

// lookupProc loads a system library and resolves an export by name. The
// module is left loaded. Names must not contain NUL bytes; that is a
// programming error, not a lookup failure.
func lookupProc(library, name string) (uintptr, bool) {
	if strings.IndexByte(library, 0) >= 0 || strings.IndexByte(name, 0) >= 0 {
		panic(fmt.Sprintf("backdrop: NUL byte in lookup of %q from %q", name, library))
	}

	module, err := windows.LoadLibraryEx(library, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return 0, false
	}
	proc, err := windows.GetProcAddress(module, name)
	if err != nil || proc == 0 {
		return 0, false
	}
	return proc, true
}
