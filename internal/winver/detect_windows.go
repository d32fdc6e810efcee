//go:build windows

package winver

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// osVersionInfo mirrors OSVERSIONINFOW.
type osVersionInfo struct {
	Size         uint32
	MajorVersion uint32
	MinorVersion uint32
	BuildNumber  uint32
	PlatformID   uint32
	CSDVersion   [128]uint16
}

// Detect queries ntdll!RtlGetVersion for the real OS version.
//
// The export is resolved on every call; nothing is cached. Detect returns
// false when ntdll.dll or the export cannot be resolved, or when the call
// reports a negative NTSTATUS.
func Detect() (Version, bool) {
	module, err := windows.LoadLibraryEx("ntdll.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return Version{}, false
	}
	proc, err := windows.GetProcAddress(module, "RtlGetVersion")
	if err != nil {
		return Version{}, false
	}

	var vi osVersionInfo
	vi.Size = uint32(unsafe.Sizeof(vi))

	status, _, _ := syscall.SyscallN(proc, uintptr(unsafe.Pointer(&vi)))
	if int32(status) < 0 {
		return Version{}, false
	}

	return Version{Major: vi.MajorVersion, Minor: vi.MinorVersion, Build: vi.BuildNumber}, true
}
