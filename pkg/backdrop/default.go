package backdrop

// defaultApplier issues real OS calls.
var defaultApplier = NewApplier(NativeSystem())

// ApplyBlur enables blur behind hwnd. See Applier.ApplyBlur.
func ApplyBlur(hwnd HWND) { defaultApplier.ApplyBlur(hwnd) }

// ClearBlur reverts ApplyBlur.
func ClearBlur(hwnd HWND) { defaultApplier.ClearBlur(hwnd) }

// ApplyAcrylic applies acrylic to hwnd. See Applier.ApplyAcrylic.
func ApplyAcrylic(hwnd HWND) { defaultApplier.ApplyAcrylic(hwnd) }

// ClearAcrylic reverts ApplyAcrylic.
func ClearAcrylic(hwnd HWND) { defaultApplier.ClearAcrylic(hwnd) }

// ApplyMica applies Mica to hwnd with a dark or light title bar. See Applier.ApplyMica.
func ApplyMica(hwnd HWND, dark bool) { defaultApplier.ApplyMica(hwnd, dark) }

// ClearMica reverts ApplyMica.
func ClearMica(hwnd HWND) { defaultApplier.ClearMica(hwnd) }

// ApplyTabbed applies the tabbed material to hwnd. See Applier.ApplyTabbed.
func ApplyTabbed(hwnd HWND, dark bool) { defaultApplier.ApplyTabbed(hwnd, dark) }

// ClearTabbed reverts ApplyTabbed.
func ClearTabbed(hwnd HWND) { defaultApplier.ClearTabbed(hwnd) }
