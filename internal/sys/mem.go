package sys

import "unsafe"

// The only place userland derives raw addresses for the trap boundary.
// Callers pair each use with runtime.KeepAlive on the backing value so
// the range stays valid for the duration of the synchronous trap.

func bytesAddr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func stringAddr(s string) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}
