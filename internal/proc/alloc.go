package proc

import (
	"unsafe"

	"github.com/mtos-project/userland/internal/sys"
)

// Allocator answers generic allocation requests by delegating to the
// kernel heap service. Failure comes back as a zero handle, never a
// fault; the caller decides what an exhausted heap means.
type Allocator struct{}

// Heap is the process-wide allocator. It is installed for the life of
// the process and never swapped.
var Heap Allocator

// Alloc requests at least size bytes and returns the region handle,
// or zero when the kernel declines.
func (Allocator) Alloc(size int) uintptr {
	addr, err := sys.Malloc(size)
	if err != nil {
		return 0
	}
	return addr
}

// Release returns a region to the kernel. Errors are dropped: the
// generic allocation contract has no channel for them and the handle
// is dead to the caller either way.
func (Allocator) Release(addr uintptr) {
	_ = sys.Free(addr)
}

// View exposes the n-byte region at addr as a byte slice. addr must be
// a live allocation handle; the view dies with the region.
func View(addr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}
