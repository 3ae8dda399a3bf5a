package kernel

import (
	"unsafe"

	"github.com/mtos-project/userland/internal/abi"
)

// userBytes maps an (address, length) word pair from a trap frame back
// onto the caller's byte range. The caller's slice stays live for the
// whole synchronous trap, so the view is valid until the service
// returns. This is the kernel-side twin of the unsafe derivation in
// the facade; no other kernel code touches raw addresses.
func userBytes(addr, n uintptr) ([]byte, abi.Errno) {
	if n == 0 {
		return nil, 0
	}
	if addr == 0 {
		return nil, abi.EFAULT
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(n)), 0
}
