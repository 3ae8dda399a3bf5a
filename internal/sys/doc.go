// Package sys provides the typed userland wrappers over the kernel
// services: console output, process identity, timed suspension, heap
// allocation, and message passing.
//
// Every wrapper follows the same decoding rule: a non-negative trap
// result is success and a negative one is failure, surfaced as an
// abi.Errno. The one exception is Malloc, where a non-positive result
// is always failure because a null region handle is unusable. Wrappers
// never retry and never branch on specific error codes.
//
// Example:
//
//	addr, err := sys.Malloc(256)
//	if err != nil {
//		return err
//	}
//	defer sys.Free(addr)
package sys
