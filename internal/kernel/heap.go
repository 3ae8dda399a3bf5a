package kernel

import (
	"sync"
	"unsafe"

	"github.com/mtos-project/userland/internal/abi"
	"github.com/mtos-project/userland/internal/trap"
)

// heap hands out regions keyed by their address. Blocks stay
// referenced here so the addresses remain valid until freed; the
// budget bounds total outstanding bytes, not block count.
type heap struct {
	mu     sync.Mutex
	limit  int
	used   int
	blocks map[uintptr][]byte
}

func newHeap(limit int) *heap {
	return &heap{
		limit:  limit,
		blocks: make(map[uintptr][]byte),
	}
}

func (h *heap) alloc(size int) (uintptr, abi.Errno) {
	if size <= 0 {
		return 0, abi.EINVAL
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.used+size > h.limit {
		return 0, abi.ENOMEM
	}
	block := make([]byte, size)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	h.blocks[addr] = block
	h.used += size
	return addr, 0
}

func (h *heap) free(addr uintptr) abi.Errno {
	h.mu.Lock()
	defer h.mu.Unlock()

	block, ok := h.blocks[addr]
	if !ok {
		return abi.EINVAL
	}
	delete(h.blocks, addr)
	h.used -= len(block)
	return 0
}

func (h *heap) stats() (used, blocks int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.used, len(h.blocks)
}

// sysmalloc returns the region address as the (positive) trap result.
// Addresses of live Go allocations are never zero or negative when
// widened through int, so the sign convention holds.
func (k *Kernel) sysmalloc(f trap.Frame) int {
	addr, errno := k.heap.alloc(int(f.Args[0]))
	if errno != 0 {
		return errno.Code()
	}
	used, blocks := k.heap.stats()
	k.metrics.HeapBytes.Set(float64(used))
	k.metrics.HeapBlocks.Set(float64(blocks))
	return int(addr)
}

func (k *Kernel) sysfree(f trap.Frame) int {
	if errno := k.heap.free(f.Args[0]); errno != 0 {
		return errno.Code()
	}
	used, blocks := k.heap.stats()
	k.metrics.HeapBytes.Set(float64(used))
	k.metrics.HeapBlocks.Set(float64(blocks))
	return 0
}
