package trap

import (
	"github.com/mtos-project/userland/internal/abi"
)

// Frame is one marshaled trap invocation. Slot order is fixed: the
// service number rides in NR and arguments fill Args left to right.
// Byte ranges cross as (address, length) word pairs.
type Frame struct {
	NR    abi.Sysno
	Args  [3]uintptr
	NArgs int
}

// Handler services traps. It is the contract the kernel collaborator
// must satisfy: synchronous, blocking, one signed word back where a
// negative value is an error code.
type Handler interface {
	Trap(Frame) int
}

// The process-wide handler. Installed once before the entry trampoline
// runs and never swapped afterward; access is unsynchronized because
// the runtime is single-threaded by contract.
var handler Handler

// Install wires the kernel collaborator. Installing twice or installing
// nil is a wiring bug, not a runtime condition, so both panic.
func Install(h Handler) {
	if h == nil {
		panic("trap: nil handler")
	}
	if handler != nil {
		panic("trap: handler already installed")
	}
	handler = h
}

// Reset clears the installed handler. Only tests call this.
func Reset() { handler = nil }

// Installed reports whether a handler has been wired.
func Installed() bool { return handler != nil }

func dispatch(f Frame) int {
	h := handler
	if h == nil {
		panic("trap: no kernel handler installed")
	}
	return h.Trap(f)
}

// Syscall0 issues a zero-argument trap.
func Syscall0(nr abi.Sysno) int {
	return dispatch(Frame{NR: nr})
}

// Syscall1 issues a one-argument trap.
func Syscall1(nr abi.Sysno, a0 uintptr) int {
	return dispatch(Frame{NR: nr, Args: [3]uintptr{a0}, NArgs: 1})
}

// Syscall2 issues a two-argument trap.
func Syscall2(nr abi.Sysno, a0, a1 uintptr) int {
	return dispatch(Frame{NR: nr, Args: [3]uintptr{a0, a1}, NArgs: 2})
}

// Syscall3 issues a three-argument trap.
func Syscall3(nr abi.Sysno, a0, a1, a2 uintptr) int {
	return dispatch(Frame{NR: nr, Args: [3]uintptr{a0, a1, a2}, NArgs: 3})
}
