package sys

import (
	"runtime"

	"github.com/mtos-project/userland/internal/abi"
	"github.com/mtos-project/userland/internal/trap"
)

// errno converts a raw trap result into the wrapper error contract.
func errno(r int) error {
	if r < 0 {
		return abi.Errno(r)
	}
	return nil
}

// Print transmits b to the console. The kernel transmits the whole
// range or reports failure; there is no partial-write indication.
func Print(b []byte) error {
	r := trap.Syscall2(abi.SysPrint, bytesAddr(b), uintptr(len(b)))
	runtime.KeepAlive(b)
	return errno(r)
}

// PrintString is Print for string data, avoiding a copy.
func PrintString(s string) error {
	r := trap.Syscall2(abi.SysPrint, stringAddr(s), uintptr(len(s)))
	runtime.KeepAlive(s)
	return errno(r)
}

// Println transmits b followed by a newline. The newline is sent even
// when the first transmission failed; the first failure wins.
func Println(b []byte) error {
	err := Print(b)
	if nlErr := PrintString("\n"); err == nil {
		err = nlErr
	}
	return err
}

// PrintlnString is Println for string data.
func PrintlnString(s string) error {
	err := PrintString(s)
	if nlErr := PrintString("\n"); err == nil {
		err = nlErr
	}
	return err
}

// Exit hands code to the kernel and terminates the process. It never
// returns: the kernel retires the process before the trap completes,
// and the trailing panic marks the path unreachable rather than
// trusting that promise alone.
func Exit(code int) {
	trap.Syscall1(abi.SysExit, uintptr(code))
	panic("sys: exit returned")
}

// Getpid reports the identity of the calling process. The service is
// defined to always succeed, so no error path is modeled.
func Getpid() uint32 {
	return uint32(trap.Syscall0(abi.SysGetPid))
}

// Sleep suspends the caller for roughly ms milliseconds. Failure is
// reported without retry.
func Sleep(ms uint32) error {
	return errno(trap.Syscall1(abi.SysSleep, uintptr(ms)))
}

// Malloc requests a region of at least size bytes. Ownership of the
// returned handle passes to the caller and must be returned exactly
// once via Free. A non-positive result, including zero, is an
// allocation failure: a null handle is never a usable region.
func Malloc(size int) (uintptr, error) {
	r := trap.Syscall1(abi.SysMalloc, uintptr(size))
	if r <= 0 {
		return 0, abi.Errno(r)
	}
	return uintptr(r), nil
}

// Free returns a region previously obtained from Malloc. Freeing twice
// or using the handle afterward is undefined by contract; the runtime
// does not guard against it.
func Free(addr uintptr) error {
	return errno(trap.Syscall1(abi.SysFree, addr))
}

// Send delivers msg to the process identified by dest. The bounded
// length travels with the address as part of the call contract.
func Send(dest uint32, msg []byte) error {
	r := trap.Syscall3(abi.SysSendMessage, uintptr(dest), bytesAddr(msg), uintptr(len(msg)))
	runtime.KeepAlive(msg)
	return errno(r)
}

// Receive blocks until a message arrives, copies its payload into buf,
// and reports the sender and payload length from the packed result.
func Receive(buf []byte) (abi.Receipt, error) {
	r := trap.Syscall2(abi.SysReceiveMessage, bytesAddr(buf), uintptr(len(buf)))
	runtime.KeepAlive(buf)
	if r < 0 {
		return abi.Receipt{}, abi.Errno(r)
	}
	return abi.UnpackReceipt(r), nil
}
