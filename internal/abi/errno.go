package abi

import "strconv"

// Errno is a kernel error code carried in a negative trap result. The
// facade treats the value as an opaque diagnostic: it reports the code
// to the caller and never branches on it.
type Errno int

const (
	EPERM    Errno = -1  // operation not permitted
	ENOENT   Errno = -2  // no such process or object
	EIO      Errno = -5  // console transmission failed
	EAGAIN   Errno = -11 // mailbox full
	ENOMEM   Errno = -12 // heap exhausted
	EFAULT   Errno = -14 // bad user address range
	EINVAL   Errno = -22 // invalid argument
	ENOSYS   Errno = -38 // service not implemented
	EMSGSIZE Errno = -90 // message exceeds size limit
)

var errnames = map[Errno]string{
	EPERM:    "operation not permitted",
	ENOENT:   "no such process or object",
	EIO:      "i/o error",
	EAGAIN:   "resource temporarily unavailable",
	ENOMEM:   "out of memory",
	EFAULT:   "bad address",
	EINVAL:   "invalid argument",
	EMSGSIZE: "message too long",
	ENOSYS:   "service not implemented",
}

func (e Errno) Error() string {
	if s, ok := errnames[e]; ok {
		return s
	}
	return "errno " + strconv.Itoa(int(e))
}

// Code returns the raw signed code as it crossed the boundary.
func (e Errno) Code() int { return int(e) }
