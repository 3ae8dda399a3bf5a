package abi

// Sysno identifies one kernel service. The values are part of the trap
// ABI and must never be reassigned: the kernel dispatches on the raw
// number, not on any shared type.
type Sysno uint32

const (
	SysExit           Sysno = 0
	SysPrint          Sysno = 1
	SysRead           Sysno = 2 // reserved, no userland wrapper
	SysWrite          Sysno = 3 // reserved, no userland wrapper
	SysGetPid         Sysno = 4
	SysSleep          Sysno = 5
	SysMalloc         Sysno = 6
	SysFree           Sysno = 7
	SysSendMessage    Sysno = 8
	SysReceiveMessage Sysno = 9
)

// NumSys is the size of the service table.
const NumSys = 10

var sysnames = [NumSys]string{
	"exit",
	"print",
	"read",
	"write",
	"getpid",
	"sleep",
	"malloc",
	"free",
	"send_message",
	"receive_message",
}

// Name returns the canonical service name, or "invalid" for numbers
// outside the table.
func (s Sysno) Name() string {
	if int(s) >= len(sysnames) {
		return "invalid"
	}
	return sysnames[s]
}

func (s Sysno) String() string { return s.Name() }
