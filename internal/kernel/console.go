package kernel

import (
	"go.uber.org/zap"

	"github.com/mtos-project/userland/internal/abi"
	"github.com/mtos-project/userland/internal/trap"
)

// sysprint transmits the caller's byte range to the console. The whole
// range goes out or the call fails; there is no partial-write report.
func (k *Kernel) sysprint(f trap.Frame) int {
	b, errno := userBytes(f.Args[0], f.Args[1])
	if errno != 0 {
		return errno.Code()
	}
	if len(b) == 0 {
		return 0
	}
	if _, err := k.console.Write(b); err != nil {
		k.log.Warn("console write failed", zap.Error(err))
		return abi.EIO.Code()
	}
	return 0
}
