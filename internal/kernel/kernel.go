package kernel

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mtos-project/userland/internal/abi"
	"github.com/mtos-project/userland/internal/config"
	"github.com/mtos-project/userland/internal/logging"
	"github.com/mtos-project/userland/internal/monitoring"
	"github.com/mtos-project/userland/internal/trap"
)

// Kernel services traps for a single user process.
type Kernel struct {
	cfg      config.KernelConfig
	log      *logging.Logger
	metrics  *monitoring.Metrics
	registry *prometheus.Registry

	console io.Writer
	pid     uint32
	bootID  uuid.UUID

	heap *heap
	mail *mailboxes

	terminate func(code int)
}

// Option adjusts kernel construction.
type Option func(*Kernel)

// WithConsole redirects console service output (default os.Stdout).
func WithConsole(w io.Writer) Option {
	return func(k *Kernel) { k.console = w }
}

// WithTerminate overrides process termination (default os.Exit).
// Tests install hooks here to observe exit codes.
func WithTerminate(fn func(code int)) Option {
	return func(k *Kernel) { k.terminate = fn }
}

// New builds a kernel for one process. The pid must fit the 16-bit
// sender field of the message receipt; values that do not are masked.
func New(cfg config.KernelConfig, log *logging.Logger, opts ...Option) *Kernel {
	reg := prometheus.NewRegistry()
	k := &Kernel{
		cfg:       cfg,
		log:       log,
		metrics:   monitoring.New(reg),
		registry:  reg,
		console:   os.Stdout,
		pid:       cfg.Pid & abi.MaxSender,
		bootID:    uuid.New(),
		heap:      newHeap(cfg.HeapLimit),
		mail:      newMailboxes(cfg.MailboxCap),
		terminate: os.Exit,
	}
	for _, opt := range opts {
		opt(k)
	}

	k.log.Info("kernel ready",
		zap.String("boot_id", k.bootID.String()),
		zap.Uint32("pid", k.pid),
		zap.Int("heap_limit", cfg.HeapLimit),
		zap.Int("mailbox_cap", cfg.MailboxCap))
	return k
}

// Registry exposes the per-instance metrics registry for scraping.
func (k *Kernel) Registry() *prometheus.Registry { return k.registry }

// Pid reports the identity assigned to the served process.
func (k *Kernel) Pid() uint32 { return k.pid }

// sysent maps each service identifier to its implementation. Slots are
// positional: the index is the wire number and must stay that way.
var sysent = [abi.NumSys]func(*Kernel, trap.Frame) int{
	abi.SysExit:           (*Kernel).sysexit,
	abi.SysPrint:          (*Kernel).sysprint,
	abi.SysRead:           (*Kernel).sysreserved,
	abi.SysWrite:          (*Kernel).sysreserved,
	abi.SysGetPid:         (*Kernel).sysgetpid,
	abi.SysSleep:          (*Kernel).syssleep,
	abi.SysMalloc:         (*Kernel).sysmalloc,
	abi.SysFree:           (*Kernel).sysfree,
	abi.SysSendMessage:    (*Kernel).syssend,
	abi.SysReceiveMessage: (*Kernel).sysreceive,
}

// Trap services one invocation from the transport primitive.
func (k *Kernel) Trap(f trap.Frame) int {
	if int(f.NR) >= len(sysent) {
		return abi.ENOSYS.Code()
	}

	start := time.Now()
	r := sysent[f.NR](k, f)
	k.metrics.ObserveTrap(f.NR.Name(), r, time.Since(start))

	if k.cfg.Trace {
		k.log.Debug("trap",
			zap.Stringer("service", f.NR),
			zap.Int("nargs", f.NArgs),
			zap.Int("result", r))
	}
	return r
}

func (k *Kernel) sysexit(f trap.Frame) int {
	code := int(f.Args[0])
	k.log.Info("process exit", zap.Uint32("pid", k.pid), zap.Int("code", code))
	k.terminate(code)
	// Reached only under a test terminate hook.
	return 0
}

func (k *Kernel) sysgetpid(trap.Frame) int {
	return int(k.pid)
}

func (k *Kernel) syssleep(f trap.Frame) int {
	ms := uint32(f.Args[0])
	if ms > k.cfg.MaxSleepMs {
		ms = k.cfg.MaxSleepMs
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return 0
}

func (k *Kernel) sysreserved(trap.Frame) int {
	return abi.ENOSYS.Code()
}
