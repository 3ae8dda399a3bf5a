package proc

import (
	"runtime"
	"strings"

	"github.com/mtos-project/userland/internal/sys"
	"github.com/mtos-project/userland/internal/text"
)

// faultStatus is the exit code of a process retired by the fault path.
const faultStatus = -1

// Start is the process entry trampoline: it runs body and forwards the
// returned status verbatim to the exit service. If body panics, the
// fault is reported best-effort and the process exits with
// faultStatus. Start never returns; the exit service retires the
// process on every path.
func Start(body func() int) {
	code, f := runBody(body)
	if f != nil {
		f.report()
		sys.Exit(faultStatus)
	}
	sys.Exit(code)
}

// fault captures a recovered panic. The source location must be
// resolved at recovery time, while the panic frames are still on the
// stack.
type fault struct {
	reason  any
	file    string
	line    int
	located bool
}

func runBody(body func() int) (code int, f *fault) {
	defer func() {
		if r := recover(); r != nil {
			file, line, ok := panicOrigin()
			f = &fault{reason: r, file: file, line: line, located: ok}
		}
	}()
	return body(), nil
}

// report prints the fault reason and, when recoverable, its source
// location. Reporting is best-effort: a console failure here must not
// keep the process from exiting.
func (f *fault) report() {
	var b text.Buffer
	b.WriteString("PANIC: ")
	b.WriteString(reasonText(f.reason))
	_ = sys.Println(b.Bytes())

	if f.located {
		b.Reset()
		b.WriteString("  at ")
		b.WriteString(f.file)
		b.PutByte(':')
		b.WriteUint(uint32(f.line))
		_ = sys.Println(b.Bytes())
	}
}

// reasonText renders a panic value. Non-textual reasons collapse to a
// fixed placeholder rather than dragging a formatter into the exit
// path.
func reasonText(v any) string {
	switch r := v.(type) {
	case string:
		return r
	case error:
		return r.Error()
	default:
		return "(no message)"
	}
}

// panicOrigin walks the stack below the panic machinery and returns
// the first frame that belongs to user code.
func panicOrigin() (file string, line int, ok bool) {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if fr.Function != "" &&
			!strings.HasPrefix(fr.Function, "runtime.") &&
			!strings.Contains(fr.Function, "internal/proc.") {
			return fr.File, fr.Line, true
		}
		if !more {
			return "", 0, false
		}
	}
}
