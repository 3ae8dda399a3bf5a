// Command shell runs a scripted command loop: a fixed list of commands
// is parsed and executed against the kernel services. No real input is
// read; the session is a demonstration script.
package main

import (
	"os"
	"strings"

	"github.com/mtos-project/userland/internal/config"
	"github.com/mtos-project/userland/internal/kernel"
	"github.com/mtos-project/userland/internal/logging"
	"github.com/mtos-project/userland/internal/proc"
	"github.com/mtos-project/userland/internal/sys"
	"github.com/mtos-project/userland/internal/text"
	"github.com/mtos-project/userland/internal/trap"
)

func main() {
	cfg := config.LoadOrDefault()
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	trap.Install(kernel.New(cfg.Kernel, log))
	proc.Start(run)
}

func say(s string) { _ = sys.PrintlnString(s) }

var demoCommands = []string{
	"help",
	"info",
	"echo Hello MTOS!",
	"calc 15 + 27",
	"calc 100 / 7",
	"mem",
	"sleep 500",
	"exit",
}

func run() int {
	say("MTOS Simple Shell")
	say("====================")
	say("")

	var b text.Buffer
	b.Expand("Shell running as PID: {}", sys.Getpid())
	_ = sys.Println(b.Bytes())
	say("")

	say("Available commands:")
	say("  help     - Show this help message")
	say("  info     - Show system information")
	say("  echo <text> - Echo back the text")
	say("  calc <a> <op> <b> - Simple calculator")
	say("  sleep <ms> - Sleep for specified milliseconds")
	say("  mem      - Test memory allocation")
	say("  exit     - Exit the shell")
	say("")

	say("Simulating shell session:")
	say("")

	for _, command := range demoCommands {
		_ = sys.PrintString("mtos$ ")
		say(command)
		execute(command)
		say("")

		// Small delay between commands for demo effect.
		_ = sys.Sleep(200)
	}

	say("Shell session ended")
	return 0
}

func execute(command string) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "help":
		say("Shell Help:")
		say("This is a demonstration shell for MTOS.")
		say("It shows how userspace applications can")
		say("interact with the kernel through system calls.")

	case "info":
		say("System Information:")
		var b text.Buffer
		b.Expand("Current PID: {}", sys.Getpid())
		_ = sys.Println(b.Bytes())
		say("OS: MTOS (Modular Teaching OS)")
		say("Architecture: Educational x86")

	case "echo":
		var b text.Buffer
		for i, word := range args[1:] {
			if i > 0 {
				b.PutByte(' ')
			}
			b.WriteString(word)
		}
		_ = sys.Println(b.Bytes())

	case "calc":
		calc(args[1:])

	case "sleep":
		if len(args) != 2 {
			say("usage: sleep <ms>")
			return
		}
		ms, ok := text.ParseUint(args[1])
		if !ok {
			say("Invalid duration")
			return
		}
		var b text.Buffer
		b.Expand("Sleeping for {} ms...", ms)
		_ = sys.Println(b.Bytes())
		if sys.Sleep(ms) != nil {
			say("Sleep failed")
			return
		}
		say("Done")

	case "mem":
		addr, err := sys.Malloc(256)
		if err != nil {
			say("Allocation failed")
			return
		}
		say("Allocated 256 bytes")
		if sys.Free(addr) != nil {
			say("Free failed")
			return
		}
		say("Freed 256 bytes")

	case "exit":
		say("Goodbye!")

	default:
		say("Unknown command (try 'help')")
	}
}

func calc(args []string) {
	if len(args) != 3 {
		say("usage: calc <a> <op> <b>")
		return
	}
	a, okA := text.ParseUint(args[0])
	c, okB := text.ParseUint(args[2])
	if !okA || !okB {
		say("Invalid numbers")
		return
	}

	var r uint32
	switch op := args[1]; op {
	case "+":
		r = a + c
	case "-":
		if a < c {
			say("Invalid operation or negative result")
			return
		}
		r = a - c
	case "*":
		r = a * c
	case "/":
		if c == 0 {
			say("Invalid operation or division by zero")
			return
		}
		r = a / c
	case "%":
		if c == 0 {
			say("Invalid operation or division by zero")
			return
		}
		r = a % c
	default:
		say("Unknown operator")
		return
	}

	var b text.Buffer
	b.WriteUint(a)
	b.PutByte(' ')
	b.WriteString(args[1])
	b.PutByte(' ')
	b.WriteUint(c)
	b.WriteString(" = ")
	b.WriteUint(r)
	_ = sys.Println(b.Bytes())
}
