// Command hello is the smallest user program: console output, process
// identity, a heap allocation round trip, and a short sleep.
package main

import (
	"os"

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

func run() int {
	if sys.PrintlnString("Hello from MTOS userspace!") != nil {
		return -1
	}

	pid := sys.Getpid()
	if sys.Println(text.Line("Process ID: {}", pid).Bytes()) != nil {
		return -1
	}

	if sys.PrintlnString("Testing memory allocation...") != nil {
		return -1
	}
	addr, err := sys.Malloc(1024)
	if err != nil {
		_ = sys.PrintlnString("Memory allocation failed!")
		return -1
	}
	_ = sys.PrintlnString("Memory allocation successful!")

	// Touch the region to prove it is usable.
	mem := proc.View(addr, 1)
	mem[0] = 0x42
	if mem[0] == 0x42 {
		_ = sys.PrintlnString("Memory write/read test passed!")
	}

	if sys.Free(addr) != nil {
		_ = sys.PrintlnString("Warning: Memory free failed")
	} else {
		_ = sys.PrintlnString("Memory freed successfully!")
	}

	_ = sys.PrintlnString("Sleeping for 100ms...")
	if sys.Sleep(100) != nil {
		_ = sys.PrintlnString("Sleep failed!")
	}

	if sys.PrintlnString("Hello world complete!") != nil {
		return -1
	}
	return 0
}
