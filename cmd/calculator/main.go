// Command calculator is a scripted arithmetic demo: basic operations,
// factorial, fibonacci, primality, and a heap exercise, all through
// the kernel services.
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

func say(s string) { _ = sys.PrintlnString(s) }

func sayLine(b *text.Buffer) {
	_ = sys.Println(b.Bytes())
	b.Reset()
}

func run() int {
	say("MTOS Calculator Application")
	say("==============================")
	say("")

	var b text.Buffer
	b.Expand("Running as PID: {}", sys.Getpid())
	sayLine(&b)
	say("")

	say("Basic Arithmetic Operations:")
	const x, y uint32 = 42, 17

	b.WriteString("Numbers: ")
	b.WriteUint(x)
	b.WriteString(" and ")
	b.WriteUint(y)
	sayLine(&b)

	binary(&b, "Addition", x, '+', y, x+y)
	binary(&b, "Subtraction", x, '-', y, x-y)
	binary(&b, "Multiplication", x, '*', y, x*y)

	b.WriteString("Division: ")
	b.WriteUint(x)
	b.WriteString(" / ")
	b.WriteUint(y)
	b.WriteString(" = ")
	b.WriteUint(x / y)
	b.WriteString(" remainder ")
	b.WriteUint(x % y)
	sayLine(&b)
	say("")

	say("Advanced Operations:")
	b.WriteString("Square of ")
	b.WriteUint(x)
	b.WriteString(": ")
	b.WriteUint(x * x)
	sayLine(&b)

	b.WriteString("Cube of ")
	b.WriteUint(x)
	b.WriteString(": ")
	b.WriteUint(x * x * x)
	sayLine(&b)

	b.WriteString("Factorial of 5: ")
	b.WriteUint(factorial(5))
	sayLine(&b)

	say("")
	say("Fibonacci Sequence (first 10 numbers):")
	for i := uint32(0); i < 10; i++ {
		b.WriteString("F(")
		b.WriteUint(i)
		b.WriteString(") = ")
		b.WriteUint(fibonacci(i))
		sayLine(&b)
	}

	say("")
	say("Prime Number Analysis:")
	for n := uint32(2); n < 20; n++ {
		if isPrime(n) {
			b.Expand("{} is prime", n)
			sayLine(&b)
		}
	}

	say("")
	say("Memory Operations:")
	if addr, err := sys.Malloc(256); err == nil {
		say("Allocated 256 bytes for calculations")
		if sys.Free(addr) == nil {
			say("Memory freed successfully")
		} else {
			say("Failed to free memory")
		}
	} else {
		say("Memory allocation failed")
	}

	say("")
	say("Calculator operations completed successfully!")
	return 0
}

func binary(b *text.Buffer, name string, x uint32, op byte, y, r uint32) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteUint(x)
	b.PutByte(' ')
	b.PutByte(op)
	b.PutByte(' ')
	b.WriteUint(y)
	b.WriteString(" = ")
	b.WriteUint(r)
	sayLine(b)
}

func factorial(n uint32) uint32 {
	r := uint32(1)
	for i := uint32(2); i <= n; i++ {
		r *= i
	}
	return r
}

func fibonacci(n uint32) uint32 {
	a, b := uint32(0), uint32(1)
	for i := uint32(0); i < n; i++ {
		a, b = b, a+b
	}
	return a
}

func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	for d := uint32(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
