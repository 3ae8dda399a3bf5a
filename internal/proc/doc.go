// Package proc supplies the lifecycle glue every user program needs:
// the entry trampoline that runs the program body and forwards its
// status to the exit service, the fault path that reports a panic and
// terminates through the same exit service, and the process-wide
// allocator that delegates to the kernel heap.
package proc
