// Package trap is the single crossing point between userland and the
// kernel collaborator.
//
// A trap carries a service identifier and up to three machine-word
// arguments in fixed slots, and returns one signed machine word. The
// four call shapes (Syscall0 through Syscall3) are the only code that
// builds frames and invokes the installed handler, so the argument
// convention lives in exactly one place. The package performs no
// validation, no retries, and no interpretation of results.
package trap
