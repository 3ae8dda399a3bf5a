// Package abi defines the contract shared between userland and the kernel.
//
// Both sides compile against this numbering independently, so nothing in
// this package may be renumbered once assigned:
//   - Sysno: the closed set of kernel service identifiers (0-9)
//   - Errno: kernel error codes, returned as negative trap results
//   - Receipt: the packed sender/length word returned by message receipt
//
// The package holds constants and pure conversions only; it performs no
// traps and keeps no state.
package abi
