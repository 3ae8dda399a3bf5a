// Package kernel is the in-process reference implementation of the
// trap handler contract. It services the ten kernel identifiers:
// console output to a configurable writer, a fixed process identity,
// timed suspension, a bounded heap keyed by region address, and
// bounded per-process mailboxes with the packed sender/length receipt.
//
// The scheduler of a real kernel has no equivalent here: one process,
// fully synchronous. Traps block the caller until serviced, exactly as
// the boundary contract demands.
//
// Each kernel instance carries its own Prometheus registry and a boot
// id, and logs through zap on the host side of the boundary.
package kernel
