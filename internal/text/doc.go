// Package text holds the minimal formatting the runtime needs to drive
// console output: fixed-capacity text buffers, decimal rendering and
// parsing of unsigned integers, and single-value template expansion.
// No general formatting facility is assumed to exist in this
// environment, and nothing here allocates.
package text
