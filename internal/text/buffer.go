package text

// BufferCap is the capacity of a Buffer. Large enough for every line
// the runtime and demos emit; overflow truncates rather than grows.
const BufferCap = 128

// Buffer is a fixed-capacity append-only text buffer. Writes past the
// capacity are silently dropped, which keeps formatting total: callers
// never handle a formatting error on an output path that may itself be
// failing.
type Buffer struct {
	buf [BufferCap]byte
	n   int
}

// Reset empties the buffer for reuse.
func (b *Buffer) Reset() { b.n = 0 }

// Len reports the bytes written so far.
func (b *Buffer) Len() int { return b.n }

// Bytes returns the written prefix. The slice aliases the buffer and
// is invalidated by the next write or Reset.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n] }

// String copies the written prefix out as a string.
func (b *Buffer) String() string { return string(b.buf[:b.n]) }

// WriteString appends as much of s as fits.
func (b *Buffer) WriteString(s string) {
	b.n += copy(b.buf[b.n:], s)
}

// Write appends as much of p as fits.
func (b *Buffer) Write(p []byte) {
	b.n += copy(b.buf[b.n:], p)
}

// PutByte appends one byte if it fits.
func (b *Buffer) PutByte(c byte) {
	if b.n < len(b.buf) {
		b.buf[b.n] = c
		b.n++
	}
}

// WriteUint appends the decimal rendering of v.
func (b *Buffer) WriteUint(v uint32) {
	b.n += len(FormatUint(b.buf[b.n:], v))
}

// Expand appends template with its first "{}" placeholder replaced by
// the decimal rendering of v. Remaining placeholders are copied
// verbatim; a '{' not followed by '}' is ordinary text.
func (b *Buffer) Expand(template string, v uint32) {
	replaced := false
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '{' && !replaced && i+1 < len(template) && template[i+1] == '}' {
			b.WriteUint(v)
			replaced = true
			i++
			continue
		}
		b.PutByte(c)
	}
}

// Line formats template with v into a fresh buffer. Convenience for
// the common single-value message shape.
func Line(template string, v uint32) *Buffer {
	b := new(Buffer)
	b.Expand(template, v)
	return b
}
