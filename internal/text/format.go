package text

// maxDigits fits the decimal rendering of any uint32.
const maxDigits = 10

// FormatUint renders v as its shortest decimal form into dst and
// returns the written prefix of dst. Zero renders as "0"; nonzero
// values never carry a leading zero. If dst is too small the digits
// that do not fit are silently dropped, never reported as an error.
func FormatUint(dst []byte, v uint32) []byte {
	if len(dst) == 0 {
		return dst[:0]
	}
	if v == 0 {
		dst[0] = '0'
		return dst[:1]
	}

	// Digits come out least-significant first; collect then reverse.
	var scratch [maxDigits]byte
	n := 0
	for v > 0 {
		scratch[n] = byte(v%10) + '0'
		v /= 10
		n++
	}

	out := n
	if out > len(dst) {
		out = len(dst)
	}
	for i := 0; i < out; i++ {
		dst[i] = scratch[n-1-i]
	}
	return dst[:out]
}

// ParseUint reads a decimal uint32 from s. It reports false for an
// empty string, a non-digit byte, or a value past the uint32 range.
func ParseUint(s string) (uint32, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v > 0xFFFFFFFF {
			return 0, false
		}
	}
	return uint32(v), true
}
