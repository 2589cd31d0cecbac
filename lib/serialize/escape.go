package serialize

import (
	"math"
	"strconv"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// appendEscaped appends s to dst with JSON string escaping applied, without
// the surrounding quotes. Escaping is strictly per-byte for the characters
// that need it (quote, backslash, control characters) and passes valid
// UTF-8 through verbatim, so escaping a string in pieces produces the same
// bytes as escaping it at once, provided the pieces split on rune
// boundaries.
func appendEscaped(dst []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b != '"' && b != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch b {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
		}
		start = i + 1
	}
	return append(dst, s[start:]...)
}

// splitChunk cuts at most size bytes off the front of s, backing up so the
// cut never lands inside a multi-byte UTF-8 sequence. Keeping chunks aligned
// to rune boundaries is what makes per-chunk escaping byte-identical to
// one-pass escaping.
func splitChunk(s string, size int) (chunk, rest string) {
	if len(s) <= size {
		return s, ""
	}
	end := size
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	if end == 0 {
		// Degenerate: invalid UTF-8 longer than the chunk size. Cut hard;
		// escaping passes invalid bytes through either way.
		end = size
	}
	return s[:end], s[end:]
}

// appendNumber appends the canonical textual form of f. Integral values in
// the exactly-representable range print without a decimal point or
// exponent; everything else uses the shortest round-trippable form.
// Non-finite values have no JSON representation and degrade to null.
func appendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.AppendInt(dst, int64(f), 10)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}
