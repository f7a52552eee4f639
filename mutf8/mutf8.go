// Package mutf8 converts between Go strings and the modified UTF-8 encoding
// used by the runtime's string functions. It differs from standard UTF-8 in two
// ways: NUL is encoded as the two-byte sequence C0 80, and supplementary
// characters are encoded as a surrogate pair of three-byte sequences.
package mutf8

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Encode returns the modified UTF-8 form of s. Invalid UTF-8 in s is replaced
// with U+FFFD.
func Encode(s string) []byte {
	buf := make([]byte, 0, len(s)+1)
	for _, r := range s {
		switch {
		case r == 0:
			buf = append(buf, 0xC0, 0x80)
		case r < 0x80:
			buf = append(buf, byte(r))
		case r < 0x800:
			buf = append(buf, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			buf = appendThree(buf, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			buf = appendThree(buf, hi)
			buf = appendThree(buf, lo)
		}
	}
	return buf
}

func appendThree(buf []byte, r rune) []byte {
	return append(buf, 0xE0|byte(r>>12), 0x80|byte((r>>6)&0x3F), 0x80|byte(r&0x3F))
}

// Decode converts modified UTF-8 into a Go string. Malformed sequences and
// unpaired surrogates decode as U+FFFD. Four-byte standard UTF-8 sequences are
// accepted as well.
func Decode(b []byte) string {
	runes := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, n := decodeOne(b[i:])
		i += n

		if utf16.IsSurrogate(r) {
			if r < 0xDC00 && i < len(b) {
				// High surrogate. Pair it with the next code unit if that is a low surrogate
				if lo, m := decodeOne(b[i:]); lo >= 0xDC00 && lo <= 0xDFFF {
					runes = append(runes, utf16.DecodeRune(r, lo))
					i += m
					continue
				}
			}
			r = utf8.RuneError
		}
		runes = append(runes, r)
	}
	return string(runes)
}

func decodeOne(b []byte) (rune, int) {
	c := b[0]
	switch {
	case c < 0x80:
		return rune(c), 1
	case c&0xE0 == 0xC0:
		if len(b) < 2 || !cont(b[1]) {
			return utf8.RuneError, 1
		}
		return rune(c&0x1F)<<6 | rune(b[1]&0x3F), 2
	case c&0xF0 == 0xE0:
		if len(b) < 3 || !cont(b[1]) || !cont(b[2]) {
			return utf8.RuneError, 1
		}
		return rune(c&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	case c&0xF8 == 0xF0:
		r, n := utf8.DecodeRune(b)
		return r, n
	default:
		return utf8.RuneError, 1
	}
}

func cont(c byte) bool {
	return c&0xC0 == 0x80
}

// Len returns the number of bytes Encode(s) would produce.
func Len(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}
