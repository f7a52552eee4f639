package mutf8

import (
	"bytes"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []byte
	}{
		{"ascii", "abc", []byte("abc")},
		{"empty", "", []byte{}},
		{"nul", "a\x00b", []byte{'a', 0xC0, 0x80, 'b'}},
		{"twoByte", "é", []byte{0xC3, 0xA9}},
		{"threeByte", "€", []byte{0xE2, 0x82, 0xAC}},
		{"supplementary", "😀", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := Encode(test.in)
			if !bytes.Equal(actual, test.expected) {
				t.Errorf("expected % x, got % x", test.expected, actual)
			}
			if Len(test.in) != len(test.expected) {
				t.Errorf("Len: expected %d, got %d", len(test.expected), Len(test.in))
			}
			if decoded := Decode(actual); decoded != test.in {
				t.Errorf("decode: expected %q, got %q", test.in, decoded)
			}
		})
	}
}

func TestDecodeLenient(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		expected string
	}{
		{"standardFourByte", []byte{0xF0, 0x9F, 0x98, 0x80}, "😀"},
		{"loneHighSurrogate", []byte{0xED, 0xA0, 0xBD, 'x'}, "�x"},
		{"loneLowSurrogate", []byte{0xED, 0xB8, 0x80}, "�"},
		{"truncated", []byte{0xE2, 0x82}, "��"},
		{"strayContinuation", []byte{0x80, 'a'}, "�a"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if actual := Decode(test.in); actual != test.expected {
				t.Errorf("expected %q, got %q", test.expected, actual)
			}
		})
	}
}
