package fspath

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// isValidUTF8 reports whether s is well-formed UTF-8 (the POSIX native
// encoding this build canonicalises everything to internally).
func isValidUTF8(s string) bool {
	return utf8.ValidString(s)
}

// toUTF16 converts a native UTF-8 path string to UTF-16, the Windows
// native path encoding, for boundary calls into Windows APIs that want a
// raw UTF-16 byte stream rather than a []uint16.
func toUTF16(s string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	return enc.Bytes([]byte(s))
}

// fromUTF16 converts a raw UTF-16LE byte stream (as Windows APIs hand
// back) to the UTF-8 native string used internally.
func fromUTF16(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
