// Package hashmix provides the hash-mixing primitive shared by
// fixedbinary's Hash() and fspath's same-file fingerprinting, built on
// golang.org/x/crypto/blake2b rather than a hand-rolled mixer.
package hashmix

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Mix64 hashes an arbitrary byte sequence down to a single uint64, folding
// a 256-bit BLAKE2b digest into one word via XOR.
func Mix64(data []byte) uint64 {
	sum := blake2b.Sum256(data)
	var folded uint64
	for i := 0; i < len(sum); i += 8 {
		folded ^= binary.LittleEndian.Uint64(sum[i : i+8])
	}
	return folded
}

// MixWords hashes a sequence of uint64 words, most useful for combining a
// few fixed fields (device+inode, a set of limbs) into one fingerprint.
func MixWords(words ...uint64) uint64 {
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return Mix64(buf)
}
