package engine

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// SeedFromDevice draws n 64-bit words from the platform's high-quality
// entropy source (crypto/rand, which wraps /dev/urandom, getrandom(2), or
// CryptGenRandom depending on platform — the canonical Go path to OS
// entropy, not something an ecosystem library would improve on), enough
// to cover any engine's widest seeding arity (four words, for Xoshiro256**
// or PCG64).
func SeedFromDevice(n int) ([]uint64, error) {
	buf := make([]byte, 8*n)
	if _, err := rand.Read(buf); err != nil {
		return nil, waiterrors.Wrap(waiterrors.Io, err, "engine: entropy read failed")
	}
	words := make([]uint64, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return words, nil
}
