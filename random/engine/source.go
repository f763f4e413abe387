package engine

import "math/rand"

// Uint64Engine is the common shape every 64-bit-output engine above
// satisfies: LCG64, SquirrelEngine, PCG64, PCG64DXSM, Xoshiro256SS.
type Uint64Engine interface {
	Next() uint64
}

// Source bridges any Uint64Engine to math/rand.Source64, so callers with
// existing math/rand-shaped code can drive it from one of these engines
// instead of the standard library's own generator.
type Source struct {
	engine Uint64Engine
}

// NewSource wraps engine as a math/rand.Source64.
func NewSource(e Uint64Engine) *Source { return &Source{engine: e} }

// Uint64 satisfies rand.Source64.
func (s *Source) Uint64() uint64 { return s.engine.Next() }

// Int63 satisfies rand.Source by shifting the 64-bit draw right by one.
func (s *Source) Int63() int64 { return int64(s.engine.Next() >> 1) }

// Seed is a no-op: re-seeding is engine-specific and exposed on the
// concrete engine types instead, not through this adapter.
func (s *Source) Seed(int64) {}

var _ rand.Source64 = (*Source)(nil)
