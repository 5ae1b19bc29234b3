package model

import "math/rand"

// RandomSource produces booleans that are true with probability p.
type RandomSource interface {
	Bool(p float64) bool
}

// RandomSourceFunc adapts a plain function to RandomSource.
type RandomSourceFunc func(p float64) bool

func (f RandomSourceFunc) Bool(p float64) bool {
	return f(p)
}

// RandSource is a RandomSource backed by a seeded math/rand generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a RandSource seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Bool draws one uniform float per call, so p == 0 is never true and p == 1 is always true.
func (s *RandSource) Bool(p float64) bool {
	return s.rng.Float64() < p
}
