// Package rng provides the deterministic seeded random stream shared by
// all puzzle generators. The hash and mix constants are a compatibility
// contract: the daily puzzle for a calendar date is defined by the
// sequence this stream produces for that date's seed string, so the
// algorithm must never change between builds.
package rng

// Stream yields floats in [0,1) from a string seed. One instance per
// generation call; never shared across unrelated generations.
type Stream struct {
	state uint32
}

// New hashes the seed with 32-bit FNV-1a and returns a stream over it.
// Any string, including the empty string, is a valid seed.
func New(seed string) *Stream {
	h := uint32(2166136261)
	for _, r := range seed {
		h ^= uint32(r)
		h *= 16777619
	}
	return &Stream{state: h}
}

// Float64 advances the stream and returns the next value in [0,1).
// All arithmetic is wrapping uint32; the width is load-bearing for
// reproducibility.
func (s *Stream) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / (1 << 32)
}

// IntN returns an int in [0, n) drawn from the stream. n must be > 0.
func (s *Stream) IntN(n int) int {
	return int(s.Float64() * float64(n))
}

// Shuffle runs a Fisher-Yates shuffle of n elements through swap.
// Every consumer (band shuffles, digit relabeling, cell masking) uses
// this single routine so the draw order stays stable.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i >= 1; i-- {
		j := int(s.Float64() * float64(i+1))
		swap(i, j)
	}
}

// Coin reports a fair coin flip, true on rng() > 0.5.
func (s *Stream) Coin() bool {
	return s.Float64() > 0.5
}
