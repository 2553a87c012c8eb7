package core

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so a run can be replayed from its seed and the state
// can be folded into snapshot hashes.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 11) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	// top 53 bits give a uniformly spaced float
	return float64(r.Next()>>11) / float64(1<<53)
}

// Sign returns -1 or 1 with equal probability.
func (r *RNG) Sign() float64 {
	if r.Float64() < 0.5 {
		return 1
	}
	return -1
}

// State returns the internal generator state.
func (r *RNG) State() uint64 {
	return r.state
}
