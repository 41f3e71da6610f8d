package testutil

import (
	"math/rand"
	"strconv"
	"sync"
)

// NamePrefixes are the prefixes used when generating parameter names.
var NamePrefixes = []string{"mu", "alpha", "kappa", "theta", "x"}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformRange returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) UniformRange(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Name returns a random parameter name such as "mu_17".
// Names may repeat across calls.
func (r *RNG) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nameLocked()
}

// nameLocked is the internal implementation (caller must hold lock).
func (r *RNG) nameLocked() string {
	prefix := NamePrefixes[r.rand.Intn(len(NamePrefixes))]
	return prefix + "_" + strconv.Itoa(r.rand.Intn(1000))
}

// Names returns n distinct random parameter names in generation order.
func (r *RNG) Names(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := r.nameLocked()
		if _, ok := seen[name]; ok {
			// Fall back to an index suffix once the name space gets crowded.
			name += "_" + strconv.Itoa(len(names))
			if _, ok := seen[name]; ok {
				continue
			}
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ParameterMap returns a mapping of n distinct random names to values in
// [minVal, maxVal).
func (r *RNG) ParameterMap(n int, minVal, maxVal float64) map[string]float64 {
	names := r.Names(n)

	r.mu.Lock()
	defer r.mu.Unlock()

	m := make(map[string]float64, n)
	for _, name := range names {
		m[name] = minVal + r.rand.Float64()*(maxVal-minVal)
	}
	return m
}
