// Package rng provides the random source threaded through every generation
// stage. Stages never reach for a global generator; they take a Source.
package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Source is the uniform random capability the generators consume.
type Source interface {
	// Float returns a value in [min, max). It returns min when max <= min.
	Float(min, max float64) float64
	// Int returns a value in [min, max], both ends inclusive. It returns min
	// when max <= min.
	Int(min, max int) int
	Bool() bool
}

// Rand is a Source backed by a PCG generator.
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic Source for seed.
func New(seed int64) *Rand {
	// Non-cryptographic PRNG is intentional for reproducible levels.
	// #nosec G404
	return &Rand{r: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))}
}

// NewTime returns a Source seeded from the wall clock along with the seed used,
// so an interesting level can be reproduced later.
func NewTime() (*Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func (s *Rand) Float(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.r.Float64()*(max-min)
}

func (s *Rand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.IntN(max-min+1)
}

func (s *Rand) Bool() bool {
	return s.r.IntN(2) == 1
}

// Shuffle randomises the order of n elements using src.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, src.Int(0, i))
	}
}

// Pick returns a uniformly chosen index into a slice of length n, or -1 when n is zero.
func Pick(src Source, n int) int {
	if n <= 0 {
		return -1
	}
	return src.Int(0, n-1)
}
