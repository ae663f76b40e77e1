// Package rng provides the single process-wide random number source that
// §5 requires: every dist.Sample() and the MH driver's proposal-site
// selection consult the same source. Determinism is not a contractual
// property; seeding is not exposed beyond this package.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	src = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Float64 returns a uniform draw from [0, 1).
func Float64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return src.Float64()
}

// NormFloat64 returns a draw from the standard normal distribution.
func NormFloat64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return src.NormFloat64()
}

// ExpFloat64 returns a draw from the standard exponential distribution
// (rate 1), used by the Exponential sampler.
func ExpFloat64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return src.ExpFloat64()
}

// Intn returns a uniform draw from [0, n).
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return src.Intn(n)
}
