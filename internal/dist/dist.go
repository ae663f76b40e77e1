// Package dist implements the distribution objects of §4.3 and §9: each
// exposes sample()/log_pdf() per the value.Dist capability set, is
// immutable once constructed, and is shared by reference-counted handle
// (the Go garbage collector stands in for explicit refcounting; the handle
// itself is never mutated after construction).
package dist

import "github.com/foppl-lang/foppl/internal/value"

// All concrete distributions implement value.Dist.
var (
	_ value.Dist = (*Normal)(nil)
	_ value.Dist = (*Discrete)(nil)
	_ value.Dist = (*Gamma)(nil)
	_ value.Dist = (*Dirichlet)(nil)
	_ value.Dist = (*UniformContinuous)(nil)
	_ value.Dist = (*Bernoulli)(nil)
	_ value.Dist = (*Exponential)(nil)
)
