// Package driver defines the shared inference-driver interface of §4.4.0.
// internal/driver/prior, internal/driver/likelihood, and internal/driver/mh
// each implement it, differing radically in how they treat sample/observe.
package driver

import (
	"github.com/foppl-lang/foppl/internal/dataset"
	"github.com/foppl-lang/foppl/internal/value"
)

// Driver is consulted by the evaluator at every Sample/Observe node and
// orchestrates repeated re-executions of the top-level expression.
type Driver interface {
	// Sample produces the value a `sample` form evaluates to.
	Sample(d value.Dist, address int) (value.Value, error)

	// Observe produces the value an `observe` form evaluates to and
	// updates internal log-weight state as a side effect.
	Observe(d value.Dist, observed value.Value, address int) (value.Value, error)

	// FinishOneEvaluation is called after the top-level expression
	// returns for a single execution.
	FinishOneEvaluation(result value.Value)

	// Finalize is called once, after a driver-determined number of
	// evaluations, and emits the accumulated dataset.
	Finalize() (*dataset.Dataset, error)
}
