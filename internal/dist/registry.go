package dist

import (
	"fmt"
	"sync"

	"github.com/foppl-lang/foppl/internal/value"
)

// Constructor builds a distribution handle from already-evaluated
// constructor arguments, matching §4.3's "evaluate their arguments,
// validate, and return Value::Distribution" contract.
type Constructor func(args []value.Value) (value.Dist, error)

// Registry maps distribution constructor names ("normal", "discrete", ...)
// to their Constructor, mirroring the teacher's decorator Registry.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

func (r *Registry) Register(name string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[name] = c
}

func (r *Registry) Get(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.ctors[name]
	return c, ok
}

// Names returns every registered constructor name; used by internal/suggest
// to offer "did you mean" hints alongside builtin/function names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ctors))
	for n := range r.ctors {
		names = append(names, n)
	}
	return names
}

func floatArg(args []value.Value, i int, ctorName string) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: expected at least %d arguments, got %d", ctorName, i+1, len(args))
	}
	f, err := args[i].AsFloat()
	if err != nil {
		return 0, fmt.Errorf("%s: argument %d: %w", ctorName, i, err)
	}
	return f, nil
}

// Standard is the registry of every distribution constructor this package
// implements; builtin.Standard merges it into the evaluator's builtin table.
func Standard() *Registry {
	r := NewRegistry()

	r.Register("normal", func(args []value.Value) (value.Dist, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("normal: expected 2 arguments (mu, sigma), got %d", len(args))
		}
		mu, err := floatArg(args, 0, "normal")
		if err != nil {
			return nil, err
		}
		sigma, err := floatArg(args, 1, "normal")
		if err != nil {
			return nil, err
		}
		return NewNormal(mu, sigma)
	})

	r.Register("discrete", func(args []value.Value) (value.Dist, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("discrete: expected 1 argument (weights vector), got %d", len(args))
		}
		if args[0].Kind() != value.Vector {
			return nil, fmt.Errorf("discrete: expected a vector of weights, got %s", args[0].Kind())
		}
		weights := make([]float64, len(args[0].Elems()))
		for i, e := range args[0].Elems() {
			f, err := e.AsFloat()
			if err != nil {
				return nil, fmt.Errorf("discrete: weight %d: %w", i, err)
			}
			weights[i] = f
		}
		return NewDiscrete(weights)
	})

	r.Register("gamma", func(args []value.Value) (value.Dist, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("gamma: expected 2 arguments (shape, rate), got %d", len(args))
		}
		shape, err := floatArg(args, 0, "gamma")
		if err != nil {
			return nil, err
		}
		rate, err := floatArg(args, 1, "gamma")
		if err != nil {
			return nil, err
		}
		return NewGamma(shape, rate)
	})

	r.Register("dirichlet", func(args []value.Value) (value.Dist, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("dirichlet: expected 1 argument (alpha vector), got %d", len(args))
		}
		if args[0].Kind() != value.Vector {
			return nil, fmt.Errorf("dirichlet: expected a vector of concentrations, got %s", args[0].Kind())
		}
		alpha := make([]float64, len(args[0].Elems()))
		for i, e := range args[0].Elems() {
			f, err := e.AsFloat()
			if err != nil {
				return nil, fmt.Errorf("dirichlet: alpha %d: %w", i, err)
			}
			alpha[i] = f
		}
		return NewDirichlet(alpha)
	})

	r.Register("uniform-continuous", func(args []value.Value) (value.Dist, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("uniform-continuous: expected 2 arguments (low, high), got %d", len(args))
		}
		low, err := floatArg(args, 0, "uniform-continuous")
		if err != nil {
			return nil, err
		}
		high, err := floatArg(args, 1, "uniform-continuous")
		if err != nil {
			return nil, err
		}
		return NewUniformContinuous(low, high)
	})

	r.Register("flip", func(args []value.Value) (value.Dist, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("flip: expected 1 argument (p), got %d", len(args))
		}
		p, err := floatArg(args, 0, "flip")
		if err != nil {
			return nil, err
		}
		return NewBernoulli(p)
	})

	r.Register("exponential", func(args []value.Value) (value.Dist, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("exponential: expected 1 argument (rate), got %d", len(args))
		}
		rate, err := floatArg(args, 0, "exponential")
		if err != nil {
			return nil, err
		}
		return NewExponential(rate)
	})

	return r
}
