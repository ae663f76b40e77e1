// Package builtin implements the operator table of §4.3: arithmetic,
// comparison, container, matrix, and scalar-math operators, plus the
// distribution constructors merged in from internal/dist.
package builtin

import (
	"errors"
	"sync"

	"github.com/foppl-lang/foppl/internal/dist"
	"github.com/foppl-lang/foppl/internal/value"
)

// Func is a builtin operator: it receives already-evaluated arguments
// (evaluated left-to-right by the caller, per §4.2) and returns a Value or
// a runtime error.
type Func func(args []value.Value) (value.Value, error)

// Registry maps operator names to their Func, checked before the user
// function table during name dispatch (§4.2).
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

func (r *Registry) Register(name string, f Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = f
}

func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.funcs[name]
	return f, ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for n := range r.funcs {
		names = append(names, n)
	}
	return names
}

// Standard builds the full builtin table: arithmetic, comparison,
// container, matrix, scalar-math operators, and every constructor in the
// distribution registry dr (typically dist.Standard()).
func Standard(dr *dist.Registry) *Registry {
	r := NewRegistry()
	registerArithmetic(r)
	registerComparison(r)
	registerContainer(r)
	registerMatrix(r)
	registerScalarMath(r)

	for _, name := range dr.Names() {
		ctor, _ := dr.Get(name)
		r.Register(name, func(args []value.Value) (value.Value, error) {
			d, err := ctor(args)
			if err != nil {
				return value.Nil(), distConstructorError{err}
			}
			return value.Dst(d), nil
		})
	}
	return r
}

// distConstructorError marks an error as coming from a distribution
// constructor (invalid parameters), so callers can classify it under the
// §7 distribution-error kind rather than a generic type error.
type distConstructorError struct{ err error }

func (e distConstructorError) Error() string { return e.err.Error() }
func (e distConstructorError) Unwrap() error { return e.err }

// IsDistributionConstructorError reports whether err originated from a
// distribution constructor's parameter validation.
func IsDistributionConstructorError(err error) bool {
	var d distConstructorError
	return errors.As(err, &d)
}
