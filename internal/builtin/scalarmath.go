package builtin

import (
	"fmt"
	"math"

	"github.com/foppl-lang/foppl/internal/value"
)

func registerScalarMath(r *Registry) {
	register := func(name string, fn func(float64) float64) {
		r.Register(name, func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return value.Nil(), fmt.Errorf("%s: expected 1 argument, got %d", name, len(args))
			}
			f, err := args[0].AsFloat()
			if err != nil {
				return value.Nil(), fmt.Errorf("%s: %w", name, err)
			}
			return value.Flt(fn(f)), nil
		})
	}

	register("log", math.Log)
	register("exp", math.Exp)
	register("sqrt", math.Sqrt)
}
