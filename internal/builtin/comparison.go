package builtin

import (
	"fmt"

	"github.com/foppl-lang/foppl/internal/value"
)

func registerComparison(r *Registry) {
	register := func(name string, cmp func(a, b float64) bool) {
		r.Register(name, func(args []value.Value) (value.Value, error) {
			if len(args) != 2 {
				return value.Nil(), fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
			}
			if !args[0].IsNumeric() || !args[1].IsNumeric() {
				return value.Nil(), fmt.Errorf("%s: comparison of %s and %s is unsupported", name, args[0].Kind(), args[1].Kind())
			}
			a, _ := args[0].AsFloat()
			b, _ := args[1].AsFloat()
			return value.Bool(cmp(a, b)), nil
		})
	}

	register("<", func(a, b float64) bool { return a < b })
	register("<=", func(a, b float64) bool { return a <= b })
	register(">=", func(a, b float64) bool { return a >= b })
	register(">", func(a, b float64) bool { return a > b })
	register("=", func(a, b float64) bool { return a == b })
	register("<>", func(a, b float64) bool { return a != b })
}
