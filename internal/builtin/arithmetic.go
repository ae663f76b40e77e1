package builtin

import (
	"fmt"

	"github.com/foppl-lang/foppl/internal/value"
)

// numericPromote reports whether any of vs is a Float, per §3's numeric
// promotion rule: "if any operand of a numeric operator is Float, the
// result is Float; otherwise Integer."
func numericPromote(vs []value.Value) (anyFloat bool, err error) {
	for _, v := range vs {
		if !v.IsNumeric() {
			return false, fmt.Errorf("expected a numeric argument, got %s", v.Kind())
		}
		if v.Kind() == value.Float {
			anyFloat = true
		}
	}
	return anyFloat, nil
}

func registerArithmetic(r *Registry) {
	r.Register("+", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return value.Nil(), fmt.Errorf("+: expected at least 2 arguments, got %d", len(args))
		}
		return foldNumeric(args, "+", 0, func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b })
	})

	r.Register("*", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return value.Nil(), fmt.Errorf("*: expected at least 2 arguments, got %d", len(args))
		}
		return foldNumeric(args, "*", 1, func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b })
	})

	r.Register("-", func(args []value.Value) (value.Value, error) {
		switch len(args) {
		case 1:
			isFloat, err := numericPromote(args)
			if err != nil {
				return value.Nil(), fmt.Errorf("-: %w", err)
			}
			if isFloat {
				f, _ := args[0].AsFloat()
				return value.Flt(-f), nil
			}
			return value.Int(-args[0].Int64()), nil
		case 2:
			isFloat, err := numericPromote(args)
			if err != nil {
				return value.Nil(), fmt.Errorf("-: %w", err)
			}
			if isFloat {
				a, _ := args[0].AsFloat()
				b, _ := args[1].AsFloat()
				return value.Flt(a - b), nil
			}
			return value.Int(args[0].Int64() - args[1].Int64()), nil
		default:
			return value.Nil(), fmt.Errorf("-: expected 1 or 2 arguments, got %d", len(args))
		}
	})

	r.Register("/", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil(), fmt.Errorf("/: expected 2 arguments, got %d", len(args))
		}
		isFloat, err := numericPromote(args)
		if err != nil {
			return value.Nil(), fmt.Errorf("/: %w", err)
		}
		if isFloat {
			a, _ := args[0].AsFloat()
			b, _ := args[1].AsFloat()
			return value.Flt(a / b), nil
		}
		a, b := args[0].Int64(), args[1].Int64()
		if b == 0 {
			return value.Nil(), fmt.Errorf("/: integer division by zero")
		}
		return value.Int(a / b), nil
	})
}

func foldNumeric(args []value.Value, op string, identity int64, ffn func(a, b float64) float64, ifn func(a, b int64) int64) (value.Value, error) {
	isFloat, err := numericPromote(args)
	if err != nil {
		return value.Nil(), fmt.Errorf("%s: %w", op, err)
	}
	if isFloat {
		acc, _ := args[0].AsFloat()
		for _, v := range args[1:] {
			f, _ := v.AsFloat()
			acc = ffn(acc, f)
		}
		return value.Flt(acc), nil
	}
	acc := args[0].Int64()
	for _, v := range args[1:] {
		acc = ifn(acc, v.Int64())
	}
	return value.Int(acc), nil
}
