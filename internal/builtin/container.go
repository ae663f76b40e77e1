package builtin

import (
	"fmt"

	"github.com/foppl-lang/foppl/internal/value"
)

func registerContainer(r *Registry) {
	r.Register("vector", func(args []value.Value) (value.Value, error) {
		elems := make([]value.Value, len(args))
		copy(elems, args)
		return value.Vec(elems), nil
	})

	r.Register("get", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil(), fmt.Errorf("get: expected 2 arguments (vector, index), got %d", len(args))
		}
		vec, err := asVector("get", args[0])
		if err != nil {
			return value.Nil(), err
		}
		idx, err := asIndex("get", args[1])
		if err != nil {
			return value.Nil(), err
		}
		if idx < 0 || idx >= len(vec) {
			return value.Nil(), fmt.Errorf("get: index %d out of bounds for vector of length %d", idx, len(vec))
		}
		return vec[idx], nil
	})

	r.Register("first", func(args []value.Value) (value.Value, error) {
		vec, err := unaryVector("first", args)
		if err != nil {
			return value.Nil(), err
		}
		if len(vec) == 0 {
			return value.Nil(), fmt.Errorf("first: vector is empty")
		}
		return vec[0], nil
	})

	r.Register("second", func(args []value.Value) (value.Value, error) {
		vec, err := unaryVector("second", args)
		if err != nil {
			return value.Nil(), err
		}
		if len(vec) < 2 {
			return value.Nil(), fmt.Errorf("second: vector has fewer than 2 elements")
		}
		return vec[1], nil
	})

	r.Register("last", func(args []value.Value) (value.Value, error) {
		vec, err := unaryVector("last", args)
		if err != nil {
			return value.Nil(), err
		}
		if len(vec) == 0 {
			return value.Nil(), fmt.Errorf("last: vector is empty")
		}
		return vec[len(vec)-1], nil
	})

	r.Register("rest", func(args []value.Value) (value.Value, error) {
		vec, err := unaryVector("rest", args)
		if err != nil {
			return value.Nil(), err
		}
		if len(vec) == 0 {
			return value.Nil(), fmt.Errorf("rest: vector is empty")
		}
		rest := make([]value.Value, len(vec)-1)
		copy(rest, vec[1:])
		return value.Vec(rest), nil
	})

	r.Register("append", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil(), fmt.Errorf("append: expected 2 arguments (vector, element), got %d", len(args))
		}
		vec, err := asVector("append", args[0])
		if err != nil {
			return value.Nil(), err
		}
		out := make([]value.Value, len(vec)+1)
		copy(out, vec)
		out[len(vec)] = args[1]
		return value.Vec(out), nil
	})
}

func asVector(op string, v value.Value) ([]value.Value, error) {
	if v.Kind() != value.Vector {
		return nil, fmt.Errorf("%s: expected a vector, got %s", op, v.Kind())
	}
	return v.Elems(), nil
}

func unaryVector(op string, args []value.Value) ([]value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: expected 1 argument, got %d", op, len(args))
	}
	return asVector(op, args[0])
}

func asIndex(op string, v value.Value) (int, error) {
	if v.Kind() != value.Integer {
		return 0, fmt.Errorf("%s: expected an integer index, got %s", op, v.Kind())
	}
	return int(v.Int64()), nil
}
