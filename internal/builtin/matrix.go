package builtin

import (
	"fmt"
	"math"

	"github.com/foppl-lang/foppl/internal/value"
)

// asMatrix validates that v is a vector of equal-length vectors (a
// rectangular matrix) and returns its row-major contents plus dimensions.
func asMatrix(op string, v value.Value) ([][]value.Value, int, int, error) {
	if v.Kind() != value.Vector {
		return nil, 0, 0, fmt.Errorf("%s: expected a matrix, got %s", op, v.Kind())
	}
	rows := v.Elems()
	if len(rows) == 0 {
		return nil, 0, 0, fmt.Errorf("%s: matrix must be non-empty", op)
	}
	out := make([][]value.Value, len(rows))
	cols := -1
	for i, row := range rows {
		if row.Kind() != value.Vector {
			return nil, 0, 0, fmt.Errorf("%s: expected a vector of vectors, row %d is %s", op, i, row.Kind())
		}
		if cols == -1 {
			cols = len(row.Elems())
		} else if len(row.Elems()) != cols {
			return nil, 0, 0, fmt.Errorf("%s: matrix is not rectangular: row 0 has %d columns, row %d has %d", op, cols, i, len(row.Elems()))
		}
		out[i] = row.Elems()
	}
	if cols == 0 {
		return nil, 0, 0, fmt.Errorf("%s: matrix must be non-empty", op)
	}
	return out, len(rows), cols, nil
}

func matrixValue(rows [][]value.Value) value.Value {
	out := make([]value.Value, len(rows))
	for i, row := range rows {
		cp := make([]value.Value, len(row))
		copy(cp, row)
		out[i] = value.Vec(cp)
	}
	return value.Vec(out)
}

func registerMatrix(r *Registry) {
	r.Register("mat-transpose", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil(), fmt.Errorf("mat-transpose: expected 1 argument, got %d", len(args))
		}
		m, rows, cols, err := asMatrix("mat-transpose", args[0])
		if err != nil {
			return value.Nil(), err
		}
		out := make([][]value.Value, cols)
		for j := 0; j < cols; j++ {
			out[j] = make([]value.Value, rows)
			for i := 0; i < rows; i++ {
				out[j][i] = m[i][j]
			}
		}
		return matrixValue(out), nil
	})

	r.Register("mat-mul", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil(), fmt.Errorf("mat-mul: expected 2 arguments, got %d", len(args))
		}
		a, ra, ca, err := asMatrix("mat-mul", args[0])
		if err != nil {
			return value.Nil(), err
		}
		b, rb, cb, err := asMatrix("mat-mul", args[1])
		if err != nil {
			return value.Nil(), err
		}
		if ca != rb {
			return value.Nil(), fmt.Errorf("mat-mul: inner dimensions must match, got %dx%d and %dx%d", ra, ca, rb, cb)
		}
		out := make([][]value.Value, ra)
		for i := 0; i < ra; i++ {
			out[i] = make([]value.Value, cb)
			for j := 0; j < cb; j++ {
				var sum float64
				for k := 0; k < ca; k++ {
					av, err := a[i][k].AsFloat()
					if err != nil {
						return value.Nil(), fmt.Errorf("mat-mul: entry [%d][%d]: %w", i, k, err)
					}
					bv, err := b[k][j].AsFloat()
					if err != nil {
						return value.Nil(), fmt.Errorf("mat-mul: entry [%d][%d]: %w", k, j, err)
					}
					sum += av * bv
				}
				out[i][j] = value.Flt(sum)
			}
		}
		return matrixValue(out), nil
	})

	r.Register("mat-add", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil(), fmt.Errorf("mat-add: expected 2 arguments, got %d", len(args))
		}
		a, ra, ca, err := asMatrix("mat-add", args[0])
		if err != nil {
			return value.Nil(), err
		}
		b, rb, cb, err := asMatrix("mat-add", args[1])
		if err != nil {
			return value.Nil(), err
		}
		rows, err := broadcastDim("mat-add", ra, rb)
		if err != nil {
			return value.Nil(), err
		}
		cols, err := broadcastDim("mat-add", ca, cb)
		if err != nil {
			return value.Nil(), err
		}
		out := make([][]value.Value, rows)
		for i := 0; i < rows; i++ {
			out[i] = make([]value.Value, cols)
			for j := 0; j < cols; j++ {
				av, err := a[i%ra][j%ca].AsFloat()
				if err != nil {
					return value.Nil(), fmt.Errorf("mat-add: entry [%d][%d]: %w", i, j, err)
				}
				bv, err := b[i%rb][j%cb].AsFloat()
				if err != nil {
					return value.Nil(), fmt.Errorf("mat-add: entry [%d][%d]: %w", i, j, err)
				}
				out[i][j] = value.Flt(av + bv)
			}
		}
		return matrixValue(out), nil
	})

	r.Register("mat-repmat", func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return value.Nil(), fmt.Errorf("mat-repmat: expected 3 arguments (matrix, r, c), got %d", len(args))
		}
		m, rows, cols, err := asMatrix("mat-repmat", args[0])
		if err != nil {
			return value.Nil(), err
		}
		if args[1].Kind() != value.Integer || args[2].Kind() != value.Integer {
			return value.Nil(), fmt.Errorf("mat-repmat: r and c must be integers")
		}
		repR, repC := int(args[1].Int64()), int(args[2].Int64())
		if repR < 1 || repC < 1 {
			return value.Nil(), fmt.Errorf("mat-repmat: r and c must be at least 1, got r=%d c=%d", repR, repC)
		}
		out := make([][]value.Value, rows*repR)
		for i := 0; i < rows*repR; i++ {
			out[i] = make([]value.Value, cols*repC)
			for j := 0; j < cols*repC; j++ {
				out[i][j] = m[i%rows][j%cols]
			}
		}
		return matrixValue(out), nil
	})

	r.Register("mat-tanh", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil(), fmt.Errorf("mat-tanh: expected 1 argument, got %d", len(args))
		}
		m, rows, cols, err := asMatrix("mat-tanh", args[0])
		if err != nil {
			return value.Nil(), err
		}
		out := make([][]value.Value, rows)
		for i := 0; i < rows; i++ {
			out[i] = make([]value.Value, cols)
			for j := 0; j < cols; j++ {
				f, err := m[i][j].AsFloat()
				if err != nil {
					return value.Nil(), fmt.Errorf("mat-tanh: entry [%d][%d]: %w", i, j, err)
				}
				out[i][j] = value.Flt(math.Tanh(f))
			}
		}
		return matrixValue(out), nil
	})
}

func broadcastDim(op string, a, b int) (int, error) {
	if a == b {
		return a, nil
	}
	if a == 1 {
		return b, nil
	}
	if b == 1 {
		return a, nil
	}
	return 0, fmt.Errorf("%s: incompatible shapes along this axis: %d vs %d", op, a, b)
}
