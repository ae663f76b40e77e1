// Package value implements the tagged runtime value model of §3: integers,
// floats, booleans, vectors, distribution handles, and null.
package value

import "fmt"

// Kind tags the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Integer
	Float
	Boolean
	Vector
	Distribution
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Vector:
		return "vector"
	case Distribution:
		return "distribution"
	case Null:
		return "null"
	default:
		return "unknown"
	}
}

// Dist is the capability set a distribution handle exposes to the value
// model. internal/dist implements it; value only depends on the interface
// to avoid an import cycle.
type Dist interface {
	Name() string
	Sample() Value
	LogPDF(Value) (float64, error)
}

// Value is an immutable tagged union. The zero Value is Null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	vec  []Value
	dist Dist
}

func Int(i int64) Value     { return Value{kind: Integer, i: i} }
func Flt(f float64) Value   { return Value{kind: Float, f: f} }
func Bool(b bool) Value     { return Value{kind: Boolean, b: b} }
func Vec(v []Value) Value   { return Value{kind: Vector, vec: v} }
func Dst(d Dist) Value      { return Value{kind: Distribution, dist: d} }
func Nil() Value            { return Value{kind: Null} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNumeric() bool { return v.kind == Integer || v.kind == Float }

// Int64 returns the integer payload; only meaningful when Kind() == Integer.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the float payload; only meaningful when Kind() == Float.
func (v Value) Float64() float64 { return v.f }

// Bool returns the boolean payload; only meaningful when Kind() == Boolean.
func (v Value) Bool() bool { return v.b }

// Elems returns the vector payload; only meaningful when Kind() == Vector.
func (v Value) Elems() []Value { return v.vec }

// Distribution returns the distribution handle; only meaningful when
// Kind() == Distribution.
func (v Value) Distribution() Dist { return v.dist }

// AsFloat widens an Integer or Float value to float64; it errors on any
// other kind.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case Integer:
		return float64(v.i), nil
	case Float:
		return v.f, nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %s", v.kind)
	}
}

func (v Value) String() string {
	switch v.kind {
	case Integer:
		return fmt.Sprintf("%d", v.i)
	case Float:
		return fmt.Sprintf("%g", v.f)
	case Boolean:
		return fmt.Sprintf("%t", v.b)
	case Null:
		return "null"
	case Distribution:
		return fmt.Sprintf("#<distribution %s>", v.dist.Name())
	case Vector:
		s := "["
		for i, e := range v.vec {
			if i > 0 {
				s += " "
			}
			s += e.String()
		}
		return s + "]"
	default:
		return "?"
	}
}

// Equal compares two values structurally; used by tests. Floating-point comparison is exact, matching Rust's PartialEq
// on f64 that the original implementation relies on.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Integer:
		return a.i == b.i
	case Float:
		return a.f == b.f
	case Boolean:
		return a.b == b.b
	case Null:
		return true
	case Distribution:
		return a.dist == b.dist
	case Vector:
		if len(a.vec) != len(b.vec) {
			return false
		}
		for i := range a.vec {
			if !Equal(a.vec[i], b.vec[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
