// Package dataset implements the §6 JSON output shape: a dataset is
// {"has_weights": bool, "data": [...]}, where each top-level entry is
// either a ProgramResult (scalar or recursively nested vector of
// ProgramResults) or, when has_weights is true, a [value, log_weight] pair.
package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/foppl-lang/foppl/internal/value"
)

// Dataset is the top-level document described by §6.
type Dataset struct {
	HasWeights bool
	// Unweighted holds flattened ProgramResults when !HasWeights.
	Unweighted []any
	// Weighted holds (value, log_weight) pairs when HasWeights.
	Weighted []WeightedEntry
}

// WeightedEntry is one [value, log_weight] pair.
type WeightedEntry struct {
	Value     any
	LogWeight float64
}

// Flatten converts a runtime Value into a JSON-serializable ProgramResult:
// a number, a bool, or a recursively nested array of ProgramResults. Only
// numeric and boolean leaves are legal; a Distribution or Null anywhere in
// the tree is a runtime error at finalization, per §6.
func Flatten(v value.Value) (any, error) {
	switch v.Kind() {
	case value.Integer:
		return v.Int64(), nil
	case value.Float:
		return v.Float64(), nil
	case value.Boolean:
		return v.Bool(), nil
	case value.Vector:
		elems := v.Elems()
		out := make([]any, len(elems))
		for i, e := range elems {
			flat, err := Flatten(e)
			if err != nil {
				return nil, err
			}
			out[i] = flat
		}
		return out, nil
	case value.Distribution:
		return nil, fmt.Errorf("a distribution handle is not a serializable result")
	default:
		return nil, fmt.Errorf("null is not a serializable result")
	}
}

// MarshalJSON implements the exact wire shape of §6.
func (d Dataset) MarshalJSON() ([]byte, error) {
	type wire struct {
		HasWeights bool `json:"has_weights"`
		Data       []any `json:"data"`
	}
	w := wire{HasWeights: d.HasWeights}
	if d.HasWeights {
		w.Data = make([]any, len(d.Weighted))
		for i, e := range d.Weighted {
			w.Data[i] = []any{e.Value, e.LogWeight}
		}
	} else {
		w.Data = d.Unweighted
	}
	return json.Marshal(w)
}
