package eval

import "github.com/foppl-lang/foppl/internal/value"

type binding struct {
	name  string
	value value.Value
}

// Scope is a stack of (name, value) frames, per §4.2: lookup is from the
// top, first match wins (lexical shadowing). Push/Mark/Truncate let a
// caller discard every binding introduced since a mark in one step, which
// is how Let/ForEach/function-call unwind on error (§3's lifecycle rule:
// "On error, partial bindings of the current frame are discarded before
// the error propagates").
type Scope struct {
	bindings []binding
}

func NewScope() *Scope { return &Scope{} }

func (s *Scope) Push(name string, v value.Value) {
	s.bindings = append(s.bindings, binding{name: name, value: v})
}

// Mark returns a checkpoint usable with Truncate.
func (s *Scope) Mark() int { return len(s.bindings) }

// Truncate discards every binding pushed since mark.
func (s *Scope) Truncate(mark int) {
	s.bindings = s.bindings[:mark]
}

// Lookup performs the linear top-down search of §4.2.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	for i := len(s.bindings) - 1; i >= 0; i-- {
		if s.bindings[i].name == name {
			return s.bindings[i].value, true
		}
	}
	return value.Value{}, false
}
