package ast

// Addresser assigns syntactic addresses (§4.1): a preorder walk of the
// top-level expression and of each function body, each with its own
// monotone counter. The pass is deterministic and idempotent — running it
// twice over the same tree yields identical addresses, since it only ever
// overwrites Address fields from a freshly reset counter.
type Addresser struct {
	counter int
}

// AssignAddresses walks the whole program: the top-level expression gets
// its own counter, and every function body gets an independent counter,
// per §4.1 ("Counters for function bodies are independent of the
// top-level counter").
func AssignAddresses(p *Program) {
	(&Addresser{}).walk(p.Top)
	for _, fn := range p.Functions {
		(&Addresser{}).walk(fn.Body)
	}
}

func (a *Addresser) next() int {
	n := a.counter
	a.counter++
	return n
}

func (a *Addresser) walk(e *Expression) {
	if e == nil {
		return
	}
	switch e.Kind {
	case KindSample:
		e.Address = a.next()
		a.walk(e.Child)
	case KindObserve:
		e.Address = a.next()
		a.walk(e.Child)
		a.walk(e.Value)
	case KindLet:
		for _, b := range e.Bindings {
			a.walk(b.Expr)
		}
		for _, b := range e.Body {
			a.walk(b)
		}
	case KindIf:
		a.walk(e.Test)
		a.walk(e.Then)
		a.walk(e.Else)
	case KindFunctionApplication:
		for _, arg := range e.Args {
			a.walk(arg)
		}
	case KindVector:
		for _, el := range e.Elements {
			a.walk(el)
		}
	case KindForEach:
		a.walk(e.NIters)
		for _, b := range e.Bindings {
			a.walk(b.Expr)
		}
		for _, b := range e.Body {
			a.walk(b)
		}
	case KindLoop:
		a.walk(e.NIters)
		a.walk(e.Accumulator)
		for _, p := range e.LoopParams {
			a.walk(p)
		}
	}
}
