// Package ast defines the expression grammar of §3: the tagged Expression
// variants an external parser (or, per SPEC_FULL.md §2, internal/program's
// JSON decoder) produces, plus the Program container of function
// definitions and a top-level expression.
package ast

// Kind tags the variant held by an Expression.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindFloat
	KindNull
	KindVariable
	KindLet
	KindSample
	KindObserve
	KindIf
	KindFunctionApplication
	KindVector
	KindForEach
	KindLoop
)

// Binding is one (name, expression) pair of a Let or ForEach form.
type Binding struct {
	Name string
	Expr *Expression
}

// Expression is a single node of the expression tree. Only the fields
// relevant to Kind are populated; the zero value of every other field is
// ignored. A struct-of-optional-fields (rather than one struct type per
// Kind) keeps the address pass and evaluator's switch statements uniform,
// matching how the original Rust implementation's tagged enum flattens
// naturally into a Go struct.
type Expression struct {
	Kind Kind

	// KindBoolean
	BoolVal bool
	// KindInteger
	IntVal int64
	// KindFloat
	FloatVal float64
	// KindVariable
	Name string

	// KindLet
	Bindings []Binding
	Body     []*Expression

	// KindSample: Child is the distribution expression.
	// KindObserve: Child is the distribution expression, Value is the
	// observed-value expression.
	Child *Expression
	Value *Expression
	// Address is assigned by the address pass (§4.1) to Sample/Observe
	// nodes; -1 before the pass has run.
	Address int

	// KindIf
	Test *Expression
	Then *Expression
	Else *Expression

	// KindFunctionApplication
	FuncName string
	Args     []*Expression

	// KindVector
	Elements []*Expression

	// KindForEach
	NIters *Expression
	// Bindings, Body reused from Let.

	// KindLoop
	// NIters reused.
	Accumulator *Expression
	LoopFunc    string
	LoopParams  []*Expression
}

// FunctionDef is a top-level function definition: name, parameter names,
// and a single body expression.
type FunctionDef struct {
	Name   string
	Params []string
	Body   *Expression
}

// Program is a set of function definitions plus the single top-level
// expression to evaluate.
type Program struct {
	Functions map[string]*FunctionDef
	Top       *Expression
}

func newLeaf(k Kind) *Expression { return &Expression{Kind: k, Address: -1} }

func Boolean(b bool) *Expression   { e := newLeaf(KindBoolean); e.BoolVal = b; return e }
func Integer(i int64) *Expression  { e := newLeaf(KindInteger); e.IntVal = i; return e }
func Float(f float64) *Expression  { e := newLeaf(KindFloat); e.FloatVal = f; return e }
func Null() *Expression            { return newLeaf(KindNull) }
func Variable(name string) *Expression {
	e := newLeaf(KindVariable)
	e.Name = name
	return e
}

func Let(bindings []Binding, body []*Expression) *Expression {
	e := newLeaf(KindLet)
	e.Bindings = bindings
	e.Body = body
	return e
}

func Sample(child *Expression) *Expression {
	e := newLeaf(KindSample)
	e.Child = child
	return e
}

func Observe(distExpr, valueExpr *Expression) *Expression {
	e := newLeaf(KindObserve)
	e.Child = distExpr
	e.Value = valueExpr
	return e
}

func If(test, then, els *Expression) *Expression {
	e := newLeaf(KindIf)
	e.Test, e.Then, e.Else = test, then, els
	return e
}

func Apply(name string, args []*Expression) *Expression {
	e := newLeaf(KindFunctionApplication)
	e.FuncName = name
	e.Args = args
	return e
}

func VectorExpr(elements []*Expression) *Expression {
	e := newLeaf(KindVector)
	e.Elements = elements
	return e
}

func ForEach(n *Expression, bindings []Binding, body []*Expression) *Expression {
	e := newLeaf(KindForEach)
	e.NIters = n
	e.Bindings = bindings
	e.Body = body
	return e
}

func Loop(n, acc *Expression, fn string, params []*Expression) *Expression {
	e := newLeaf(KindLoop)
	e.NIters = n
	e.Accumulator = acc
	e.LoopFunc = fn
	e.LoopParams = params
	return e
}
