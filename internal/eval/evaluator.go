// Package eval implements the tree-walking evaluator of §4.2: Expression
// in, Value or runtime error out, against a lexical Scope and an immutable
// function table, delegating sample/observe to a driver.Driver.
package eval

import (
	"fmt"

	"github.com/foppl-lang/foppl/internal/ast"
	"github.com/foppl-lang/foppl/internal/builtin"
	"github.com/foppl-lang/foppl/internal/driver"
	"github.com/foppl-lang/foppl/internal/ferr"
	"github.com/foppl-lang/foppl/internal/suggest"
	"github.com/foppl-lang/foppl/internal/value"
)

// Evaluator interprets a Program's expressions against the shared function
// table and operator table, delegating random choices to Driver. It is
// reused across every re-execution the driver requests; only the Scope is
// fresh per run.
type Evaluator struct {
	Functions map[string]*ast.FunctionDef
	Builtins  *builtin.Registry
	Driver    driver.Driver
}

// New builds an Evaluator for program against the given builtin table.
func New(program *ast.Program, builtins *builtin.Registry, d driver.Driver) *Evaluator {
	return &Evaluator{Functions: program.Functions, Builtins: builtins, Driver: d}
}

// RunOnce evaluates the program's top-level expression once, in a fresh
// Scope, per §5 ("the evaluator owns its scope stack ... by exclusive
// reference").
func (e *Evaluator) RunOnce(top *ast.Expression) (value.Value, error) {
	return e.Eval(top, NewScope())
}

// Eval evaluates expr under scope, per the semantics table of §4.2.
func (e *Evaluator) Eval(expr *ast.Expression, scope *Scope) (value.Value, error) {
	switch expr.Kind {
	case ast.KindBoolean:
		return value.Bool(expr.BoolVal), nil
	case ast.KindInteger:
		return value.Int(expr.IntVal), nil
	case ast.KindFloat:
		return value.Flt(expr.FloatVal), nil
	case ast.KindNull:
		return value.Nil(), nil

	case ast.KindVariable:
		v, ok := scope.Lookup(expr.Name)
		if !ok {
			return value.Value{}, e.unresolvedVariable(expr.Name)
		}
		return v, nil

	case ast.KindLet:
		return e.evalLet(expr, scope)

	case ast.KindIf:
		return e.evalIf(expr, scope)

	case ast.KindVector:
		elems := make([]value.Value, len(expr.Elements))
		for i, el := range expr.Elements {
			v, err := e.Eval(el, scope)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = v
		}
		return value.Vec(elems), nil

	case ast.KindForEach:
		return e.evalForEach(expr, scope)

	case ast.KindLoop:
		return e.evalLoop(expr, scope)

	case ast.KindFunctionApplication:
		return e.evalApply(expr, scope)

	case ast.KindSample:
		return e.evalSample(expr, scope)

	case ast.KindObserve:
		return e.evalObserve(expr, scope)

	default:
		return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("unknown expression kind %d", expr.Kind))
	}
}

func (e *Evaluator) unresolvedVariable(name string) error {
	names := make([]string, 0, len(e.Functions))
	for n := range e.Functions {
		names = append(names, n)
	}
	hint := suggest.Closest(name, names)
	msg := fmt.Sprintf("variable %q is not in scope", name)
	if hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", hint)
	}
	return ferr.New(ferr.KindResolution, msg)
}

func (e *Evaluator) evalLet(expr *ast.Expression, scope *Scope) (value.Value, error) {
	if len(expr.Bindings) == 0 {
		return value.Value{}, ferr.New(ferr.KindType, "let requires at least one binding")
	}
	if len(expr.Body) == 0 {
		return value.Value{}, ferr.New(ferr.KindType, "let requires a non-empty body")
	}
	mark := scope.Mark()
	for _, b := range expr.Bindings {
		v, err := e.Eval(b.Expr, scope)
		if err != nil {
			scope.Truncate(mark)
			return value.Value{}, err
		}
		scope.Push(b.Name, v)
	}
	var result value.Value
	for _, stmt := range expr.Body {
		v, err := e.Eval(stmt, scope)
		if err != nil {
			scope.Truncate(mark)
			return value.Value{}, err
		}
		result = v
	}
	scope.Truncate(mark)
	return result, nil
}

func (e *Evaluator) evalIf(expr *ast.Expression, scope *Scope) (value.Value, error) {
	t, err := e.Eval(expr.Test, scope)
	if err != nil {
		return value.Value{}, err
	}
	if t.Kind() != value.Boolean {
		return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("if test must be boolean, got %s", t.Kind()))
	}
	if t.Bool() {
		return e.Eval(expr.Then, scope)
	}
	return e.Eval(expr.Else, scope)
}

func (e *Evaluator) evalForEach(expr *ast.Expression, scope *Scope) (value.Value, error) {
	nv, err := e.Eval(expr.NIters, scope)
	if err != nil {
		return value.Value{}, err
	}
	if nv.Kind() != value.Integer {
		return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("foreach iteration count must be an integer, got %s", nv.Kind()))
	}
	n := int(nv.Int64())

	type bound struct {
		name string
		vec  []value.Value
	}
	bounds := make([]bound, len(expr.Bindings))
	for i, b := range expr.Bindings {
		v, err := e.Eval(b.Expr, scope)
		if err != nil {
			return value.Value{}, err
		}
		if v.Kind() != value.Vector {
			return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("foreach binding %q must be a vector, got %s", b.Name, v.Kind()))
		}
		if len(v.Elems()) != n {
			return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("foreach binding %q has length %d, expected %d", b.Name, len(v.Elems()), n))
		}
		bounds[i] = bound{name: b.Name, vec: v.Elems()}
	}

	results := make([]value.Value, n)
	for k := 0; k < n; k++ {
		mark := scope.Mark()
		for _, b := range bounds {
			scope.Push(b.name, b.vec[k])
		}
		var last value.Value
		for _, stmt := range expr.Body {
			v, err := e.Eval(stmt, scope)
			if err != nil {
				scope.Truncate(mark)
				return value.Value{}, err
			}
			last = v
		}
		scope.Truncate(mark)
		results[k] = last
	}
	return value.Vec(results), nil
}

func (e *Evaluator) evalLoop(expr *ast.Expression, scope *Scope) (value.Value, error) {
	nv, err := e.Eval(expr.NIters, scope)
	if err != nil {
		return value.Value{}, err
	}
	if nv.Kind() != value.Integer {
		return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("loop iteration count must be an integer, got %s", nv.Kind()))
	}
	n := int(nv.Int64())

	acc, err := e.Eval(expr.Accumulator, scope)
	if err != nil {
		return value.Value{}, err
	}

	params := make([]value.Value, len(expr.LoopParams))
	for i, p := range expr.LoopParams {
		v, err := e.Eval(p, scope)
		if err != nil {
			return value.Value{}, err
		}
		params[i] = v
	}

	fn, ok := e.Functions[expr.LoopFunc]
	if !ok {
		return value.Value{}, e.unresolvedFunction(expr.LoopFunc)
	}

	for i := 0; i < n; i++ {
		args := make([]value.Value, 0, 2+len(params))
		args = append(args, value.Int(int64(i)), acc)
		args = append(args, params...)
		v, err := e.callFunction(fn, args)
		if err != nil {
			return value.Value{}, err
		}
		acc = v
	}
	return acc, nil
}

func (e *Evaluator) evalApply(expr *ast.Expression, scope *Scope) (value.Value, error) {
	args := make([]value.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := e.Eval(a, scope)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	if f, ok := e.Builtins.Get(expr.FuncName); ok {
		v, err := f(args)
		if err != nil {
			kind := ferr.KindType
			if builtin.IsDistributionConstructorError(err) {
				kind = ferr.KindDistribution
			}
			return value.Value{}, ferr.Wrap(kind, expr.FuncName, err)
		}
		return v, nil
	}

	if fn, ok := e.Functions[expr.FuncName]; ok {
		return e.callFunction(fn, args)
	}

	return value.Value{}, e.unresolvedFunction(expr.FuncName)
}

func (e *Evaluator) unresolvedFunction(name string) error {
	names := make([]string, 0, len(e.Functions)+len(e.Builtins.Names()))
	for n := range e.Functions {
		names = append(names, n)
	}
	names = append(names, e.Builtins.Names()...)
	hint := suggest.Closest(name, names)
	msg := fmt.Sprintf("function %q is not defined", name)
	if hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", hint)
	}
	return ferr.New(ferr.KindResolution, msg)
}

func (e *Evaluator) callFunction(fn *ast.FunctionDef, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return value.Value{}, ferr.New(ferr.KindArity, fmt.Sprintf("function %q expects %d arguments, got %d", fn.Name, len(fn.Params), len(args)))
	}
	scope := NewScope()
	for i, p := range fn.Params {
		scope.Push(p, args[i])
	}
	return e.Eval(fn.Body, scope)
}

func (e *Evaluator) evalSample(expr *ast.Expression, scope *Scope) (value.Value, error) {
	dv, err := e.Eval(expr.Child, scope)
	if err != nil {
		return value.Value{}, err
	}
	if dv.Kind() != value.Distribution {
		return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("sample expects a distribution, got %s", dv.Kind()))
	}
	v, err := e.Driver.Sample(dv.Distribution(), expr.Address)
	if err != nil {
		return value.Value{}, ferr.Wrap(ferr.KindDistribution, "sample", err)
	}
	return v, nil
}

func (e *Evaluator) evalObserve(expr *ast.Expression, scope *Scope) (value.Value, error) {
	dv, err := e.Eval(expr.Child, scope)
	if err != nil {
		return value.Value{}, err
	}
	if dv.Kind() != value.Distribution {
		return value.Value{}, ferr.New(ferr.KindType, fmt.Sprintf("observe expects a distribution, got %s", dv.Kind()))
	}
	ov, err := e.Eval(expr.Value, scope)
	if err != nil {
		return value.Value{}, err
	}
	v, err := e.Driver.Observe(dv.Distribution(), ov, expr.Address)
	if err != nil {
		return value.Value{}, ferr.Wrap(ferr.KindDistribution, "observe", err)
	}
	return v, nil
}
