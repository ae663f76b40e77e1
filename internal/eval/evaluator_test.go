package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/ast"
	"github.com/foppl-lang/foppl/internal/builtin"
	"github.com/foppl-lang/foppl/internal/dist"
	"github.com/foppl-lang/foppl/internal/driver/prior"
	"github.com/foppl-lang/foppl/internal/eval"
	"github.com/foppl-lang/foppl/internal/ferr"
	"github.com/foppl-lang/foppl/internal/value"
)

func newEvaluator(program *ast.Program) *eval.Evaluator {
	ast.AssignAddresses(program)
	return eval.New(program, builtin.Standard(dist.Standard()), prior.New())
}

func TestEvalArithmeticAndLet(t *testing.T) {
	t.Parallel()

	top := ast.Let(
		[]ast.Binding{{Name: "x", Expr: ast.Integer(2)}},
		[]*ast.Expression{ast.Apply("+", []*ast.Expression{ast.Variable("x"), ast.Integer(3)})},
	)
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	v, err := ev.RunOnce(top)
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Int64())
}

func TestEvalLetDiscardsBindingsOnError(t *testing.T) {
	t.Parallel()

	top := ast.Let(
		[]ast.Binding{{Name: "x", Expr: ast.Integer(1)}},
		[]*ast.Expression{ast.Variable("y")},
	)
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	scope := eval.NewScope()
	_, err := ev.Eval(top, scope)
	require.Error(t, err)
	_, ok := scope.Lookup("x")
	require.False(t, ok, "binding x survived the failed let")
}

func TestEvalIfRequiresBoolean(t *testing.T) {
	t.Parallel()

	top := ast.If(ast.Integer(1), ast.Integer(2), ast.Integer(3))
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	_, err := ev.RunOnce(top)
	require.Error(t, err)
}

func TestEvalIfBranches(t *testing.T) {
	t.Parallel()

	top := ast.If(ast.Boolean(true), ast.Integer(1), ast.Integer(2))
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	v, err := ev.RunOnce(top)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int64())
}

func TestEvalUnresolvedVariableSuggestsClosestFunction(t *testing.T) {
	t.Parallel()

	top := ast.Variable("squre")
	fn := &ast.FunctionDef{Name: "square", Params: []string{"x"}, Body: ast.Apply("*", []*ast.Expression{ast.Variable("x"), ast.Variable("x")})}
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{"square": fn}, Top: top}
	ev := newEvaluator(prog)

	_, err := ev.RunOnce(top)
	require.Error(t, err)
	require.Contains(t, err.Error(), "square")
}

func TestEvalFunctionCallArityError(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDef{Name: "square", Params: []string{"x"}, Body: ast.Apply("*", []*ast.Expression{ast.Variable("x"), ast.Variable("x")})}
	top := ast.Apply("square", []*ast.Expression{ast.Integer(1), ast.Integer(2)})
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{"square": fn}, Top: top}
	ev := newEvaluator(prog)

	_, err := ev.RunOnce(top)
	require.Error(t, err)
}

func TestEvalForEachZipsBindingsAndProducesVector(t *testing.T) {
	t.Parallel()

	xs := ast.VectorExpr([]*ast.Expression{ast.Integer(1), ast.Integer(2), ast.Integer(3)})
	top := ast.ForEach(
		ast.Integer(3),
		[]ast.Binding{{Name: "x", Expr: xs}},
		[]*ast.Expression{ast.Apply("*", []*ast.Expression{ast.Variable("x"), ast.Integer(10)})},
	)
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	v, err := ev.RunOnce(top)
	require.NoError(t, err)
	require.Equal(t, []value.Value{value.Int(10), value.Int(20), value.Int(30)}, v.Elems())
}

func TestEvalSampleDispatchesToDriver(t *testing.T) {
	t.Parallel()

	sampleExpr := ast.Sample(ast.Apply("flip", []*ast.Expression{ast.Float(1.0)}))
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: sampleExpr}
	ev := newEvaluator(prog)

	v, err := ev.RunOnce(sampleExpr)
	require.NoError(t, err)
	require.Equal(t, value.Boolean, v.Kind())
	require.True(t, v.Bool())
}

func TestEvalSampleRequiresDistribution(t *testing.T) {
	t.Parallel()

	top := ast.Sample(ast.Integer(1))
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	_, err := ev.RunOnce(top)
	require.Error(t, err)
}

func TestEvalDistributionConstructorErrorClassifiedAsKindDistribution(t *testing.T) {
	t.Parallel()

	top := ast.Apply("normal", []*ast.Expression{ast.Integer(0), ast.Integer(-1)})
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	_, err := ev.RunOnce(top)
	require.Error(t, err)

	var fe *ferr.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, ferr.KindDistribution, fe.Kind)
}

func TestEvalOrdinaryBuiltinErrorClassifiedAsKindType(t *testing.T) {
	t.Parallel()

	top := ast.Apply("+", []*ast.Expression{ast.Boolean(true), ast.Integer(1)})
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}, Top: top}
	ev := newEvaluator(prog)

	_, err := ev.RunOnce(top)
	require.Error(t, err)

	var fe *ferr.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, ferr.KindType, fe.Kind)
}
