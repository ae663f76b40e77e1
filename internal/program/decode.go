// Package program decodes the external JSON AST document (SPEC_FULL.md §5:
// "the program is consumed as a JSON AST document") into an ast.Program,
// validating it against the schema in schema.go first so structural
// mistakes are Parse/address errors (§7), not evaluator crashes.
package program

import (
	"encoding/json"
	"fmt"

	"github.com/foppl-lang/foppl/internal/ast"
)

type jsonBinding struct {
	Name string    `json:"name"`
	Expr *jsonExpr `json:"expr"`
}

type jsonExpr struct {
	Tag string `json:"tag"`

	Bool  bool    `json:"bool,omitempty"`
	Int   int64   `json:"int,omitempty"`
	Float float64 `json:"float,omitempty"`
	Name  string  `json:"name,omitempty"`

	Bindings []jsonBinding `json:"bindings,omitempty"`
	Body     []*jsonExpr   `json:"body,omitempty"`

	Child    *jsonExpr `json:"child,omitempty"`
	Observed *jsonExpr `json:"observed,omitempty"`

	Test *jsonExpr `json:"test,omitempty"`
	Then *jsonExpr `json:"then,omitempty"`
	Else *jsonExpr `json:"else,omitempty"`

	ApplyName string      `json:"apply_name,omitempty"`
	Args      []*jsonExpr `json:"args,omitempty"`

	Elements []*jsonExpr `json:"elements,omitempty"`

	N      *jsonExpr   `json:"n,omitempty"`
	Acc    *jsonExpr   `json:"acc,omitempty"`
	Fn     string      `json:"fn,omitempty"`
	Params []*jsonExpr `json:"params,omitempty"`
}

type jsonFunction struct {
	Name   string    `json:"name"`
	Params []string  `json:"params"`
	Body   *jsonExpr `json:"body"`
}

type jsonProgram struct {
	Functions []jsonFunction `json:"functions"`
	Top       *jsonExpr      `json:"top"`
}

// Decode validates raw against the schema and converts it into an
// ast.Program with addresses already assigned.
func Decode(raw []byte) (*ast.Program, error) {
	schema, err := CompileSchema()
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("program: invalid JSON: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("program: schema validation failed: %w", err)
	}

	var doc jsonProgram
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("program: decoding program: %w", err)
	}

	prog := &ast.Program{Functions: make(map[string]*ast.FunctionDef, len(doc.Functions))}
	for _, fn := range doc.Functions {
		body, err := toExpr(fn.Body)
		if err != nil {
			return nil, fmt.Errorf("program: function %q: %w", fn.Name, err)
		}
		prog.Functions[fn.Name] = &ast.FunctionDef{Name: fn.Name, Params: fn.Params, Body: body}
	}

	top, err := toExpr(doc.Top)
	if err != nil {
		return nil, fmt.Errorf("program: top-level expression: %w", err)
	}
	prog.Top = top

	ast.AssignAddresses(prog)
	return prog, nil
}

func toExpr(j *jsonExpr) (*ast.Expression, error) {
	if j == nil {
		return nil, fmt.Errorf("missing expression node")
	}
	switch j.Tag {
	case "boolean":
		return ast.Boolean(j.Bool), nil
	case "integer":
		return ast.Integer(j.Int), nil
	case "float":
		return ast.Float(j.Float), nil
	case "null":
		return ast.Null(), nil
	case "variable":
		return ast.Variable(j.Name), nil

	case "let":
		bindings, err := toBindings(j.Bindings)
		if err != nil {
			return nil, err
		}
		body, err := toExprs(j.Body)
		if err != nil {
			return nil, err
		}
		return ast.Let(bindings, body), nil

	case "sample":
		child, err := toExpr(j.Child)
		if err != nil {
			return nil, err
		}
		return ast.Sample(child), nil

	case "observe":
		distExpr, err := toExpr(j.Child)
		if err != nil {
			return nil, err
		}
		valExpr, err := toExpr(j.Observed)
		if err != nil {
			return nil, err
		}
		return ast.Observe(distExpr, valExpr), nil

	case "if":
		test, err := toExpr(j.Test)
		if err != nil {
			return nil, err
		}
		then, err := toExpr(j.Then)
		if err != nil {
			return nil, err
		}
		els, err := toExpr(j.Else)
		if err != nil {
			return nil, err
		}
		return ast.If(test, then, els), nil

	case "apply":
		args, err := toExprs(j.Args)
		if err != nil {
			return nil, err
		}
		return ast.Apply(j.ApplyName, args), nil

	case "vector":
		elements, err := toExprs(j.Elements)
		if err != nil {
			return nil, err
		}
		return ast.VectorExpr(elements), nil

	case "foreach":
		n, err := toExpr(j.N)
		if err != nil {
			return nil, err
		}
		bindings, err := toBindings(j.Bindings)
		if err != nil {
			return nil, err
		}
		body, err := toExprs(j.Body)
		if err != nil {
			return nil, err
		}
		return ast.ForEach(n, bindings, body), nil

	case "loop":
		n, err := toExpr(j.N)
		if err != nil {
			return nil, err
		}
		acc, err := toExpr(j.Acc)
		if err != nil {
			return nil, err
		}
		params, err := toExprs(j.Params)
		if err != nil {
			return nil, err
		}
		return ast.Loop(n, acc, j.Fn, params), nil

	default:
		return nil, fmt.Errorf("unknown expression tag %q", j.Tag)
	}
}

func toExprs(js []*jsonExpr) ([]*ast.Expression, error) {
	out := make([]*ast.Expression, len(js))
	for i, j := range js {
		e, err := toExpr(j)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func toBindings(js []jsonBinding) ([]ast.Binding, error) {
	out := make([]ast.Binding, len(js))
	for i, b := range js {
		e, err := toExpr(b.Expr)
		if err != nil {
			return nil, err
		}
		out[i] = ast.Binding{Name: b.Name, Expr: e}
	}
	return out, nil
}
