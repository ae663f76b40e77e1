package program

import (
	"github.com/foppl-lang/foppl/internal/ast"
	"github.com/foppl-lang/foppl/internal/builtin"
	"github.com/foppl-lang/foppl/internal/cache"
	"github.com/foppl-lang/foppl/internal/dataset"
	"github.com/foppl-lang/foppl/internal/dist"
	"github.com/foppl-lang/foppl/internal/driver"
	"github.com/foppl-lang/foppl/internal/eval"
)

// DecodedProgram pairs an addressed ast.Program with the builtin table it
// should be evaluated against, ready to drive repeated re-executions.
type DecodedProgram struct {
	AST      *ast.Program
	builtins *builtin.Registry
}

// DecodeFresh validates and decodes raw into a DecodedProgram, always
// re-running the address pass.
func DecodeFresh(raw []byte) (*DecodedProgram, error) {
	prog, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &DecodedProgram{AST: prog, builtins: builtin.Standard(dist.Standard())}, nil
}

// DecodeWithCache behaves like DecodeFresh, but first consults the CBOR
// cache at cachePath; on a hash match it reuses the cached, already
// addressed program instead of re-running the address pass (which is
// idempotent, so this is purely an optimization, never an observable
// behavior change — §8's idempotence property is exactly what makes this
// safe).
func DecodeWithCache(raw []byte, cachePath string) (*DecodedProgram, error) {
	if cached, ok := cache.Load(cachePath, raw); ok {
		return &DecodedProgram{AST: cached, builtins: builtin.Standard(dist.Standard())}, nil
	}
	dp, err := DecodeFresh(raw)
	if err != nil {
		return nil, err
	}
	_ = cache.Save(cachePath, raw, dp.AST) // best-effort; a cache write failure doesn't abort inference
	return dp, nil
}

// RunInference re-executes the top-level expression n times against d,
// per §4.4 and §7: the first error aborts the whole invocation and no
// dataset is produced, regardless of how many prior evaluations succeeded.
func (dp *DecodedProgram) RunInference(n int, d driver.Driver) (*dataset.Dataset, error) {
	ev := eval.New(dp.AST, dp.builtins, d)
	for i := 0; i < n; i++ {
		v, err := ev.RunOnce(dp.AST.Top)
		if err != nil {
			return nil, err
		}
		d.FinishOneEvaluation(v)
	}
	return d.Finalize()
}
