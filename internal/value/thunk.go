package value

import (
	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/errs"
)

// Evaluator is the minimal callback surface a Thunk needs to force itself.
// It is satisfied by *eval.Evaluator; the interface exists here, rather
// than importing package eval directly, purely to break the import cycle
// between the evaluator and the values it produces — the same reason the
// reference implementation's runtime package threads an EvalCallback
// closure through LazyThunk instead of holding an *Interpreter directly.
type Evaluator interface {
	Eval(e *ast.Expr, env *Environment) (RuntimeValue, error)
}

// Thunk is a deferred, at-most-once-evaluated expression: an unevaluated
// AST node, the environment captured when it was created, and a
// once-writable memoization slot (spec.md §3, §4.4).
//
// Evaluation is single-threaded and synchronous (spec.md §5), so the slot
// needs no atomics — a pair of plain bools is enough to detect the two
// failure modes spec.md §4.4 calls out: forcing an already-filled slot
// (returns the memoized value) and forcing a slot that is itself mid-force
// (a fatal internal error; the type checker should have rejected any
// program that could cause this).
type Thunk struct {
	expr *ast.Expr
	env  *Environment

	forcing bool
	done    bool
	result  RuntimeValue
}

// NewThunk creates a thunk over expr, capturing env.
func NewThunk(expr *ast.Expr, env *Environment) *Thunk {
	return &Thunk{expr: expr, env: env}
}

// Force returns the thunk's value, evaluating expr in its captured
// environment on the first call and returning the memoized result on every
// subsequent call.
func (t *Thunk) Force(ev Evaluator) (RuntimeValue, error) {
	if t.done {
		return t.result, nil
	}

	if t.forcing {
		errs.Fatal("re-entrant thunk force (checker should have flagged this program as Divergent)")
	}

	t.forcing = true

	v, err := ev.Eval(t.expr, t.env)

	t.forcing = false

	if err != nil {
		return RuntimeValue{}, err
	}

	t.done = true
	t.result = v

	return v, nil
}
