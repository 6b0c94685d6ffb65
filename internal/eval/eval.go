// Package eval implements the lazy evaluator: it mirrors the checker's
// shape but reduces Expr + Environment to RuntimeValue instead of proving
// a DataType (spec.md §4.4).
package eval

import (
	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/host"
	"github.com/cwbudde/go-lam/internal/value"
)

// Evaluator satisfies value.Evaluator: it is the callback a Thunk uses to
// force itself, and the entry point the CLI drives directly.
type Evaluator struct {
	hosts *host.Registry
}

// New builds an Evaluator dispatching Host values through hosts.
func New(hosts *host.Registry) *Evaluator {
	return &Evaluator{hosts: hosts}
}

// Eval reduces e in env to a RuntimeValue.
func (ev *Evaluator) Eval(e *ast.Expr, env *value.Environment) (value.RuntimeValue, error) {
	switch e.Kind {
	case ast.KindConst:
		return ev.evalConst(e), nil
	case ast.KindName:
		return ev.evalName(e, env)
	case ast.KindAbstract:
		if e.IsHost() {
			return value.Host(e.HostName), nil
		}

		return value.Function(e.Params, e.Body, env), nil
	case ast.KindApply:
		return ev.evalApply(e, env)
	case ast.KindMatch:
		return value.RuntimeValue{}, errs.NewRuntimeError(errs.CustomRuntime, "match is reserved and not implemented")
	default:
		errs.Fatal("eval: unhandled expr kind %s", e.Kind)

		return value.RuntimeValue{}, nil
	}
}

func (ev *Evaluator) evalConst(e *ast.Expr) value.RuntimeValue {
	switch e.ConstKind {
	case ast.ConstInt:
		return value.MakeInt(e.IntVal)
	case ast.ConstFloat:
		return value.MakeFloat(e.FloatVal)
	case ast.ConstBool:
		return value.MakeBool(e.BoolVal)
	default:
		return value.EmptyValue()
	}
}

func (ev *Evaluator) evalName(e *ast.Expr, env *value.Environment) (value.RuntimeValue, error) {
	t, ok := env.Get(e.Name)
	if !ok {
		errs.Fatal("name %q not bound in environment (checker should have rejected this)", e.Name)
	}

	return t.Force(ev)
}

func (ev *Evaluator) evalApply(e *ast.Expr, env *value.Environment) (value.RuntimeValue, error) {
	target, err := ev.Eval(e.Target, env)
	if err != nil {
		return value.RuntimeValue{}, err
	}

	switch target.Kind {
	case value.KindFunction:
		if len(target.Params) != len(e.Args) {
			errs.Fatal("calling a %d-arg function with %d arguments (checker should have rejected this)",
				len(target.Params), len(e.Args))
		}

		extra := make(map[string]*value.Thunk, len(target.Params))
		for i, p := range target.Params {
			extra[p] = value.NewThunk(e.Args[i], env)
		}

		callEnv := target.CapturedEnv.ExtendAll(extra)

		return ev.Eval(target.Body, callEnv)

	case value.KindHost:
		fn, ok := ev.hosts.Lookup(target.HostName)
		if !ok {
			errs.Fatal("unknown host function %q (checker should have rejected this)", target.HostName)
		}

		thunks := make([]*value.Thunk, len(e.Args))
		for i, a := range e.Args {
			thunks[i] = value.NewThunk(a, env)
		}

		return fn.Eval(ev, thunks)

	default:
		if len(e.Args) == 0 {
			return target, nil
		}

		errs.Fatal("applying %d arguments to non-function value %v (checker should have rejected this)", len(e.Args), target)

		return value.RuntimeValue{}, nil
	}
}
