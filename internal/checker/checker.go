// Package checker implements the type/termination checker: a symbolic
// partial evaluator that reduces an Expr against a substitution map of
// renamed names, flagging non-termination via a node-identity cycle guard
// instead of running the program (spec.md §4.3).
package checker

import (
	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/host"
)

// Checker mirrors TypeResolveState from the reference implementation's
// typeck.rs: a substitution map from renamed names to the Expr they stand
// for, a host registry, and a set of Expr identities currently being
// visited (the cycle guard).
type Checker struct {
	hosts *host.Registry
	subs  map[string]*ast.Expr
	reach map[*ast.Expr]struct{}
}

// New builds a Checker with an empty substitution map, dispatching Host
// stubs through hosts.
func New(hosts *host.Registry) *Checker {
	return &Checker{
		hosts: hosts,
		subs:  map[string]*ast.Expr{},
		reach: map[*ast.Expr]struct{}{},
	}
}

// Check type-checks e, returning its DataType or a *errs.TypeError.
func (c *Checker) Check(e *ast.Expr) (datatype.DataType, error) {
	if ast.IsNever(e) {
		return datatype.Divergent(), nil
	}

	release, cyclic := c.guardedReach(e)
	if cyclic {
		return datatype.Divergent(), nil
	}

	defer release()

	return c.checkExpr(e)
}

// guardedReach records e as being visited, returning a release closure to
// undo that on exit. If e is already recorded, the caller has reached a
// cycle: it gets back cyclic=true and a no-op release.
func (c *Checker) guardedReach(e *ast.Expr) (release func(), cyclic bool) {
	if _, ok := c.reach[e]; ok {
		return func() {}, true
	}

	c.reach[e] = struct{}{}

	return func() { delete(c.reach, e) }, false
}

func (c *Checker) checkExpr(e *ast.Expr) (datatype.DataType, error) {
	switch e.Kind {
	case ast.KindConst:
		return c.checkConst(e), nil
	case ast.KindName:
		return c.checkName(e)
	case ast.KindApply:
		return c.checkApply(e)
	case ast.KindAbstract:
		return datatype.Function(e.Params, e, cloneSubs(c.subs)), nil
	case ast.KindMatch:
		return datatype.DataType{}, errs.NewTypeError(errs.NotImplemented, "match is reserved and not implemented")
	case ast.KindNever:
		return datatype.Divergent(), nil
	default:
		errs.Fatal("checker: unhandled expr kind %s", e.Kind)

		return datatype.DataType{}, nil
	}
}

func (c *Checker) checkConst(e *ast.Expr) datatype.DataType {
	switch e.ConstKind {
	case ast.ConstInt:
		return datatype.Value(datatype.Int)
	case ast.ConstFloat:
		return datatype.Value(datatype.Float)
	case ast.ConstBool:
		return datatype.Value(datatype.Bool)
	default:
		return datatype.Empty()
	}
}

func (c *Checker) checkName(e *ast.Expr) (datatype.DataType, error) {
	resolved, err := c.resolveName(e.Name)
	if err != nil {
		return datatype.DataType{}, err
	}

	if ast.IsNever(resolved) {
		return datatype.Divergent(), nil
	}

	return c.Check(resolved)
}
