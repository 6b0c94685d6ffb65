package checker

import (
	"fmt"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/errs"
)

// checkApply implements the Apply rule of spec.md §4.3: resolve and check
// the target; a Divergent target propagates; a non-function target returns
// itself when applied to zero arguments and is a type error otherwise; a
// FunctionDecl target dispatches either to its host (arity is the host's
// own business) or symbolically substitutes its formals with the raw
// argument expressions and checks the body.
func (c *Checker) checkApply(e *ast.Expr) (datatype.DataType, error) {
	targetType, err := c.Check(e.Target)
	if err != nil {
		return datatype.DataType{}, err
	}

	if targetType.IsDivergent() {
		return datatype.Divergent(), nil
	}

	if targetType.Kind != datatype.KindFunctionDecl {
		if len(e.Args) == 0 {
			return targetType, nil
		}

		return datatype.DataType{}, errs.NewTypeError(errs.NotAFunction,
			fmt.Sprintf("cannot apply arguments to a %s value", targetType))
	}

	decl := targetType.DeclExpr

	if decl.IsHost() {
		argTypes, err := c.checkArgs(e.Args)
		if err != nil {
			return datatype.DataType{}, err
		}

		fn, ok := c.hosts.Lookup(decl.HostName)
		if !ok {
			return datatype.DataType{}, errs.NewTypeError(errs.CustomType,
				fmt.Sprintf("unknown host function %q", decl.HostName))
		}

		return fn.TypeCheck(argTypes)
	}

	if len(decl.Params) != len(e.Args) {
		return datatype.DataType{}, errs.NewTypeError(errs.ArityMismatch,
			fmt.Sprintf("function expects %d arguments, got %d", len(decl.Params), len(e.Args)))
	}

	if _, err := c.checkArgs(e.Args); err != nil {
		return datatype.DataType{}, err
	}

	next := cloneSubs(targetType.ParamSet)
	for i, p := range decl.Params {
		next[p] = e.Args[i]
	}

	saved := c.subs
	c.subs = next
	result, err := c.Check(decl.Body)
	c.subs = saved

	return result, err
}

// checkArgs type-checks each argument expression in the current
// substitution map, short-circuiting on the first error.
func (c *Checker) checkArgs(args []*ast.Expr) ([]datatype.DataType, error) {
	types := make([]datatype.DataType, len(args))

	for i, a := range args {
		t, err := c.Check(a)
		if err != nil {
			return nil, err
		}

		types[i] = t
	}

	return types, nil
}
