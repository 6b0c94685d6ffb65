package checker

import (
	"fmt"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/errs"
)

// resolveName chases the Name->Name substitution chain starting at name,
// exactly as the reference implementation's resolve_name does. A chain
// that revisits a name it has already seen resolves to the Never sentinel
// (spec.md §3, §4.3); a name with no entry in the substitution map at all
// is an UnresolvedName type error.
func (c *Checker) resolveName(name string) (*ast.Expr, error) {
	seen := map[string]bool{}
	cur := name

	for {
		if seen[cur] {
			return ast.Never(), nil
		}

		seen[cur] = true

		expr, ok := c.subs[cur]
		if !ok {
			return nil, errs.NewTypeError(errs.UnresolvedName, fmt.Sprintf("unresolved name %q", name))
		}

		if expr.Kind == ast.KindName {
			cur = expr.Name

			continue
		}

		return expr, nil
	}
}

// cloneSubs returns a shallow copy of m, leaving m itself untouched. Used
// to snapshot the substitution map at an Abstract's site (the FunctionDecl
// param_set) and to build the extended map installed for a function call.
func cloneSubs(m map[string]*ast.Expr) map[string]*ast.Expr {
	next := make(map[string]*ast.Expr, len(m))

	for k, v := range m {
		next[k] = v
	}

	return next
}
