package ast

import (
	"fmt"

	"github.com/cwbudde/go-lam/internal/errs"
)

// renamer performs the hygienic alpha-renaming pass described in spec.md
// §4.1: every formal parameter gets a strictly-increasing per-base-name
// counter, and every Name occurrence within that parameter's scope resolves
// to "base#counter". Counters only ever increase (guaranteeing global
// uniqueness across the whole tree); the "current" map tracks which
// counter value is the one currently in scope for a base name, and is
// unwound on scope exit so enclosing bindings of the same base name are
// visible again.
type renamer struct {
	counters map[string]int
	current  map[string]int
}

// Rename walks a freshly-parsed Expr tree and rewrites it so that every
// bound Name has the form "base#k" and is unique. It mutates the
// input tree in place (safe immediately after parsing, before any subtree
// is shared) and returns it for convenience.
func Rename(e *Expr) (*Expr, error) {
	r := &renamer{counters: map[string]int{}, current: map[string]int{}}

	return r.rename(e)
}

func (r *renamer) rename(e *Expr) (*Expr, error) {
	if e == nil {
		return nil, nil
	}

	switch e.Kind {
	case KindConst:
		return e, nil

	case KindName:
		c, ok := r.current[e.Name]
		if !ok {
			return nil, errs.NewParseError(errs.CustomParse, e.Pos, "",
				fmt.Sprintf("free name: %s", e.Name))
		}

		e.Name = fmt.Sprintf("%s#%d", e.Name, c)

		return e, nil

	case KindApply:
		target, err := r.rename(e.Target)
		if err != nil {
			return nil, err
		}

		e.Target = target

		for i, arg := range e.Args {
			renamed, err := r.rename(arg)
			if err != nil {
				return nil, err
			}

			e.Args[i] = renamed
		}

		return e, nil

	case KindAbstract:
		if e.IsHost() {
			return e, nil
		}

		restore := r.enterScope(e.Params)

		renamedParams := make([]string, len(e.Params))
		for i, p := range e.Params {
			renamedParams[i] = fmt.Sprintf("%s#%d", p, r.current[p])
		}

		body, err := r.rename(e.Body)

		r.exitScope(e.Params, restore)

		if err != nil {
			return nil, err
		}

		e.Body = body

		copy(e.Params, renamedParams)

		return e, nil

	case KindMatch:
		value, err := r.rename(e.MatchValue)
		if err != nil {
			return nil, err
		}

		e.MatchValue = value

		for i, branch := range e.MatchBranches {
			renamed, err := r.rename(branch.Value)
			if err != nil {
				return nil, err
			}

			e.MatchBranches[i].Value = renamed
		}

		return e, nil

	case KindNever:
		return e, nil

	default:
		return nil, errs.NewParseError(errs.CustomParse, e.Pos, "", "unknown expr kind during rename")
	}
}

// enterScope increments each param's monotonic counter and makes that
// counter the active one, returning the previous active values (or -1 for
// params that had no prior binding) so exitScope can restore them.
func (r *renamer) enterScope(params []string) []int {
	restore := make([]int, len(params))

	for i, p := range params {
		if prev, ok := r.current[p]; ok {
			restore[i] = prev
		} else {
			restore[i] = -1
		}

		r.counters[p]++
		r.current[p] = r.counters[p]
	}

	return restore
}

func (r *renamer) exitScope(params []string, restore []int) {
	for i, p := range params {
		if restore[i] == -1 {
			delete(r.current, p)
		} else {
			r.current[p] = restore[i]
		}
	}
}
