package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes a human-readable, indented rendering of e to w. It exists
// for CLI diagnostics (spec.md §6's `typecheck`/`eval` drivers);
// it is not a serialization format and round-tripping is not a goal
// (spec.md §1 excludes AST serialization from scope).
func Print(w io.Writer, e *Expr) {
	printIndent(w, e, 0)
}

func printIndent(w io.Writer, e *Expr, indent int) {
	prefix := strings.Repeat("  ", indent)

	if e == nil {
		fmt.Fprintf(w, "%s<nil>\n", prefix)

		return
	}

	switch e.Kind {
	case KindConst:
		fmt.Fprintf(w, "%s%s %s\n", prefix, e.ConstKind, constLiteral(e))

	case KindName:
		fmt.Fprintf(w, "%sName %s\n", prefix, e.Name)

	case KindApply:
		fmt.Fprintf(w, "%sApply\n", prefix)
		printIndent(w, e.Target, indent+1)

		for _, arg := range e.Args {
			printIndent(w, arg, indent+1)
		}

	case KindAbstract:
		if e.IsHost() {
			fmt.Fprintf(w, "%sHost %s\n", prefix, e.HostName)

			return
		}

		fmt.Fprintf(w, "%sAbstract(%s)\n", prefix, strings.Join(e.Params, " "))
		printIndent(w, e.Body, indent+1)

	case KindMatch:
		fmt.Fprintf(w, "%sMatch (reserved, not implemented)\n", prefix)

	case KindNever:
		fmt.Fprintf(w, "%sNever\n", prefix)
	}
}

func constLiteral(e *Expr) string {
	switch e.ConstKind {
	case ConstInt:
		return strconv.FormatInt(e.IntVal, 10)
	case ConstFloat:
		return strconv.FormatFloat(e.FloatVal, 'g', -1, 64)
	case ConstBool:
		return strconv.FormatBool(e.BoolVal)
	case ConstEmpty:
		return "~"
	default:
		return "?"
	}
}
