// Package datatype defines DataType, the static result of type-checking a
// go-lam expression (spec.md §3).
package datatype

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lam/internal/ast"
)

// Kind discriminates the DataType sum type.
type Kind int

const (
	KindValue Kind = iota
	KindEmpty
	KindFunctionDecl
	KindDivergent
)

// ValueType enumerates the concrete scalar value types.
type ValueType int

const (
	Int ValueType = iota
	Float
	Bool
)

func (v ValueType) String() string {
	switch v {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// DataType is the checker's verdict for one expression.
//
// FunctionDecl carries ParamSet: a snapshot of the checker's substitution
// map taken at the Abstract's site. This is what realizes lexical-scope
// closure at the type level (spec.md §3) — it is the type-checking analogue
// of a RuntimeValue.Function's captured_env.
type DataType struct {
	Kind Kind

	ValueType ValueType // meaningful iff Kind == KindValue

	Params   []string              // meaningful iff Kind == KindFunctionDecl
	DeclExpr *ast.Expr             // meaningful iff Kind == KindFunctionDecl
	ParamSet map[string]*ast.Expr  // meaningful iff Kind == KindFunctionDecl
}

func Value(vt ValueType) DataType { return DataType{Kind: KindValue, ValueType: vt} }
func Empty() DataType             { return DataType{Kind: KindEmpty} }
func Divergent() DataType         { return DataType{Kind: KindDivergent} }

// Function builds a FunctionDecl DataType, snapshotting paramSet by
// reference: callers must treat the map as immutable from this point on
// (the checker always passes a freshly-cloned map, matching the reference
// implementation's `trs.subs.clone()`).
func Function(params []string, declExpr *ast.Expr, paramSet map[string]*ast.Expr) DataType {
	return DataType{Kind: KindFunctionDecl, Params: params, DeclExpr: declExpr, ParamSet: paramSet}
}

// IsDivergent reports whether dt is the Divergent verdict.
func (dt DataType) IsDivergent() bool { return dt.Kind == KindDivergent }

// Equal reports structural equality between two concrete (non-function)
// DataTypes, used by the `if` host operator to compare its two branches
// (spec.md §4.2). Function types compare equal only when they share the
// same declaration expression — two syntactically identical but distinct
// lambdas are not interchangeable, matching the reference implementation's
// derived equality over the (possibly distinct) decl_expr.
func (dt DataType) Equal(other DataType) bool {
	if dt.Kind != other.Kind {
		return false
	}

	switch dt.Kind {
	case KindValue:
		return dt.ValueType == other.ValueType
	case KindEmpty, KindDivergent:
		return true
	case KindFunctionDecl:
		return dt.DeclExpr == other.DeclExpr
	default:
		return false
	}
}

func (dt DataType) String() string {
	switch dt.Kind {
	case KindValue:
		return dt.ValueType.String()
	case KindEmpty:
		return "Empty"
	case KindDivergent:
		return "Divergent"
	case KindFunctionDecl:
		return fmt.Sprintf("Function(%s)", strings.Join(dt.Params, " "))
	default:
		return "Unknown"
	}
}
