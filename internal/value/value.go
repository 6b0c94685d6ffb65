// Package value defines RuntimeValue, the persistent Environment of lazy
// thunks, and the Thunk once-cell the lazy evaluator forces expressions
// into (spec.md §3, §4.4).
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-lam/internal/ast"
)

// Kind discriminates the RuntimeValue sum type.
type Kind int

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindBool
	KindFunction
	KindHost
)

// RuntimeValue mirrors DataType at the value level (spec.md §3).
type RuntimeValue struct {
	Kind Kind

	IntVal   int64
	FloatVal float64
	BoolVal  bool

	// Function
	Params      []string
	Body        *ast.Expr
	CapturedEnv *Environment

	// Host
	HostName string
}

func EmptyValue() RuntimeValue      { return RuntimeValue{Kind: KindEmpty} }
func MakeInt(v int64) RuntimeValue  { return RuntimeValue{Kind: KindInt, IntVal: v} }
func MakeFloat(v float64) RuntimeValue {
	return RuntimeValue{Kind: KindFloat, FloatVal: v}
}
func MakeBool(v bool) RuntimeValue { return RuntimeValue{Kind: KindBool, BoolVal: v} }

func Function(params []string, body *ast.Expr, env *Environment) RuntimeValue {
	return RuntimeValue{Kind: KindFunction, Params: params, Body: body, CapturedEnv: env}
}

func Host(name string) RuntimeValue { return RuntimeValue{Kind: KindHost, HostName: name} }

// Truthy implements the "≠ 0" truthification spec.md §4.2 defines for
// logical operators over numeric operands, plus the natural reading for
// Bool.
func (v RuntimeValue) Truthy() bool {
	switch v.Kind {
	case KindBool:
		return v.BoolVal
	case KindInt:
		return v.IntVal != 0
	case KindFloat:
		return v.FloatVal != 0
	default:
		return false
	}
}

func (v RuntimeValue) String() string {
	switch v.Kind {
	case KindEmpty:
		return "~"
	case KindInt:
		return strconv.FormatInt(v.IntVal, 10)
	case KindFloat:
		return strconv.FormatFloat(v.FloatVal, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.BoolVal)
	case KindFunction:
		return fmt.Sprintf("<function(%s)>", strings.Join(v.Params, " "))
	case KindHost:
		return fmt.Sprintf("<host %s>", v.HostName)
	default:
		return "<unknown>"
	}
}
