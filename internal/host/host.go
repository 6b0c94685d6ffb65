// Package host implements the built-in operator registry go-lam's Host
// stubs dispatch to (spec.md §4.2).
//
// A HostFunction has exactly the two entry points spec.md and spec.md's
// design notes call for: a type-check method over argument DataTypes, and
// an evaluation method over lazy argument Thunks. This mirrors the
// reference implementation's `trait HostFunction { fn typeck; fn eval }`
// and the teacher's per-operator-family builtin dispatch style (one Go
// value per operator, registered into a lookup map at construction time).
package host

import (
	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/value"
)

// HostFunction is a built-in operator callable from object programs
// through a `$name` stub.
type HostFunction interface {
	// TypeCheck returns the static result type for a call with the given
	// argument types, or a *errs.TypeError.
	TypeCheck(args []datatype.DataType) (datatype.DataType, error)

	// Eval evaluates a call with the given lazy argument thunks. Each
	// HostFunction decides its own strictness: arithmetic and comparison
	// force every argument, `if` forces only its predicate and the chosen
	// branch.
	Eval(ev value.Evaluator, args []*value.Thunk) (value.RuntimeValue, error)
}

// Registry is the name -> HostFunction lookup table the checker and
// evaluator both consult when an Apply's target resolves to a Host stub.
type Registry struct {
	fns map[string]HostFunction
}

// NewRegistry builds a Registry pre-populated with the normative builtin
// set from spec.md §2/§4.2: arithmetic, comparisons, logical operators,
// and `if`. The list/collection builtins the reference implementation left
// half-finished are intentionally not ported (spec.md §1, §9).
func NewRegistry() *Registry {
	r := &Registry{fns: map[string]HostFunction{}}

	for _, op := range arithmeticOps() {
		r.fns[op.name] = op
	}

	for _, op := range compareOps() {
		r.fns[op.name] = op
	}

	for _, op := range logicalOps() {
		r.fns[op.name] = op
	}

	r.fns["if"] = ifOp{}

	return r
}

// Lookup returns the HostFunction registered under name.
func (r *Registry) Lookup(name string) (HostFunction, bool) {
	fn, ok := r.fns[name]

	return fn, ok
}

func isNumeric(dt datatype.DataType) bool {
	return dt.Kind == datatype.KindValue && (dt.ValueType == datatype.Int || dt.ValueType == datatype.Float)
}

func asFloat(v value.RuntimeValue) float64 {
	switch v.Kind {
	case value.KindInt:
		return float64(v.IntVal)
	case value.KindFloat:
		return v.FloatVal
	default:
		errs.Fatal("host operator received non-numeric value %v (checker should have rejected this)", v)

		return 0
	}
}

func forceArgs(ev value.Evaluator, args []*value.Thunk) ([]value.RuntimeValue, error) {
	vals := make([]value.RuntimeValue, len(args))

	for i, t := range args {
		v, err := t.Force(ev)
		if err != nil {
			return nil, err
		}

		vals[i] = v
	}

	return vals, nil
}
