// Package ast defines the expression tree for go-lam programs and the
// hygienic renaming pass that runs immediately after parsing.
//
// Expr nodes are plain Go pointers: unlike the Rust reference implementation
// (which wraps each node body in an Rc for cheap structural sharing), Go
// pointers already give reference semantics for free, so a *Expr doubles as
// both the shared-subtree handle and the cycle-guard identity the type
// checker needs (spec.md §9: "The cycle guard uses node identity... not
// structural equality").
package ast

import "github.com/cwbudde/go-lam/internal/token"

// Kind discriminates the Expr sum type (spec.md §3).
type Kind int

const (
	// KindConst is a literal Int/Float/Bool/Empty constant.
	KindConst Kind = iota
	// KindName is a variable reference.
	KindName
	// KindApply is function/host application.
	KindApply
	// KindAbstract is a lambda or host stub.
	KindAbstract
	// KindMatch is reserved; see spec.md §9 — not implemented.
	KindMatch
	// KindNever is the checker-internal divergence sentinel. The parser
	// never produces it.
	KindNever
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "Const"
	case KindName:
		return "Name"
	case KindApply:
		return "Apply"
	case KindAbstract:
		return "Abstract"
	case KindMatch:
		return "Match"
	case KindNever:
		return "Never"
	default:
		return "Unknown"
	}
}

// ConstKind discriminates the Const literal payload.
type ConstKind int

const (
	ConstInt ConstKind = iota
	ConstFloat
	ConstBool
	ConstEmpty
)

func (k ConstKind) String() string {
	switch k {
	case ConstInt:
		return "Int"
	case ConstFloat:
		return "Float"
	case ConstBool:
		return "Bool"
	case ConstEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// MatchBranch is one arm of a reserved Match expression.
type MatchBranch struct {
	Tag   string
	Value *Expr
}

// Expr is the single recursive node type for go-lam programs.
//
// Exactly the fields relevant to Kind are meaningful; the zero value of the
// others is ignored. This mirrors the reference implementation's tagged
// union (ExprBody) collapsed into one Go struct, which is the idiomatic
// shape the teacher's own AST nodes use for small closed variant sets
// (see internal/ast's literal/operator nodes in the teacher repository).
type Expr struct {
	Kind Kind
	Pos  token.Position

	// KindConst
	ConstKind ConstKind
	IntVal    int64
	FloatVal  float64
	BoolVal   bool

	// KindName: Name holds the renamed form ("base#k") after the renaming
	// pass, or the raw surface identifier before it runs.
	Name string

	// KindApply
	Target *Expr
	Args   []*Expr

	// KindAbstract: exactly one of Body/HostName is set.
	Params   []string
	Body     *Expr
	HostName string

	// KindMatch (reserved, spec.md §9)
	MatchValue    *Expr
	MatchBranches []MatchBranch
}

// IsHost reports whether an Abstract node is a host stub rather than a user
// lambda.
func (e *Expr) IsHost() bool {
	return e.Kind == KindAbstract && e.Body == nil
}

// NewConst builds a constant node.
func NewConst(pos token.Position, kind ConstKind) *Expr {
	return &Expr{Kind: KindConst, Pos: pos, ConstKind: kind}
}

func NewInt(pos token.Position, v int64) *Expr {
	e := NewConst(pos, ConstInt)
	e.IntVal = v

	return e
}

func NewFloat(pos token.Position, v float64) *Expr {
	e := NewConst(pos, ConstFloat)
	e.FloatVal = v

	return e
}

func NewBool(pos token.Position, v bool) *Expr {
	e := NewConst(pos, ConstBool)
	e.BoolVal = v

	return e
}

func NewEmpty(pos token.Position) *Expr {
	return NewConst(pos, ConstEmpty)
}

// NewName builds a variable reference node.
func NewName(pos token.Position, name string) *Expr {
	return &Expr{Kind: KindName, Pos: pos, Name: name}
}

// NewApply builds an application node.
func NewApply(pos token.Position, target *Expr, args []*Expr) *Expr {
	return &Expr{Kind: KindApply, Pos: pos, Target: target, Args: args}
}

// NewAbstract builds a user lambda node.
func NewAbstract(pos token.Position, params []string, body *Expr) *Expr {
	return &Expr{Kind: KindAbstract, Pos: pos, Params: params, Body: body}
}

// NewHostStub builds the Abstract node a `$name` surface token produces: a
// parameterless lambda whose body is a reference to a host function.
func NewHostStub(pos token.Position, name string) *Expr {
	return &Expr{Kind: KindAbstract, Pos: pos, Params: nil, HostName: name}
}

// NewMatch builds a reserved Match node.
func NewMatch(pos token.Position, value *Expr, branches []MatchBranch) *Expr {
	return &Expr{Kind: KindMatch, Pos: pos, MatchValue: value, MatchBranches: branches}
}

// neverSingleton is the single shared Never sentinel the checker uses internally.
// The parser never produces this node.
var neverSingleton = &Expr{Kind: KindNever}

// Never returns the shared divergence sentinel.
func Never() *Expr { return neverSingleton }

// IsNever reports whether e is the divergence sentinel.
func IsNever(e *Expr) bool { return e != nil && e.Kind == KindNever }
