// Package errs defines the three disjoint error taxonomies of go-lam —
// parse errors, type errors, and runtime errors. Only ParseError carries a
// source position and renders the offending line with a caret.
package errs

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lam/internal/token"
)

// ParseKind enumerates the parse error taxonomy from spec §4.1/§7.
type ParseKind int

const (
	InvalidUTF8 ParseKind = iota
	InvalidNumber
	InvalidToken
	UnexpectedEnd
	ExpectingExprBegin
	ExpectingExprBody
	BracketMismatch
	CustomParse
)

func (k ParseKind) String() string {
	switch k {
	case InvalidUTF8:
		return "InvalidUtf8"
	case InvalidNumber:
		return "InvalidNumber"
	case InvalidToken:
		return "InvalidToken"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case ExpectingExprBegin:
		return "ExpectingExprBegin"
	case ExpectingExprBody:
		return "ExpectingExprBody"
	case BracketMismatch:
		return "BracketMismatch"
	case CustomParse:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ParseError is a single parse-phase failure with source context.
type ParseError struct {
	Kind    ParseKind
	Message string
	Source  string
	Pos     token.Position
}

// NewParseError builds a ParseError of the given kind at pos, with source
// used only to render the offending line in Error().
func NewParseError(kind ParseKind, pos token.Position, source, message string) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Source: source, Message: message}
}

func (e *ParseError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s at %s", e.Kind, e.Pos))
	if e.Message != "" {
		sb.WriteString(": " + e.Message)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%4d | %s\n", e.Pos.Line, line))
		sb.WriteString(strings.Repeat(" ", 7+max(e.Pos.Column-1, 0)) + "^")
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// TypeKind enumerates the type error taxonomy from spec §4.3/§7.
// Divergent is not a member — it is a successful checker outcome, not an
// error.
type TypeKind int

const (
	ArityMismatch TypeKind = iota
	UnresolvedName
	OperandMismatch
	IfBranchMismatch
	NotAFunction
	NotImplemented
	CustomType
)

func (k TypeKind) String() string {
	switch k {
	case ArityMismatch:
		return "ArityMismatch"
	case UnresolvedName:
		return "UnresolvedName"
	case OperandMismatch:
		return "OperandMismatch"
	case IfBranchMismatch:
		return "IfBranchMismatch"
	case NotAFunction:
		return "NotAFunction"
	case NotImplemented:
		return "NotImplemented"
	case CustomType:
		return "Custom"
	default:
		return "Unknown"
	}
}

// TypeError is a single type-checking failure.
type TypeError struct {
	Kind    TypeKind
	Message string
}

func NewTypeError(kind TypeKind, message string) *TypeError {
	return &TypeError{Kind: kind, Message: message}
}

func (e *TypeError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// RuntimeKind enumerates the runtime error taxonomy from spec §4.2/§7.
type RuntimeKind int

const (
	DivByZero RuntimeKind = iota
	CustomRuntime
)

func (k RuntimeKind) String() string {
	switch k {
	case DivByZero:
		return "DivByZero"
	case CustomRuntime:
		return "Custom"
	default:
		return "Unknown"
	}
}

// RuntimeError is a single user-visible evaluation failure.
type RuntimeError struct {
	Kind    RuntimeKind
	Message string
}

func NewRuntimeError(kind RuntimeKind, message string) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: message}
}

func (e *RuntimeError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Internal represents a fatal internal invariant violation: the type
// checker should have rejected the program before the evaluator or a
// second checker pass could observe this condition. Callers panic with
// this type rather than returning it as a user-facing error, matching the
// reference implementation's panic!("bug: ...") call sites.
type Internal struct {
	Message string
}

func (e *Internal) Error() string {
	return "internal error (checker should have rejected this program): " + e.Message
}

// Fatal panics with an Internal error built from format/args.
func Fatal(format string, args ...any) {
	panic(&Internal{Message: fmt.Sprintf(format, args...)})
}
