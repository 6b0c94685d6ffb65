package ast_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/token"
)

var noPos = token.Position{}

func TestRenameSimpleParam(t *testing.T) {
	// \x (x)
	body := ast.NewName(noPos, "x")
	lam := ast.NewAbstract(noPos, []string{"x"}, body)

	renamed, err := ast.Rename(lam)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if renamed.Params[0] != "x#1" {
		t.Fatalf("got param %q, want x#1", renamed.Params[0])
	}

	if renamed.Body.Name != "x#1" {
		t.Fatalf("got body name %q, want x#1", renamed.Body.Name)
	}
}

func TestRenameShadowing(t *testing.T) {
	// \x ((\x (x)) x) -- inner x shadows outer x, each gets a distinct counter
	innerLam := ast.NewAbstract(noPos, []string{"x"}, ast.NewName(noPos, "x"))
	outerBody := ast.NewApply(noPos, innerLam, []*ast.Expr{ast.NewName(noPos, "x")})
	outerLam := ast.NewAbstract(noPos, []string{"x"}, outerBody)

	renamed, err := ast.Rename(outerLam)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outerParam := renamed.Params[0]
	apply := renamed.Body
	innerAbstract := apply.Target
	argName := apply.Args[0].Name

	if outerParam == innerAbstract.Params[0] {
		t.Fatalf("outer and inner x got the same renamed form: %q", outerParam)
	}

	if argName != outerParam {
		t.Fatalf("outer call site %q does not resolve to outer param %q", argName, outerParam)
	}

	if innerAbstract.Body.Name != innerAbstract.Params[0] {
		t.Fatalf("inner body %q does not resolve to inner param %q", innerAbstract.Body.Name, innerAbstract.Params[0])
	}
}

func TestRenameRestoresEnclosingScopeOnExit(t *testing.T) {
	// Two independent \x (x) abstractions, renamed separately: each exit
	// must unwind its own binding so the second rename starts from a clean
	// "current" map rather than seeing the first's leftover scope.
	first := ast.NewAbstract(noPos, []string{"x"}, ast.NewName(noPos, "x"))
	second := ast.NewAbstract(noPos, []string{"x"}, ast.NewName(noPos, "x"))

	if _, err := ast.Rename(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ast.Rename(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Params[0] != "x#1" || second.Params[0] != "x#1" {
		t.Fatalf("got params %q and %q, want both x#1 (each rename starts clean)", first.Params[0], second.Params[0])
	}
}

func TestRenameFreeNameIsError(t *testing.T) {
	free := ast.NewName(noPos, "undefined")

	_, err := ast.Rename(free)
	if err == nil {
		t.Fatal("expected a free-name error")
	}

	if !strings.Contains(err.Error(), "free name") {
		t.Fatalf("got error %q, want it to mention 'free name'", err.Error())
	}
}

func TestRenameHostStubUntouched(t *testing.T) {
	stub := ast.NewHostStub(noPos, "add")

	renamed, err := ast.Rename(stub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !renamed.IsHost() || renamed.HostName != "add" {
		t.Fatalf("host stub was altered by renaming: %+v", renamed)
	}
}
