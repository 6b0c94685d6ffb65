// Package parser builds a renamed ast.Expr from go-lam source text,
// following the fully-parenthesised prefix grammar in spec.md §6.
package parser

import (
	"strconv"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/lexer"
	"github.com/cwbudde/go-lam/internal/token"
)

// Parser consumes a token stream produced by lexer.Lexer and assembles an
// ast.Expr tree. It performs no lookahead beyond the single token returned
// by lex.Next — every grammar production is resolved by the kind of the
// token it just consumed, mirroring the reference tokenizer-driven parser
// it was distilled from.
type Parser struct {
	lex    *lexer.Lexer
	source string
}

// New creates a Parser over l. source is retained only to render error
// context (source line + caret) and is not re-tokenized.
func New(l *lexer.Lexer, source string) *Parser {
	return &Parser{lex: l, source: source}
}

// ParseProgram parses a complete top-level program: exactly one
// parenthesised expression, followed only by whitespace/comments, then
// hygienically renames it.
func ParseProgram(source string) (*ast.Expr, error) {
	p := New(lexer.New(source), source)

	tok, err := p.lex.Next()
	if err != nil {
		return nil, attachSource(err, source)
	}

	if tok.Kind != token.LPAREN {
		return nil, errs.NewParseError(errs.ExpectingExprBegin, tok.Pos, source, "program must begin with '('")
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, attachSource(err, source)
	}

	trailing, err := p.lex.Next()
	if err != nil {
		return nil, attachSource(err, source)
	}

	if trailing.Kind != token.EOF {
		return nil, errs.NewParseError(errs.BracketMismatch, trailing.Pos, source,
			"unexpected content after closing ')'")
	}

	renamed, err := ast.Rename(body)
	if err != nil {
		return nil, attachSource(err, source)
	}

	return renamed, nil
}

// parseBody parses the body of a parenthesised expression: a sequence of
// sub-terms up to (and consuming) the matching ')'. A single sub-term is
// returned as-is; two or more collapse into an Apply with the first
// sub-term as the target.
func (p *Parser) parseBody() (*ast.Expr, error) {
	var (
		target *ast.Expr
		args   []*ast.Expr
	)

	for {
		tok, err := p.lex.Next()
		if err != nil {
			return nil, err
		}

		if tok.Kind == token.RPAREN {
			break
		}

		term, err := p.parseTerm(tok)
		if err != nil {
			return nil, err
		}

		if target == nil {
			target = term
		} else {
			args = append(args, term)
		}
	}

	if target == nil {
		return nil, errs.NewParseError(errs.ExpectingExprBody, token.Position{}, p.source,
			"empty parenthesised expression")
	}

	if len(args) == 0 {
		return target, nil
	}

	return ast.NewApply(target.Pos, target, args), nil
}

// parseTerm interprets a single already-consumed token as a `term`
// production (spec.md §6 EBNF).
func (p *Parser) parseTerm(tok token.Token) (*ast.Expr, error) {
	switch tok.Kind {
	case token.IDENT:
		switch tok.Literal {
		case "true":
			return ast.NewBool(tok.Pos, true), nil
		case "false":
			return ast.NewBool(tok.Pos, false), nil
		default:
			return ast.NewName(tok.Pos, tok.Literal), nil
		}

	case token.EMPTY:
		return ast.NewEmpty(tok.Pos), nil

	case token.INT:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, errs.NewParseError(errs.InvalidNumber, tok.Pos, p.source, tok.Literal)
		}

		return ast.NewInt(tok.Pos, v), nil

	case token.FLOAT:
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errs.NewParseError(errs.InvalidNumber, tok.Pos, p.source, tok.Literal)
		}

		return ast.NewFloat(tok.Pos, v), nil

	case token.LPAREN:
		return p.parseBody()

	case token.LAMBDA:
		return p.parseLambda(tok.Pos)

	case token.HOST:
		return ast.NewHostStub(tok.Pos, tok.Literal), nil

	case token.EOF:
		return nil, errs.NewParseError(errs.UnexpectedEnd, tok.Pos, p.source, "")

	default:
		return nil, errs.NewParseError(errs.InvalidToken, tok.Pos, p.source, tok.Literal)
	}
}

// parseLambda parses the parameter list and body of `\ x y z ( body )`,
// having already consumed the leading '\'.
func (p *Parser) parseLambda(pos token.Position) (*ast.Expr, error) {
	var params []string

	for {
		tok, err := p.lex.Next()
		if err != nil {
			return nil, err
		}

		if tok.Kind == token.IDENT && tok.Literal != "true" && tok.Literal != "false" {
			params = append(params, tok.Literal)

			continue
		}

		if tok.Kind != token.LPAREN {
			return nil, errs.NewParseError(errs.ExpectingExprBegin, tok.Pos, p.source,
				"expected lambda body to begin with '('")
		}

		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}

		return ast.NewAbstract(pos, params, body), nil
	}
}

func attachSource(err error, source string) error {
	if pe, ok := err.(*errs.ParseError); ok {
		pe.Source = source
	}

	return err
}
