// Package parser implements a hand-written recursive-descent, Pratt-style
// expression parser that turns a token stream into the ast.Program shape
// specified in spec.md §6.1. The concrete grammar here is this
// implementation's own; only the resulting AST shape is part of the
// specification (spec.md §1 treats the surface grammar as an external
// collaborator).
package parser

import (
	"fmt"

	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/diagnostics"
	"github.com/uguisu-dev/uguisu/internal/lexer"
	"github.com/uguisu-dev/uguisu/internal/token"
)

// Precedence levels for the Pratt expression parser, lowest to highest.
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.Type]int{
	token.OR:              OR_PREC,
	token.AND:              AND_PREC,
	token.EQ:               EQUALS,
	token.NOT_EQ:           EQUALS,
	token.LT:               LESSGREATER,
	token.LTE:              LESSGREATER,
	token.GT:               LESSGREATER,
	token.GTE:              LESSGREATER,
	token.PLUS:             SUM,
	token.MINUS:            SUM,
	token.ASTERISK:         PRODUCT,
	token.SLASH:            PRODUCT,
	token.PERCENT:          PRODUCT,
	token.LPAREN:           CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes a token stream and builds an ast.Program. It never
// panics on malformed input; the first error is recorded and parsing stops.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	err error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over the given source text.
func New(input string) *Parser {
	p := &Parser{l: lexer.New(input)}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:  p.parseIdentifier,
		token.NUMBER: p.parseNumberLiteral,
		token.TRUE:   p.parseBoolLiteral,
		token.FALSE:  p.parseBoolLiteral,
		token.BANG:   p.parseUnaryExpr,
		token.LPAREN: p.parseGroupedExpr,
	}
	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseBinaryExpr,
		token.MINUS:    p.parseBinaryExpr,
		token.ASTERISK: p.parseBinaryExpr,
		token.SLASH:    p.parseBinaryExpr,
		token.PERCENT:  p.parseBinaryExpr,
		token.EQ:       p.parseBinaryExpr,
		token.NOT_EQ:   p.parseBinaryExpr,
		token.LT:       p.parseBinaryExpr,
		token.LTE:      p.parseBinaryExpr,
		token.GT:       p.parseBinaryExpr,
		token.GTE:      p.parseBinaryExpr,
		token.AND:      p.parseBinaryExpr,
		token.OR:       p.parseBinaryExpr,
		token.LPAREN:   p.parseCallExpr,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Parse runs the parser to completion, returning the Program or the first
// SyntaxError encountered.
func Parse(input string) (*ast.Program, *diagnostics.SyntaxError) {
	p := New(input)
	prog := p.parseProgram()
	if p.err != nil {
		pe, ok := p.err.(*parseError)
		if !ok {
			// Unreachable in practice: fail() only ever stores *parseError.
			return nil, diagnostics.NewSyntaxError(diagnostics.PhaseParser, diagnostics.Position{}, "%s", p.err)
		}
		pos := diagnostics.ResolvePosition(input, pe.offset)
		return nil, diagnostics.NewSyntaxError(diagnostics.PhaseParser, pos, "%s", pe.message)
	}
	return prog, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) fail(offset int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	p.err = &parseError{offset: offset, message: msg}
}

// parseError is the parser's internal error carrier; Parse converts it to
// a diagnostics.SyntaxError with a resolved position once parsing stops.
type parseError struct {
	offset  int
	message string
}

func (e *parseError) Error() string { return e.message }

func (p *Parser) curTokenIs(t token.Type) bool { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.fail(p.peekToken.Offset, "expects `%s`. (offset %d)", t, p.peekToken.Offset)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curTokenIs(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return prog
		}
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	return prog
}
