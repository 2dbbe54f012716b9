package parser

import (
	"strconv"

	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.fail(p.curToken.Offset, "expects expression. (offset %d)", p.curToken.Offset)
		return nil
	}
	left := prefix()
	if p.err != nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMI) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
		if p.err != nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.fail(p.curToken.Offset, "could not parse `%s` as a number. (offset %d)", p.curToken.Lexeme, p.curToken.Offset)
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.curToken, Value: p.curToken.Type == token.TRUE}
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if p.err != nil {
		return nil
	}
	return &ast.UnaryExpr{Token: tok, Operator: tok.Lexeme, Operand: operand}
}

func (p *Parser) parseGroupedExpr() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.peekPrecedenceOfCurrent()
	p.nextToken()
	right := p.parseExpression(precedence)
	if p.err != nil {
		return nil
	}
	return &ast.BinaryExpr{Token: tok, Left: left, Operator: tok.Lexeme, Right: right}
}

// peekPrecedenceOfCurrent returns the precedence of p.curToken (the
// operator just consumed as an infix position), used so that `+`/`-` etc.
// are left-associative: the right operand parses at the operator's own
// precedence, not one above it.
func (p *Parser) peekPrecedenceOfCurrent() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseCallArgs()
	if p.err != nil {
		return nil
	}
	return &ast.CallExpr{Token: tok, Callee: callee, Args: args}
}

func (p *Parser) parseCallArgs() []ast.Expression {
	var args []ast.Expression
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	if p.err != nil {
		return nil
	}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if p.err != nil {
			return nil
		}
		args = append(args, arg)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return args
}
