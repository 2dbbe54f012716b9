package parser

import (
	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.FN:
		return p.parseFunctionDecl()
	case token.VAR, token.CONST, token.LET:
		return p.parseVarDecl()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.LOOP:
		return p.parseLoopStatement()
	case token.IDENT:
		if isAssignOp(p.peekToken.Type) {
			return p.parseAssignStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func isAssignOp(t token.Type) bool {
	switch t {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.ASTERISK_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN:
		return true
	default:
		return false
	}
}

func (p *Parser) parseBlock() []ast.Statement {
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	var stmts []ast.Statement
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RBRACE) {
		p.fail(p.curToken.Offset, "expects `}`. (offset %d)", p.curToken.Offset)
		return nil
	}
	return stmts
}

func (p *Parser) parseTypeName() *ast.TypeName {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.TypeName{Token: p.curToken, Name: p.curToken.Lexeme}
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	decl := &ast.FunctionDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Name = p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	decl.Params = p.parseFuncParams()
	if p.err != nil {
		return nil
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		decl.ReturnType = p.parseTypeName()
		if p.err != nil {
			return nil
		}
	}

	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
		decl.HasBody = false
		return decl
	}

	decl.Body = p.parseBlock()
	if p.err != nil {
		return nil
	}
	decl.HasBody = true
	return decl
}

func (p *Parser) parseFuncParams() []*ast.FuncParam {
	var params []*ast.FuncParam
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	for {
		param := &ast.FuncParam{Token: p.curToken}
		if !p.curTokenIs(token.IDENT) {
			p.fail(p.curToken.Offset, "expects identifier. (offset %d)", p.curToken.Offset)
			return nil
		}
		param.Name = p.curToken.Lexeme
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			param.Type = p.parseTypeName()
			if p.err != nil {
				return nil
			}
		}
		params = append(params, param)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseVarDecl() ast.Statement {
	decl := &ast.VarDecl{Token: p.curToken, Keyword: p.curToken.Lexeme}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Name = p.curToken.Lexeme

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		decl.Type = p.parseTypeName()
		if p.err != nil {
			return nil
		}
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		decl.Value = p.parseExpression(LOWEST)
		if p.err != nil {
			return nil
		}
	}

	if !p.expectPeek(token.SEMI) {
		return nil
	}
	return decl
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	if !p.expectPeek(token.SEMI) {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.SEMI) {
		return nil
	}
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	stmt.Then = p.parseBlock()
	if p.err != nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			nested := p.parseIfStatement()
			if p.err != nil {
				return nil
			}
			stmt.Else = []ast.Statement{nested}
		} else {
			stmt.Else = p.parseBlock()
			if p.err != nil {
				return nil
			}
		}
	}
	return stmt
}

func (p *Parser) parseLoopStatement() ast.Statement {
	stmt := &ast.LoopStatement{Token: p.curToken}
	stmt.Body = p.parseBlock()
	if p.err != nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseAssignStatement() ast.Statement {
	target := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	stmt := &ast.AssignStatement{Token: p.curToken, Target: target}
	p.nextToken()
	stmt.Mode = ast.AssignMode(p.curToken.Lexeme)
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.SEMI) {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.SEMI) {
		return nil
	}
	return stmt
}
