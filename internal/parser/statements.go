package parser

import (
	"github.com/tlscript/tlscript/internal/ast"
	"github.com/tlscript/tlscript/internal/lexer"
)

// parseStatement dispatches on the current token, per spec.md §4.2's
// statement dispatch table.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curTokenIs(lexer.LBRACE):
		return p.parseBlock()
	case p.curTokenIs(lexer.IF):
		return p.parseIf()
	case p.curTokenIs(lexer.WHILE):
		return p.parseWhile()
	case p.curTokenIs(lexer.FOR):
		return p.parseFor()
	case p.curTokenIs(lexer.FOREACH):
		return p.parseForeach()
	case p.curTokenIs(lexer.RETURN):
		return p.parseReturn()
	case p.looksLikeDeclaration():
		return p.parseVarOrFuncDecl()
	default:
		return p.parseExprOrAssignStatement()
	}
}

// looksLikeDeclaration reports whether the statement ahead is a variable or
// function declaration: a type-looking keyword or a bare identifier,
// followed by another identifier (spec.md §4.2's 3-token lookahead), or
// `List` followed by `<` (a generic-argument declaration).
func (p *Parser) looksLikeDeclaration() bool {
	if p.curTokenIs(lexer.LIST_KW) && p.peekTokenIs(lexer.LT) {
		return true
	}
	if !lexer.IsTypeKeyword(p.curToken.Type) && !p.curTokenIs(lexer.IDENT) {
		return false
	}
	return p.peekTokenIs(lexer.IDENT)
}

func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(lexer.LBRACE)
	block := &ast.Block{Token: tok}
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		block.Body = append(block.Body, p.parseStatement())
	}
	p.expect(lexer.RBRACE)
	return block
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.nextToken()
	p.expect(lexer.RPAREN)
	then := p.parseStatement()

	stmt := &ast.If{Token: tok, Cond: cond, Then: then}
	if p.curTokenIs(lexer.ELSE) {
		p.nextToken()
		stmt.Otherwise = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.nextToken()
	p.expect(lexer.RPAREN)
	body := p.parseStatement()
	return &ast.While{Token: tok, Cond: cond, Body: body}
}

// parseFor parses the three-part header. The init slot, if present, is a
// full declaration when the tokens look like `type-or-var ID`, otherwise a
// bare expression statement — never an assignment, matching the reference
// implementation's for-header grammar (spec.md §4.2/§9).
func (p *Parser) parseFor() ast.Statement {
	tok := p.expect(lexer.FOR)
	p.expect(lexer.LPAREN)

	var init ast.Statement
	if p.curTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	} else if p.looksLikeDeclaration() {
		init = p.parseVarOrFuncDecl()
	} else {
		exprTok := p.curToken
		expr := p.parseExpression(LOWEST)
		p.nextToken()
		p.expect(lexer.SEMICOLON)
		init = &ast.ExprStmt{Token: exprTok, Expr: expr}
	}

	var cond ast.Expression
	if p.curTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	} else {
		cond = p.parseExpression(LOWEST)
		p.nextToken()
		p.expect(lexer.SEMICOLON)
	}

	var post ast.Expression
	if !p.curTokenIs(lexer.RPAREN) {
		post = p.parseExpression(LOWEST)
		p.nextToken()
	}
	p.expect(lexer.RPAREN)

	body := p.parseStatement()
	return &ast.For{Token: tok, Init: init, Cond: cond, Post: post, Body: body}
}

// parseForeach parses `foreach (type-or-var? ID in ID) body`. The optional
// leading type token, if present, is consumed and discarded.
func (p *Parser) parseForeach() ast.Statement {
	tok := p.expect(lexer.FOREACH)
	p.expect(lexer.LPAREN)

	if lexer.IsTypeKeyword(p.curToken.Type) {
		p.nextToken()
	}
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.IN)
	seq := p.expect(lexer.IDENT).Literal
	p.expect(lexer.RPAREN)

	body := p.parseStatement()
	return &ast.Foreach{Token: tok, Name: name, Seq: seq, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.expect(lexer.RETURN)
	if p.curTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		return &ast.Return{Token: tok}
	}
	val := p.parseExpression(LOWEST)
	p.nextToken()
	p.expect(lexer.SEMICOLON)
	return &ast.Return{Token: tok, Value: val}
}

// parseVarOrFuncDecl handles the `type ID ...` family: a function
// declaration when followed by `(`, otherwise a variable declaration.
// Optional `List<...>` angle-bracket contents are consumed and ignored
// syntactically (spec.md §4.2's variable-declaration note).
func (p *Parser) parseVarOrFuncDecl() ast.Statement {
	typeTok := p.curToken
	typeName := p.curToken.Literal
	p.nextToken()
	p.skipGenericArgs()

	nameTok := p.expect(lexer.IDENT)

	if p.curTokenIs(lexer.LPAREN) {
		p.nextToken()
		params := p.parseParamList()
		body := p.parseBlock()
		return &ast.FuncDecl{Token: typeTok, Name: nameTok.Literal, Params: params, Body: body, ReturnType: typeName}
	}

	decl := &ast.VarDecl{Token: typeTok, DeclaredType: typeName, Name: nameTok.Literal}
	if p.curTokenIs(lexer.ASSIGN) {
		p.nextToken()
		decl.Init = p.parseExpression(LOWEST)
		p.nextToken()
	}
	p.expect(lexer.SEMICOLON)
	return decl
}

// skipGenericArgs discards an optional `<...>` suffix after a type token,
// e.g. `List<int>`. The contents are never inspected (spec.md §4.2).
func (p *Parser) skipGenericArgs() {
	if !p.curTokenIs(lexer.LT) {
		return
	}
	depth := 1
	p.nextToken()
	for depth > 0 && !p.curTokenIs(lexer.EOF) {
		switch {
		case p.curTokenIs(lexer.LT):
			depth++
		case p.curTokenIs(lexer.GT):
			depth--
		}
		p.nextToken()
	}
}

// parseParamList parses `(type? ID, type? ID, ...)`. Only parameter names
// are retained; declared parameter types are discarded (spec.md §4.2).
func (p *Parser) parseParamList() []string {
	var params []string

	if p.curTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	params = append(params, p.parseOneParam())
	for p.curTokenIs(lexer.COMMA) {
		p.nextToken()
		params = append(params, p.parseOneParam())
	}

	p.expect(lexer.RPAREN)
	return params
}

func (p *Parser) parseOneParam() string {
	if (lexer.IsTypeKeyword(p.curToken.Type) || p.curTokenIs(lexer.IDENT)) && p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
	}
	return p.expect(lexer.IDENT).Literal
}

// isAssignTarget reports whether expr is one of the two node kinds Assign
// may target (spec.md §4.2).
func isAssignTarget(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.VarRef, *ast.Index:
		return true
	default:
		return false
	}
}

// parseExprOrAssignStatement parses an expression; if its root is a VarRef
// or Index and an `=` follows, it becomes an Assign, otherwise an ExprStmt
// (spec.md §4.2's "Expression statement vs. assignment").
func (p *Parser) parseExprOrAssignStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)

	if isAssignTarget(expr) && p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken() // now on '='
		p.nextToken() // consume '=', move to rhs
		value := p.parseExpression(LOWEST)
		p.nextToken()
		p.expect(lexer.SEMICOLON)
		return &ast.Assign{Token: tok, Target: expr, Value: value}
	}

	p.nextToken()
	p.expect(lexer.SEMICOLON)
	return &ast.ExprStmt{Token: tok, Expr: expr}
}
