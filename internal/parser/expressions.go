package parser

import (
	"strconv"
	"strings"

	"github.com/tlscript/tlscript/internal/ast"
	"github.com/tlscript/tlscript/internal/lexer"
)

// parseExpression is the Pratt entry point. It expects curToken to be the
// first token of the expression, and leaves curToken resting on the last
// token the expression consumed (the boundary convention every prefix and
// infix handler below honors, so callers cross into statement-level
// punctuation with a single explicit nextToken()).
func (p *Parser) parseExpression(minPrecedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.fail(p.curToken.Pos, "unexpected token %s %q", p.curToken.Type, p.curToken.Literal)
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && minPrecedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	lit := &ast.NumberLiteral{Token: tok}
	if tok.Type == lexer.FLOAT {
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail(tok.Pos, "invalid float literal %q", tok.Literal)
		}
		lit.IsFloat = true
		lit.FltValue = v
	} else {
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail(tok.Pos, "invalid integer literal %q", tok.Literal)
		}
		lit.IntValue = v
	}
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.curToken, Value: p.curToken.Type == lexer.TRUE}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '(', move to first token of inner expression
	expr := p.parseExpression(LOWEST)
	p.nextToken() // move onto the closing ')'
	if !p.curTokenIs(lexer.RPAREN) {
		p.fail(p.curToken.Pos, "expected ), got %s %q", p.curToken.Type, p.curToken.Literal)
	}
	return expr
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.Unary{Token: tok, Op: op, Expr: operand}
}

// parseBinaryExpression is invoked with curToken resting on the operator;
// it consumes the operator and the right operand, and rests on the last
// token of the right operand.
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	precedence := precedences[tok.Type]
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.Binary{Token: tok, Op: op, Left: left, Right: right}
}

// parseIdentChain parses a dotted identifier chain and the call/index suffix
// that may follow it (spec.md §4.2's primary-expression grammar):
// `ID ('.' ID)*` then optionally `(` args `)` or `[` expr `]`. It rests on
// the last token the primary consumed.
func (p *Parser) parseIdentChain() ast.Expression {
	startTok := p.curToken
	parts := []string{p.curToken.Literal}

	for p.peekTokenIs(lexer.DOT) {
		p.nextToken() // move onto '.'
		p.nextToken() // move onto the next identifier
		if !p.curTokenIs(lexer.IDENT) {
			p.fail(p.curToken.Pos, "expected identifier after '.', got %s %q", p.curToken.Type, p.curToken.Literal)
		}
		parts = append(parts, p.curToken.Literal)
	}

	name := strings.Join(parts, ".")

	if p.peekTokenIs(lexer.LPAREN) {
		p.nextToken() // move onto '('
		p.nextToken() // move onto first arg token, or ')'
		args := p.parseArgumentList()
		return &ast.Call{Token: startTok, Callee: name, Args: args}
	}

	if p.peekTokenIs(lexer.LBRACK) {
		p.nextToken() // move onto '['
		p.nextToken() // move onto first token of index expression
		idx := p.parseExpression(LOWEST)
		p.nextToken() // move onto ']'
		if !p.curTokenIs(lexer.RBRACK) {
			p.fail(p.curToken.Pos, "expected ], got %s %q", p.curToken.Type, p.curToken.Literal)
		}
		return &ast.Index{Token: startTok, Target: name, Idx: idx}
	}

	return &ast.VarRef{Token: startTok, Name: name}
}

// parseArgumentList parses comma-separated expressions up to and including
// the closing ')'. It is entered with curToken on the first argument token
// (or already on ')' for an empty list), and rests on ')'. Trailing commas
// are not accepted (spec.md §4.2).
func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression

	if p.curTokenIs(lexer.RPAREN) {
		return args
	}

	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // move onto ','
		p.nextToken() // move onto the next argument
		args = append(args, p.parseExpression(LOWEST))
	}

	p.nextToken() // move onto ')'
	if !p.curTokenIs(lexer.RPAREN) {
		p.fail(p.curToken.Pos, "expected ), got %s %q", p.curToken.Type, p.curToken.Literal)
	}
	return args
}
