// Package parser implements TLScript's recursive-descent statement parser
// and Pratt-style expression parser.
package parser

import (
	"fmt"

	"github.com/tlscript/tlscript/internal/ast"
	"github.com/tlscript/tlscript/internal/errors"
	"github.com/tlscript/tlscript/internal/lexer"
)

// Precedence levels, lowest to highest, matching spec.md §4.2.
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	EQUALS
	COMPARE
	SUM
	PRODUCT
	PREFIX
)

var precedences = map[lexer.TokenType]int{
	lexer.OR_OR:   OR_PREC,
	lexer.AND_AND: AND_PREC,
	lexer.EQ_EQ:   EQUALS,
	lexer.NOT_EQ:  EQUALS,
	lexer.LT:      COMPARE,
	lexer.GT:      COMPARE,
	lexer.LT_EQ:   COMPARE,
	lexer.GT_EQ:   COMPARE,
	lexer.PLUS:    SUM,
	lexer.MINUS:   SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// parseBailout unwinds the recursive descent back to ParseProgram on the
// first mismatch. TLScript's parser does not attempt error recovery
// (spec.md §4.2), so there is no point continuing once one error is found.
type parseBailout struct{ err *errors.CompilerError }

// Parser consumes a token stream from a Lexer and produces a *ast.Program.
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	source string
	file   string
	errs   []*errors.CompilerError
}

// New creates a Parser reading tokens from l. source and file are used only
// to annotate error messages with context; file may be empty.
func New(l *lexer.Lexer, source, file string) *Parser {
	p := &Parser{l: l, source: source, file: file}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.INT:    p.parseNumberLiteral,
		lexer.FLOAT:  p.parseNumberLiteral,
		lexer.STRING: p.parseStringLiteral,
		lexer.TRUE:   p.parseBoolLiteral,
		lexer.FALSE:  p.parseBoolLiteral,
		lexer.LPAREN: p.parseGroupedExpression,
		lexer.MINUS:  p.parseUnaryExpression,
		lexer.BANG:   p.parseUnaryExpression,
		lexer.PLUS:   p.parseUnaryExpression,
		lexer.IDENT:  p.parseIdentChain,
		lexer.LIST_KW: p.parseIdentChain,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinaryExpression,
		lexer.MINUS:    p.parseBinaryExpression,
		lexer.ASTERISK: p.parseBinaryExpression,
		lexer.SLASH:    p.parseBinaryExpression,
		lexer.PERCENT:  p.parseBinaryExpression,
		lexer.EQ_EQ:    p.parseBinaryExpression,
		lexer.NOT_EQ:   p.parseBinaryExpression,
		lexer.LT:       p.parseBinaryExpression,
		lexer.GT:       p.parseBinaryExpression,
		lexer.LT_EQ:    p.parseBinaryExpression,
		lexer.GT_EQ:    p.parseBinaryExpression,
		lexer.AND_AND:  p.parseBinaryExpression,
		lexer.OR_OR:    p.parseBinaryExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the parse errors accumulated. TLScript stops at the first
// one, so this slice holds at most one entry.
func (p *Parser) Errors() []*errors.CompilerError {
	return p.errs
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// fail records a single CompilerError and unwinds to ParseProgram via panic.
func (p *Parser) fail(pos lexer.Position, format string, args ...any) {
	err := errors.New(errors.Parse, pos, fmt.Sprintf(format, args...), p.source, p.file)
	panic(parseBailout{err})
}

// expect advances past the current token if it matches t, otherwise fails.
func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	if !p.curTokenIs(t) {
		p.fail(p.curToken.Pos, "expected %s, got %s %q", t, p.curToken.Type, p.curToken.Literal)
	}
	tok := p.curToken
	p.nextToken()
	return tok
}

// ParseProgram parses the full token stream into a Program, flattening
// `namespace` bodies and discarding `using` directives per spec.md §4.2.
// Parsing stops at the first error (no recovery).
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}

	defer func() {
		if r := recover(); r != nil {
			if bail, ok := r.(parseBailout); ok {
				p.errs = append(p.errs, bail.err)
				return
			}
			panic(r)
		}
	}()

	for !p.curTokenIs(lexer.EOF) {
		switch {
		case p.curTokenIs(lexer.USING):
			p.parseUsingDirective()
		case p.curTokenIs(lexer.NAMESPACE):
			prog.Statements = append(prog.Statements, p.parseNamespaceBody())
		default:
			prog.Statements = append(prog.Statements, p.parseStatement())
		}
	}

	return prog
}

// parseUsingDirective consumes `using a.b.c;` and discards it: it has no
// semantic effect (spec.md §4.2).
func (p *Parser) parseUsingDirective() {
	p.expect(lexer.USING)
	p.expect(lexer.IDENT)
	for p.curTokenIs(lexer.DOT) {
		p.nextToken()
		p.expect(lexer.IDENT)
	}
	p.expect(lexer.SEMICOLON)
}

// parseNamespaceBody consumes `namespace Name { ... }` and returns the
// braced body as a plain Block, discarding the namespace name (spec.md §9,
// "Open question: namespace bodies").
func (p *Parser) parseNamespaceBody() ast.Statement {
	p.expect(lexer.NAMESPACE)
	p.expect(lexer.IDENT)
	return p.parseBlock()
}
