// Package ast defines the Abstract Syntax Tree node types produced by the
// TLScript parser.
package ast

import (
	"strings"

	"github.com/tlscript/tlscript/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token the node starts at.
	TokenLiteral() string
	// String renders the node for debugging (not a formatter).
	String() string
	// Pos returns the node's source position.
	Pos() lexer.Position
}

// Statement is a Node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a Value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root AST node: the flattened sequence of top-level items
// (namespace bodies are unwrapped into Block nodes, using directives are
// discarded during parsing per spec.md §4.2).
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}
