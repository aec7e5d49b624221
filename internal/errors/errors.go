// Package errors formats TLScript's three fatal error kinds (lexical, parse,
// runtime) with source context and a caret pointing at the failing position.
package errors

import (
	"fmt"
	"strings"

	"github.com/tlscript/tlscript/internal/lexer"
)

// Kind distinguishes the three fatal error categories spec.md §7 names.
type Kind string

const (
	Lexical Kind = "lexical error"
	Parse   Kind = "parse error"
	Runtime Kind = "runtime error"
)

// CompilerError is a single failure with enough context to render a
// source-line-and-caret diagnostic.
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New constructs a CompilerError.
func New(kind Kind, pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with the uncolored rendering.
func (e *CompilerError) Error() string {
	return e.Format()
}

// Format renders the error with its source line and a caret under the
// offending column.
func (e *CompilerError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column - 1
		if col < 0 {
			col = 0
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Message)
	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FromLexErrors converts the lexer's own accumulated errors into
// CompilerErrors of Kind Lexical, so an unrecognized character or an
// unterminated string literal is reported as the lexical failure it is,
// rather than surfacing later as a confusing parse error.
func FromLexErrors(errs []lexer.LexerError, source, file string) []*CompilerError {
	out := make([]*CompilerError, len(errs))
	for i, e := range errs {
		out[i] = New(Lexical, e.Pos, e.Message, source, file)
	}
	return out
}

// FormatErrors renders multiple errors, one after another, with a summary
// header when there is more than one.
func FormatErrors(errs []*CompilerError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[%d/%d] ", i+1, len(errs)))
		sb.WriteString(e.Format())
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
