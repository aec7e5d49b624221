package parser

import (
	"testing"

	"github.com/tlscript/tlscript/internal/lexer"
)

// testParser builds a Parser over input with no source/file context.
func testParser(input string) *Parser {
	l := lexer.New(input)
	return New(l, input, "")
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		t.Errorf("parser error: %s", e.Error())
	}
	t.FailNow()
}
