package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tlscript/tlscript/internal/ast"
	"github.com/tlscript/tlscript/internal/errors"
	"github.com/tlscript/tlscript/internal/lexer"
	"github.com/tlscript/tlscript/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a TLScript file and print its AST as structured JSON",
	Long: `Parse a TLScript file and emit the parsed program as a nested
JSON tree whose leaves are the literal attributes of each AST node. No
execution takes place.`,
	Args: cobra.ExactArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	source := string(content)

	l := lexer.New(source)
	p := parser.New(l, source, args[0])
	program := p.ParseProgram()

	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatErrors(errors.FromLexErrors(lexErrs, source, args[0])))
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatErrors(errs))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ast.Dump(program))
}
