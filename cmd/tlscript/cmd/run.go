package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tlscript/tlscript/internal/errors"
	"github.com/tlscript/tlscript/internal/interp"
	"github.com/tlscript/tlscript/internal/lexer"
	"github.com/tlscript/tlscript/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a TLScript file or expression",
	Long: `Execute a TLScript program from a file or inline code.

Examples:
  # Run a script file
  tlscript run script.tl

  # Evaluate inline code
  tlscript run -e 'Console.WriteLine("hi");'

  # Dump the parsed AST before executing
  tlscript run --dump-ast script.tl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before executing")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print a trace line to stderr before executing")
}

func runScript(_ *cobra.Command, args []string) error {
	source, file, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	p := parser.New(l, source, file)
	program := p.ParseProgram()

	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatErrors(errors.FromLexErrors(lexErrs, source, file)))
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatErrors(errs))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if dumpAST {
		fmt.Println(program.String())
	}
	if trace {
		fmt.Fprintf(os.Stderr, "[trace] executing %s\n", file)
	}

	i := interp.New(os.Stdout, os.Stdin)
	if _, err := i.Run(program, source, file); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return fmt.Errorf("execution failed")
	}

	return nil
}

// readSource resolves the -e flag or a positional file argument into source
// text and a display name for error messages.
func readSource(evalExpr string, args []string) (source, file string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
