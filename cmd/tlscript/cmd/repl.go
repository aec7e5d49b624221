package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tlscript/tlscript/internal/errors"
	"github.com/tlscript/tlscript/internal/interp"
	"github.com/tlscript/tlscript/internal/lexer"
	"github.com/tlscript/tlscript/internal/parser"
)

const replPrompt = "tlscript> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive TLScript session",
	Long: `Read lines until one ends in ';' or '}', parse and execute the
accumulated buffer as a complete program, then repeat. A failing buffer is
reported and discarded. End-of-input exits cleanly.`,
	Run: func(cmd *cobra.Command, args []string) {
		startREPL(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// startREPL runs the buffering read-eval-print loop (spec.md §6). One
// Interpreter persists across buffers so variables and functions defined in
// one buffer remain visible to the next. The same bufio.Reader backs both
// the REPL's own line reading and the Interpreter's Console.ReadLine, so a
// program that reads from Console mid-session sees the lines that follow it
// rather than bytes already consumed by the REPL's own buffering.
func startREPL(in io.Reader, out io.Writer) {
	reader := bufio.NewReader(in)
	i := interp.New(out, reader)

	var buf strings.Builder
	fmt.Fprint(out, replPrompt)

	for {
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}

		buf.WriteString(line)

		trimmed := strings.TrimRight(strings.TrimRight(line, "\n"), " \t")
		if strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}") {
			source := buf.String()
			buf.Reset()

			if evalErr := evalBuffer(i, source, out); evalErr != nil {
				fmt.Fprintln(out, evalErr.Error())
			}
			fmt.Fprint(out, replPrompt)
		}

		if err != nil {
			return
		}
	}
}

func evalBuffer(i *interp.Interpreter, source string, out io.Writer) error {
	l := lexer.New(source)
	p := parser.New(l, source, "<repl>")
	program := p.ParseProgram()

	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		return fmt.Errorf("%s", errors.FromLexErrors(lexErrs, source, "<repl>")[0].Error())
	}

	if errs := p.Errors(); len(errs) > 0 {
		return fmt.Errorf("%s", errs[0].Error())
	}

	_, err := i.Run(program, source, "<repl>")
	return err
}
