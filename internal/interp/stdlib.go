package interp

import (
	"fmt"
	"strings"
)

// buildStdlib constructs the fixed standard library (spec.md §3): the
// Console namespace for line-oriented I/O. List is handled specially in
// evalCall rather than bound here, since it is a zero-argument constructor
// rather than a value.
func (i *Interpreter) buildStdlib() map[string]Value {
	return map[string]Value{
		"Console": i.buildConsole(),
	}
}

func (i *Interpreter) buildConsole() *NamespaceValue {
	return &NamespaceValue{
		Name: "Console",
		Members: map[string]Value{
			"WriteLine": &BuiltinValue{Name: "Console.WriteLine", Fn: i.consoleWriteLine},
			"ReadLine":  &BuiltinValue{Name: "Console.ReadLine", Fn: i.consoleReadLine},
		},
	}
}

// consoleWriteLine joins its arguments' String() forms with a single space
// and writes them followed by a newline, per spec.md §6's Console
// conventions. Called with no arguments, it writes a blank line.
func (i *Interpreter) consoleWriteLine(args []Value) (Value, error) {
	parts := make([]string, len(args))
	for idx, a := range args {
		parts[idx] = a.String()
	}
	fmt.Fprintln(i.out, strings.Join(parts, " "))
	return Null, nil
}

// consoleReadLine reads one line from stdin, stripping the trailing newline.
// At end of input it returns an empty String, matching the reference
// implementation's behavior rather than surfacing an io.EOF error.
func (i *Interpreter) consoleReadLine(args []Value) (Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("Console.ReadLine expects 0 arguments, got %d", len(args))
	}
	line, err := i.in.ReadString('\n')
	if err != nil && line == "" {
		return &StringValue{Value: ""}, nil
	}
	return &StringValue{Value: strings.TrimRight(line, "\r\n")}, nil
}
