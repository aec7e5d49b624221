package main

import (
	"fmt"
	"os"

	"github.com/tlscript/tlscript/cmd/tlscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
