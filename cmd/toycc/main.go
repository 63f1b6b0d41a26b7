// Command toycc is the driver for the semantic analyzer and code
// generator: it loads an already-parsed AST from a JSON fixture (see
// internal/astjson) and runs one of the two passes described in spec.md.
package main

import (
	"fmt"
	"os"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/cmd/toycc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
