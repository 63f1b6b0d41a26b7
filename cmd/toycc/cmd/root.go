package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "toycc",
	Short: "Semantic analyzer and Jasmin-like code generator",
	Long: `toycc runs the back half of a toy imperative language's compiler: a
semantic analyzer and a code generator, both operating on an
already-parsed AST. This module has no lexer or parser of its own — the
AST is read from a JSON fixture (see internal/astjson) rather than
produced from source text.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (class name, report path)")
}
