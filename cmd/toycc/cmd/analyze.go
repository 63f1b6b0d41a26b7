package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/astjson"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/semantic"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ast.json]",
	Short: "Run the semantic pass and print diagnostics",
	Long: `analyze loads a JSON AST fixture, runs the semantic analyzer over it,
and prints every diagnostic it collected in report order. It exits
nonzero when any diagnostic is error-severity (spec.md §6).`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	prog, err := astjson.Load(data)
	if err != nil {
		return fmt.Errorf("failed to load AST: %w", err)
	}

	sink, _ := semantic.Analyze(prog)
	for _, line := range sink.Strings() {
		fmt.Println(line)
	}

	if sink.HasErrors() {
		os.Exit(1)
	}
	return nil
}
