package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/astjson"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/codegen"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/config"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/diag"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/report"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/semantic"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/symtab"
)

var (
	emitOutput    string
	emitReport    string
	emitClassName string
)

var emitCmd = &cobra.Command{
	Use:   "emit [ast.json]",
	Short: "Run both passes and emit the Jasmin-like listing",
	Long: `emit loads a JSON AST fixture, runs the semantic analyzer followed by
the code generator, and writes the resulting assembly listing to stdout
(or to the file named by --output). Analysis errors abort code
generation (spec.md §5) and are printed to stderr instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringVarP(&emitOutput, "output", "o", "", "output file (default: stdout)")
	emitCmd.Flags().StringVar(&emitReport, "report", "", "write a JSON compile report to this path")
	emitCmd.Flags().StringVar(&emitClassName, "class-name", "", "override the emitted class name")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if emitClassName != "" {
		cfg.ClassName = emitClassName
	}
	if emitReport == "" {
		emitReport = cfg.Report
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	prog, err := astjson.Load(data)
	if err != nil {
		return fmt.Errorf("failed to load AST: %w", err)
	}

	sink, tab := semantic.Analyze(prog)
	for _, line := range sink.Strings() {
		fmt.Fprintln(os.Stderr, line)
	}
	if sink.HasErrors() {
		return fmt.Errorf("semantic analysis failed with %d error(s)", countErrors(sink))
	}

	listing := codegen.Generate(prog, tab, cfg.ClassName)

	if emitOutput == "" {
		fmt.Print(listing)
	} else if err := os.WriteFile(emitOutput, []byte(listing), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", emitOutput, err)
	}

	if emitReport != "" {
		summary := report.BuildSummary(cfg.ClassName, globalCount(prog), functionCount(prog), maxLocalSlots(tab), instructionLOC(listing), sink)
		out, err := report.Marshal(summary)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		if err := os.WriteFile(emitReport, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write report %s: %w", emitReport, err)
		}
	}
	return nil
}

func countErrors(sink *diag.Sink) int {
	n := 0
	for _, d := range sink.Diagnostics() {
		if d.Severity == diag.SeverityError {
			n++
		}
	}
	return n
}

// globalCount and functionCount tally top-level declarations directly, as
// FuncDecl/VarDecl.Sym is only meaningful once analysis has run — Globals
// is the authoritative list of what was actually declared at file scope.
func globalCount(prog *ast.Program) int {
	n := 0
	for _, g := range prog.Globals {
		switch d := g.(type) {
		case *ast.VarDeclList:
			n += len(d.Decls)
		case *ast.VarDecl:
			n++
		}
	}
	return n
}

func functionCount(prog *ast.Program) int {
	n := 0
	for _, g := range prog.Globals {
		if _, ok := g.(*ast.FuncDecl); ok {
			n++
		}
	}
	for _, s := range prog.Stmts {
		if _, ok := s.(*ast.FuncDecl); ok {
			n++
		}
	}
	return n
}

// maxLocalSlots reports the highest local slot handed out to any function
// parameter or local variable across the whole symbol table — a rough
// upper bound on per-method max_locals, since slots are reused across
// functions (each resets to 0 on entry) rather than summed.
func maxLocalSlots(tab *symtab.Table) int {
	max := 0
	for _, e := range tab.All() {
		if !e.IsGlobal && e.Slot > max {
			max = e.Slot
		}
	}
	return max
}

func instructionLOC(listing string) int {
	return len(strings.Split(strings.TrimRight(listing, "\n"), "\n"))
}
