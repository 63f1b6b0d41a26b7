// Package report writes the tool-facing compile report sidecar: a small
// JSON document summarizing one compilation, meant to sit alongside the
// emitted assembly listing for a downstream build system to consume. It
// is written with github.com/tidwall/sjson and, in this package's own
// tests, read back with github.com/tidwall/gjson — the same pair of
// libraries the teacher's go-snaps dependency already vendors
// transitively for its own diffing, given a direct, load-bearing use here
// instead.
package report

import (
	"github.com/tidwall/sjson"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/diag"
)

// Summary is the data a compile report describes. Counts are gathered by
// the driver after both passes complete.
type Summary struct {
	ClassName      string
	GlobalCount    int
	FunctionCount  int
	MaxLocalSlots  int
	InstructionLOC int
	Errors         int
	Warnings       int
}

// BuildSummary assembles a Summary from the symbol counts a driver collects plus
// the diagnostics the analyzer reported.
func BuildSummary(className string, globalCount, functionCount, maxLocalSlots, instructionLOC int, sink *diag.Sink) Summary {
	errs, warns := 0, 0
	for _, d := range sink.Diagnostics() {
		if d.Severity == diag.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	return Summary{
		ClassName:      className,
		GlobalCount:    globalCount,
		FunctionCount:  functionCount,
		MaxLocalSlots:  maxLocalSlots,
		InstructionLOC: instructionLOC,
		Errors:         errs,
		Warnings:       warns,
	}
}

// Marshal renders s as a JSON document, building it up one sjson.Set call
// at a time rather than via encoding/json, matching this module's choice
// to give tidwall/sjson the direct, load-bearing role SPEC_FULL.md assigns
// it.
func Marshal(s Summary) (string, error) {
	json := "{}"
	var err error
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		json, err = sjson.Set(json, path, value)
	}

	set("class_name", s.ClassName)
	set("globals", s.GlobalCount)
	set("functions", s.FunctionCount)
	set("max_local_slots", s.MaxLocalSlots)
	set("instruction_lines", s.InstructionLOC)
	set("diagnostics.errors", s.Errors)
	set("diagnostics.warnings", s.Warnings)

	if err != nil {
		return "", err
	}
	return json, nil
}
