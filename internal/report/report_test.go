package report

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/diag"
)

func TestBuildSummaryTalliesDiagnostics(t *testing.T) {
	var sink diag.Sink
	sink.Error(diag.KindTypeMismatch, 1, "boom")
	sink.Warning(diag.KindGeneric, 2, "hmm")
	sink.Warning(diag.KindGeneric, 3, "also hmm")

	s := BuildSummary("Demo", 2, 1, 3, 40, &sink)
	if s.Errors != 1 {
		t.Errorf("Errors = %d, want 1", s.Errors)
	}
	if s.Warnings != 2 {
		t.Errorf("Warnings = %d, want 2", s.Warnings)
	}
	if s.ClassName != "Demo" || s.GlobalCount != 2 || s.FunctionCount != 1 || s.MaxLocalSlots != 3 || s.InstructionLOC != 40 {
		t.Errorf("unexpected summary: %+v", s)
	}
}

// TestMarshalRoundTrip exercises github.com/tidwall/gjson to read back what
// Marshal (github.com/tidwall/sjson) wrote, giving the read-back half of
// this dependency pair its own direct, load-bearing use.
func TestMarshalRoundTrip(t *testing.T) {
	var sink diag.Sink
	sink.Error(diag.KindGeneric, 1, "oops")

	s := BuildSummary("Demo", 5, 2, 4, 60, &sink)
	out, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if got := gjson.Get(out, "class_name").String(); got != "Demo" {
		t.Errorf("class_name = %q, want %q", got, "Demo")
	}
	if got := gjson.Get(out, "globals").Int(); got != 5 {
		t.Errorf("globals = %d, want 5", got)
	}
	if got := gjson.Get(out, "functions").Int(); got != 2 {
		t.Errorf("functions = %d, want 2", got)
	}
	if got := gjson.Get(out, "max_local_slots").Int(); got != 4 {
		t.Errorf("max_local_slots = %d, want 4", got)
	}
	if got := gjson.Get(out, "instruction_lines").Int(); got != 60 {
		t.Errorf("instruction_lines = %d, want 60", got)
	}
	if got := gjson.Get(out, "diagnostics.errors").Int(); got != 1 {
		t.Errorf("diagnostics.errors = %d, want 1", got)
	}
	if got := gjson.Get(out, "diagnostics.warnings").Int(); got != 0 {
		t.Errorf("diagnostics.warnings = %d, want 0", got)
	}
}
