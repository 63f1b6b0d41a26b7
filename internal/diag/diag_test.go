package diag

import "testing"

func TestDiagnosticStringFormats(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "error",
			d:    Diagnostic{Severity: SeverityError, Line: 12, Message: "undeclared variable 'x'"},
			want: "line 12: undeclared variable 'x'",
		},
		{
			name: "warning",
			d:    Diagnostic{Severity: SeverityWarning, Line: 3, Message: "not all paths return a value"},
			want: "Warning at line 3: not all paths return a value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSinkHasErrors(t *testing.T) {
	var s Sink
	if s.HasErrors() {
		t.Fatal("empty sink should not have errors")
	}
	s.Warning(KindGeneric, 1, "just a warning")
	if s.HasErrors() {
		t.Fatal("sink with only a warning should not have errors")
	}
	s.Error(KindTypeMismatch, 2, "bad type")
	if !s.HasErrors() {
		t.Fatal("sink with an error should report HasErrors")
	}
}

func TestSinkStringsPreservesOrder(t *testing.T) {
	var s Sink
	s.Error(KindUndeclaredVariable, 1, "first")
	s.Warning(KindGeneric, 2, "second")
	got := s.Strings()
	want := []string{"line 1: first", "Warning at line 2: second"}
	if len(got) != len(want) {
		t.Fatalf("Strings() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
