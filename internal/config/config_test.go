package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ClassName != "example" {
		t.Errorf("Default().ClassName = %q, want %q", cfg.ClassName, "example")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load of a missing file should not error, got %v", err)
	}
	if cfg.ClassName != "example" {
		t.Errorf("ClassName = %q, want default %q", cfg.ClassName, "example")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") should not error, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want %+v", cfg, Default())
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toycc.yaml")
	contents := "class_name: MyProgram\nreport: out/report.json\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ClassName != "MyProgram" {
		t.Errorf("ClassName = %q, want %q", cfg.ClassName, "MyProgram")
	}
	if cfg.Report != "out/report.json" {
		t.Errorf("Report = %q, want %q", cfg.Report, "out/report.json")
	}
}

func TestLoadBlankClassNameFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toycc.yaml")
	if err := os.WriteFile(path, []byte("report: out/report.json\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ClassName != "example" {
		t.Errorf("ClassName = %q, want fallback %q", cfg.ClassName, "example")
	}
}
