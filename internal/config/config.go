// Package config loads the driver's configuration from a YAML document,
// using github.com/goccy/go-yaml — the parser the teacher's own
// dependency graph already pulls in for its go-snaps test tooling,
// promoted here to a direct, load-bearing dependency.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the knobs spec.md §6 exposes: the emitted class's name and
// where the optional compile report sidecar, if any, gets written.
type Config struct {
	ClassName string `yaml:"class_name"`
	Report    string `yaml:"report"`
}

// Default returns the configuration used when no file is given, or when a
// key is absent from one that is.
func Default() Config {
	return Config{ClassName: "example"}
}

// Load reads a YAML document from path and overlays it onto Default(). A
// missing file is not an error — the defaults stand on their own, mirroring
// the JVM target's own "example" fallback class name (spec.md §6).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ClassName == "" {
		cfg.ClassName = "example"
	}
	return cfg, nil
}
