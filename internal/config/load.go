package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads params from a JSON (.json) or YAML (.yaml, .yml) file.
// Fields missing from the file keep their defaults. The result is validated.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read params: %w", err)
	}

	p := DefaultParams()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	default:
		return Params{}, fmt.Errorf("unsupported params file extension %q", ext)
	}
	if err != nil {
		return Params{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Save writes params to path, choosing the format from the extension.
func (p Params) Save(path string) error {
	data, err := p.Encode(filepath.Ext(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Encode serializes params as JSON (".json") or YAML (".yaml", ".yml").
func (p Params) Encode(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json", "json":
		return json.MarshalIndent(p, "", "  ")
	case ".yaml", ".yml", "yaml", "yml":
		return yaml.Marshal(p)
	default:
		return nil, fmt.Errorf("unsupported params format %q", ext)
	}
}
