package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a configuration file on top of the defaults.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
//   - .toml -> TOML
//
// The result has already passed the schema check and Validate.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses configuration data on top of the defaults.
//
// The format is determined by the file extension in path, or defaults to YAML
// if the path is empty or has an unknown extension. An empty document yields
// the defaults.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	ext := strings.ToLower(filepath.Ext(path))

	doc, err := decodeDocument(data, ext)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(doc); err != nil {
		return nil, err
	}

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeDocument decodes data into generic JSON values (maps, slices,
// float64, string, bool) so it can be checked against the schema
// regardless of the source format.
func decodeDocument(data []byte, ext string) (interface{}, error) {
	var raw interface{}

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
		return raw, nil
	case ".toml":
		m := map[string]interface{}{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
		raw = m
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config (unknown format %s): %w", ext, err)
		}
	}

	// Round-trip through JSON to normalize numbers and map types.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	return doc, nil
}
