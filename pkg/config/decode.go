package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

// Format is the on-disk encoding of a config file
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
)

// String returns string representation of Format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	default:
		return "json"
	}
}

// formatFor picks the encoding from the file extension. Anything that is
// not .toml is treated as JSON.
func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

var requiredEntryFields = []string{"key", "label", "command"}

func decode(data []byte, format Format) (*Config, error) {
	raw := make(map[string]any)

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("invalid TOML config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON config: %w", err)
		}
	}

	if err := checkRequired(raw); err != nil {
		return nil, err
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", format, err)
	}

	if cfg.Entries == nil {
		cfg.Entries = []EntryConfig{}
	}
	return &cfg, nil
}

// checkRequired rejects documents without entries, or with entries missing
// one of key, label or command.
func checkRequired(raw map[string]any) error {
	value, ok := raw["entries"]
	if !ok || value == nil {
		return fmt.Errorf("missing field `entries`")
	}

	var entries []map[string]any
	switch v := value.(type) {
	case []map[string]any:
		entries = v
	case []any:
		for i, item := range v {
			entry, ok := item.(map[string]any)
			if !ok {
				return fmt.Errorf("entries[%d]: expected a table, got %T", i, item)
			}
			entries = append(entries, entry)
		}
	default:
		return fmt.Errorf("`entries` must be a list, got %T", value)
	}

	for i, entry := range entries {
		for _, field := range requiredEntryFields {
			if v, ok := entry[field]; !ok || v == nil {
				return fmt.Errorf("entries[%d]: missing field `%s`", i, field)
			}
		}
	}
	return nil
}
