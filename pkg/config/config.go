// Package config provides configuration management for rofi-keys.
// It handles resolving, loading, validating and writing the menu file that
// describes the launcher title, theme and key bindings.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// DefaultTitle is shown when the config has no menu_title.
const DefaultTitle = "Shortcuts"

// Config describes the menu file
type Config struct {
	Theme     *string       `json:"theme,omitempty" toml:"theme,omitempty" mapstructure:"theme"`
	MenuTitle *string       `json:"menu_title,omitempty" toml:"menu_title,omitempty" mapstructure:"menu_title"`
	Entries   []EntryConfig `json:"entries" toml:"entries" mapstructure:"entries"`
}

// EntryConfig is a single key→label→command record
type EntryConfig struct {
	Key     string `json:"key" toml:"key" mapstructure:"key"`
	Label   string `json:"label" toml:"label" mapstructure:"label"`
	Command string `json:"command" toml:"command" mapstructure:"command"`
}

// output receives confirmation messages from Write.
var output io.Writer = os.Stdout

// Title returns the menu title or DefaultTitle.
func (c *Config) Title() string {
	if c.MenuTitle == nil {
		return DefaultTitle
	}
	return *c.MenuTitle
}

// Validate checks that every entry has a key and that no two entries share
// the same first key character.
func (c *Config) Validate() error {
	seen := make(map[rune]int, len(c.Entries))
	for i, entry := range c.Entries {
		if entry.Key == "" {
			return &EmptyKeyError{Index: i}
		}
		r, _ := utf8.DecodeRuneInString(entry.Key)
		if first, ok := seen[r]; ok {
			return &DuplicateKeyError{Key: r, First: first, Second: i}
		}
		seen[r] = i
	}
	return nil
}

// ResolvePath returns explicit when set, otherwise the default config
// location under the user's config directory.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	home := os.Getenv("HOME")
	if home == "" {
		return "", ErrHomeNotFound
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "rofi-keys", "config.json"), nil
}

// Load reads the config at path. A missing file is replaced by Default,
// which is written to path before being returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := Write(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	cfg, err := decode(data, formatFor(path))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Write serializes cfg and replaces the file at path.
func Write(cfg *Config, path string) error {
	data, err := encode(cfg, formatFor(path))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(output, "Configuration written to %s\n", path)
	return nil
}

// Init overwrites path with the default configuration.
func Init(path string) error {
	return Write(Default(), path)
}

func encode(cfg *Config, format Format) ([]byte, error) {
	if cfg.Entries == nil {
		normalized := *cfg
		normalized.Entries = []EntryConfig{}
		cfg = &normalized
	}

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.Indent = "  "
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
