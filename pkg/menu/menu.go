// Package menu holds the in-memory launcher menu built from a config:
// a title, an optional theme and the ordered key bindings.
package menu

import (
	"fmt"
	"unicode/utf8"

	"github.com/lvim-tech/rofi-keys/pkg/config"
	"github.com/lvim-tech/rofi-keys/pkg/utils"
)

// Entry is one key binding
type Entry struct {
	Key     rune
	Label   string
	Command string
}

// Line returns the text shown for the entry in a selector.
func (e Entry) Line() string {
	return fmt.Sprintf("[%c] %s", e.Key, e.Label)
}

// Menu is the launcher menu
type Menu struct {
	title   string
	theme   string
	entries []Entry
}

// New creates an empty menu. An empty theme means the selector default.
func New(title, theme string) *Menu {
	return &Menu{title: title, theme: theme}
}

// FromConfig builds a menu from cfg, expanding a home-relative theme path.
// Only the first character of each key is significant; entries with an
// empty key are skipped.
func FromConfig(cfg *config.Config) *Menu {
	var theme string
	if cfg.Theme != nil {
		theme = utils.ExpandHomeDir(*cfg.Theme)
	}

	m := New(cfg.Title(), theme)
	for _, entry := range cfg.Entries {
		key, size := utf8.DecodeRuneInString(entry.Key)
		if size == 0 {
			continue
		}
		m.AddEntry(key, entry.Label, entry.Command)
	}
	return m
}

// AddEntry appends an entry. Keys are not checked for uniqueness here.
func (m *Menu) AddEntry(key rune, label, command string) {
	m.entries = append(m.entries, Entry{Key: key, Label: label, Command: command})
}

// Title returns the menu title
func (m *Menu) Title() string { return m.title }

// Theme returns the expanded theme path, or "" when none is set
func (m *Menu) Theme() string { return m.theme }

// Len returns the number of entries
func (m *Menu) Len() int { return len(m.entries) }

// Entries returns a copy of the entries in display order
func (m *Menu) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Lines renders one "[k] label" line per entry, in order.
func (m *Menu) Lines() []string {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, entry.Line())
	}
	return lines
}

// Lookup returns the command of the first entry bound to key.
func (m *Menu) Lookup(key rune) (string, bool) {
	for _, entry := range m.entries {
		if entry.Key == key {
			return entry.Command, true
		}
	}
	return "", false
}
