package launcher

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvim-tech/rofi-keys/pkg/menu"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *terminalModel, msgs ...tea.Msg) *terminalModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(*terminalModel)
	}
	return m
}

func TestTerminalModelKeyActivates(t *testing.T) {
	m := send(newTerminalModel(sampleMenu()), runes("t"))
	if !m.chosen || m.command != "x-terminal-emulator" {
		t.Fatalf("expected terminal to be chosen, got %+v", m)
	}
}

func TestTerminalModelUnboundKeyIgnored(t *testing.T) {
	m := send(newTerminalModel(sampleMenu()), runes("z"))
	if m.chosen {
		t.Fatalf("expected no selection, got %q", m.command)
	}
}

func TestTerminalModelCursorAndEnter(t *testing.T) {
	m := send(newTerminalModel(sampleMenu()),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if !m.chosen || m.command != "x-terminal-emulator" {
		t.Fatalf("expected second entry, got %+v", m)
	}

	m = send(newTerminalModel(sampleMenu()), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.command != "x-terminal-emulator" {
		t.Fatalf("expected cursor to wrap to last entry, got %q", m.command)
	}
}

func TestTerminalModelEscapeCancels(t *testing.T) {
	model := newTerminalModel(sampleMenu())
	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(*terminalModel).chosen {
		t.Fatal("expected no selection after escape")
	}
}

func TestTerminalModelFilter(t *testing.T) {
	m := send(newTerminalModel(sampleMenu()), runes("/"))
	if !m.filtering {
		t.Fatal("expected filter mode")
	}

	// Letters go to the filter instead of activating entries.
	m = send(m, runes("t"), runes("e"), runes("r"), runes("m"))
	if m.chosen {
		t.Fatalf("expected typing in filter not to select, got %q", m.command)
	}
	if len(m.visible) != 1 || m.entries[m.visible[0]].Label != "Terminal" {
		t.Fatalf("expected only Terminal to match, got %v", m.visible)
	}
	if !strings.Contains(m.View(), "Terminal") {
		t.Fatal("expected view to contain the match")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.chosen || m.command != "x-terminal-emulator" {
		t.Fatalf("expected filtered entry to be chosen, got %+v", m)
	}
}

func TestTerminalModelFilterNoMatch(t *testing.T) {
	m := send(newTerminalModel(sampleMenu()), runes("/"), runes("q"), runes("q"))
	if len(m.visible) != 0 {
		t.Fatalf("expected no matches, got %v", m.visible)
	}
	if !strings.Contains(m.View(), "no matching entries") {
		t.Fatal("expected empty-state message")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.chosen {
		t.Fatal("enter with no matches must not select")
	}
}

func TestTerminalModelEscapeLeavesFilter(t *testing.T) {
	m := send(newTerminalModel(sampleMenu()), runes("/"), runes("q"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.filtering {
		t.Fatal("expected filter mode to end")
	}
	if len(m.visible) != 2 {
		t.Fatalf("expected all entries visible again, got %v", m.visible)
	}

	m = send(m, runes("f"))
	if !m.chosen || m.command != "firefox" {
		t.Fatalf("expected key activation after leaving filter, got %+v", m)
	}
}

func TestTerminalMenuSelect(t *testing.T) {
	tm := &TerminalMenu{run: func(model *terminalModel) (*terminalModel, error) {
		return send(model, runes("f")), nil
	}}

	command, ok, err := tm.Select(sampleMenu())
	if err != nil || !ok || command != "firefox" {
		t.Fatalf("expected firefox, got (%q, %v, %v)", command, ok, err)
	}

	tm = &TerminalMenu{run: func(*terminalModel) (*terminalModel, error) {
		return nil, errors.New("no tty")
	}}
	if _, _, err := tm.Select(menu.New("Apps", "")); err == nil {
		t.Fatal("expected error from failed program")
	}
}
