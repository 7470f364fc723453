package launcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lvim-tech/rofi-keys/pkg/menu"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	noMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// TerminalMenu е вграденият selector за терминал
type TerminalMenu struct {
	run func(model *terminalModel) (*terminalModel, error)
}

func NewTerminalMenu() *TerminalMenu {
	return &TerminalMenu{run: runProgram}
}

func (t *TerminalMenu) Name() string {
	return NameTUI
}

func (t *TerminalMenu) Available() bool {
	return isTerminal()
}

func (t *TerminalMenu) Select(m *menu.Menu) (string, bool, error) {
	final, err := t.run(newTerminalModel(m))
	if err != nil {
		return "", false, fmt.Errorf("terminal menu failed: %w", err)
	}
	return final.command, final.chosen, nil
}

func runProgram(model *terminalModel) (*terminalModel, error) {
	prog := tea.NewProgram(model, tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	return final.(*terminalModel), nil
}

// terminalModel е Bubble Tea състоянието на менюто
type terminalModel struct {
	menu    *menu.Menu
	entries []menu.Entry
	visible []int
	cursor  int

	filtering bool
	filter    textinput.Model

	command string
	chosen  bool
}

func newTerminalModel(m *menu.Menu) *terminalModel {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter"

	model := &terminalModel{
		menu:    m,
		entries: m.Entries(),
		filter:  filter,
	}
	model.refilter()
	return model
}

func (m *terminalModel) Init() tea.Cmd {
	return nil
}

func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	case tea.KeyEnter:
		if len(m.visible) > 0 {
			m.choose(m.entries[m.visible[m.cursor]])
		}
		return m, tea.Quit
	case tea.KeyEsc:
		if m.filtering {
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.refilter()
			return m, nil
		}
		return m, tea.Quit
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return m, cmd
	}

	if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
		r := key.Runes[0]
		if command, found := m.menu.Lookup(r); found {
			m.command = command
			m.chosen = true
			return m, tea.Quit
		}
		if r == '/' {
			m.filtering = true
			return m, m.filter.Focus()
		}
	}

	return m, nil
}

func (m *terminalModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.menu.Title()))
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(noMatchStyle.Render("no matching entries"))
		b.WriteString("\n")
	}

	for row, idx := range m.visible {
		entry := m.entries[idx]
		line := fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("[%c]", entry.Key)), entry.Label)
		if row == m.cursor {
			line = cursorStyle.Render(entry.Line())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	help := "press a key to launch • ↑/↓ enter to pick • / filter • esc quit"
	if m.filtering {
		help = "type to filter • ↑/↓ enter to pick • esc clear filter"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m *terminalModel) choose(entry menu.Entry) {
	m.command = entry.Command
	m.chosen = true
}

func (m *terminalModel) moveCursor(delta int) {
	if len(m.visible) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + len(m.visible)) % len(m.visible)
}

// refilter пресмята видимите записи спрямо заявката във филтъра
func (m *terminalModel) refilter() {
	query := strings.TrimSpace(m.filter.Value())
	m.visible = m.visible[:0]

	if query == "" {
		for i := range m.entries {
			m.visible = append(m.visible, i)
		}
	} else {
		labels := make([]string, len(m.entries))
		for i, entry := range m.entries {
			labels[i] = entry.Label
		}
		ranks := fuzzy.RankFindNormalizedFold(query, labels)
		sort.Stable(ranks)
		for _, rank := range ranks {
			m.visible = append(m.visible, rank.OriginalIndex)
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}
