// Package launcher provides an abstraction layer for the selector programs
// that display the menu. rofi is the primary selector; fzf and a built-in
// terminal menu are used when rofi is not available. Every selector reports
// the entry whose key was pressed, or no selection.
package launcher

import (
	"fmt"

	"github.com/lvim-tech/rofi-keys/pkg/menu"
	"github.com/lvim-tech/rofi-keys/pkg/utils"
)

// Launcher интерфейс за различни menu системи
type Launcher interface {
	Name() string
	Available() bool
	// Select показва менюто и връща командата на избрания запис.
	// ok е false когато потребителят не е натиснал клавиш от менюто.
	Select(m *menu.Menu) (command string, ok bool, err error)
}

// Имена на поддържаните selector-и
const (
	NameAuto = "auto"
	NameRofi = "rofi"
	NameFzf  = "fzf"
	NameTUI  = "tui"
)

var (
	commandExists = utils.CommandExists
	isTerminal    = utils.IsTerminal
)

// Names връща имената, приемани от New
func Names() []string {
	return []string{NameAuto, NameRofi, NameFzf, NameTUI}
}

// New създава selector по име. Празно име или "auto" избира първия наличен.
func New(name string) (Launcher, error) {
	switch name {
	case "", NameAuto:
		return Detect()
	case NameRofi:
		return NewRofi(), nil
	case NameFzf:
		return NewFzf(), nil
	case NameTUI:
		return NewTerminalMenu(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLauncher, name)
	}
}

// Detect намира първия наличен selector
func Detect() (Launcher, error) {
	// Приоритет: rofi > fzf > вграденото терминално меню
	candidates := []Launcher{NewRofi(), NewFzf(), NewTerminalMenu()}

	for _, l := range candidates {
		if l.Available() {
			return l, nil
		}
	}

	return nil, ErrNoLauncher
}
