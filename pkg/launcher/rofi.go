package launcher

import (
	"fmt"
	"strings"

	"github.com/lvim-tech/rofi-keys/internal/logging"
	"github.com/lvim-tech/rofi-keys/pkg/menu"
)

const (
	// CustomExitBase е exit code-ът на rofi за kb-custom-1
	CustomExitBase = 10

	// MaxCustomBindings е броят kb-custom-N клавиши, които rofi поддържа
	MaxCustomBindings = 19

	// regexMatching запазва филтрирането работещо въпреки "[k]" префикса
	regexMatching = `configuration { matching: "regex"; }`
)

// Binding свързва activation index (kb-custom-N) с клавиш от менюто
type Binding struct {
	Index int
	Key   rune
}

// Bindings присвоява index i+1 на всеки запис на позиция i
func Bindings(m *menu.Menu) []Binding {
	entries := m.Entries()
	bindings := make([]Binding, 0, len(entries))
	for i, entry := range entries {
		bindings = append(bindings, Binding{Index: i + 1, Key: entry.Key})
	}
	return bindings
}

// ActivationIndex декодира exit code на rofi. Кодове под CustomExitBase
// (Enter, Esc, cancel) не носят index.
func ActivationIndex(exitCode int) (int, bool) {
	if exitCode < CustomExitBase {
		return 0, false
	}
	return exitCode - (CustomExitBase - 1), true
}

// ResolveExitCode връща командата за клавиша, вързан към index-а от exitCode
func ResolveExitCode(m *menu.Menu, bindings []Binding, exitCode int) (string, bool) {
	index, ok := ActivationIndex(exitCode)
	if !ok {
		return "", false
	}

	for _, binding := range bindings {
		if binding.Index == index {
			return m.Lookup(binding.Key)
		}
	}

	return "", false
}

type Rofi struct {
	command string
	run     runner
}

func NewRofi() *Rofi {
	return &Rofi{command: "rofi", run: runProcess}
}

func (r *Rofi) Name() string {
	return NameRofi
}

func (r *Rofi) Available() bool {
	return commandExists(r.command)
}

// Args връща аргументите на rofi за менюто m
func (r *Rofi) Args(m *menu.Menu) []string {
	args := []string{
		"-dmenu",
		"-i",
		"-p", m.Title(),
		"-no-fork",
		"-markup-rows",
		"-no-custom",
		"-theme-str", regexMatching,
	}

	if theme := m.Theme(); theme != "" {
		args = append(args, "-theme", theme)
	}

	for _, binding := range Bindings(m) {
		args = append(args, fmt.Sprintf("-kb-custom-%d", binding.Index), string(binding.Key))
	}

	return args
}

func (r *Rofi) Select(m *menu.Menu) (string, bool, error) {
	if m.Len() > MaxCustomBindings {
		logging.Warnf("rofi supports %d custom key bindings, menu has %d entries", MaxCustomBindings, m.Len())
	}

	bindings := Bindings(m)
	args := r.Args(m)
	logging.Debugf("running %s %s", r.command, strings.Join(args, " "))

	exitCode, _, err := r.run(r.command, args, strings.Join(m.Lines(), "\n"), nil)
	if err != nil {
		return "", false, err
	}

	logging.Debugf("%s exited with code %d", r.command, exitCode)
	command, ok := ResolveExitCode(m, bindings, exitCode)
	return command, ok, nil
}
