package launcher

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lvim-tech/rofi-keys/internal/logging"
	"github.com/lvim-tech/rofi-keys/pkg/menu"
)

// fzfAborted е exit code-ът на fzf при Esc или Ctrl-C
const fzfAborted = 130

type Fzf struct {
	command string
	run     runner
}

func NewFzf() *Fzf {
	return &Fzf{command: "fzf", run: runProcess}
}

func (f *Fzf) Name() string {
	return NameFzf
}

// Available изисква fzf в PATH и терминал за потребителския интерфейс
func (f *Fzf) Available() bool {
	return commandExists(f.command) && isTerminal()
}

// Args връща аргументите на fzf. Клавишите на записите се подават на
// --expect, така че fzf излиза веднага при натискане и отпечатва клавиша
// на първия ред.
func (f *Fzf) Args(m *menu.Menu) []string {
	args := []string{
		"-i",
		"--no-multi",
		"--no-sort",
		"--prompt", m.Title() + "> ",
	}

	var keys []string
	for _, entry := range m.Entries() {
		// запетаята е разделител в --expect
		if entry.Key == ',' {
			continue
		}
		keys = append(keys, string(entry.Key))
	}
	if len(keys) > 0 {
		args = append(args, "--expect="+strings.Join(keys, ","))
	}

	return args
}

func (f *Fzf) Select(m *menu.Menu) (string, bool, error) {
	args := f.Args(m)
	logging.Debugf("running %s %s", f.command, strings.Join(args, " "))

	exitCode, output, err := f.run(f.command, args, strings.Join(m.Lines(), "\n"), os.Stderr)
	if err != nil {
		return "", false, err
	}

	logging.Debugf("%s exited with code %d", f.command, exitCode)
	switch exitCode {
	case 0, 1:
	case fzfAborted:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("%s exited with code %d", f.command, exitCode)
	}

	command, ok := resolveExpectedKey(m, output)
	return command, ok, nil
}

// resolveExpectedKey чете първия ред от изхода на fzf --expect.
// Празен ред означава Enter, което не е избор на клавиш.
func resolveExpectedKey(m *menu.Menu, output []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	if !scanner.Scan() {
		return "", false
	}

	line := strings.TrimSpace(scanner.Text())
	key, size := utf8.DecodeRuneInString(line)
	if size == 0 || size != len(line) {
		return "", false
	}

	return m.Lookup(key)
}
