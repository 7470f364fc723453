package launcher

import (
	"errors"
	"testing"
)

func stubEnvironment(t *testing.T, installed map[string]bool, terminal bool) {
	t.Helper()
	prevExists, prevTerminal := commandExists, isTerminal
	commandExists = func(cmd string) bool { return installed[cmd] }
	isTerminal = func() bool { return terminal }
	t.Cleanup(func() {
		commandExists = prevExists
		isTerminal = prevTerminal
	})
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name      string
		installed map[string]bool
		terminal  bool
		want      string
	}{
		{"rofi preferred", map[string]bool{"rofi": true, "fzf": true}, true, NameRofi},
		{"rofi without terminal", map[string]bool{"rofi": true}, false, NameRofi},
		{"fzf in terminal", map[string]bool{"fzf": true}, true, NameFzf},
		{"builtin menu in terminal", map[string]bool{}, true, NameTUI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stubEnvironment(t, tc.installed, tc.terminal)
			l, err := Detect()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Name() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, l.Name())
			}
		})
	}
}

func TestDetectNothingAvailable(t *testing.T) {
	stubEnvironment(t, map[string]bool{"fzf": true}, false)
	if _, err := Detect(); !errors.Is(err, ErrNoLauncher) {
		t.Fatalf("expected ErrNoLauncher, got %v", err)
	}
}

func TestNew(t *testing.T) {
	stubEnvironment(t, map[string]bool{}, true)

	for _, name := range []string{NameRofi, NameFzf, NameTUI} {
		l, err := New(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if l.Name() != name {
			t.Fatalf("expected %s, got %s", name, l.Name())
		}
	}

	l, err := New("")
	if err != nil || l.Name() != NameTUI {
		t.Fatalf("expected auto detection to pick the builtin menu, got %v, %v", l, err)
	}

	if _, err := New("dmenu"); !errors.Is(err, ErrUnknownLauncher) {
		t.Fatalf("expected ErrUnknownLauncher, got %v", err)
	}
}
