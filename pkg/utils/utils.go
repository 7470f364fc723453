// Package utils provides common utility functions for rofi-keys.
// It includes helpers for path expansion, command lookup and terminal
// detection.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ============================================================================
// File System Utilities
// ============================================================================

// GetHomeDir returns home directory
func GetHomeDir() string {
	return os.Getenv("HOME")
}

// ExpandHomeDir expands a leading "~/" (or a bare "~") to HOME.
// The path is returned unchanged when HOME is unset.
func ExpandHomeDir(path string) string {
	home := GetHomeDir()
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsErrorTerminal checks if stderr is attached to a terminal
func IsErrorTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
