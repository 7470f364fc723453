// Package logging provides the diagnostic output of rofi-keys. Everything is
// written to stderr through the standard logger; debug messages are dropped
// unless EnableDebug was called.
package logging

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	debugEnabled atomic.Bool
	logger       = log.New(os.Stderr, "rofi-keys: ", 0)
)

// EnableDebug turns on verbose debug logging.
func EnableDebug() {
	debugEnabled.Store(true)
	logger.SetFlags(log.Ltime | log.Lmicroseconds)
	Debugf("debug logging enabled")
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debugf emits a formatted debug message when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	logger.Printf("[DEBUG] "+format, args...)
}

// Warnf emits a warning.
func Warnf(format string, args ...interface{}) {
	logger.Printf("[WARN] "+format, args...)
}

// Errorf emits an error message.
func Errorf(format string, args ...interface{}) {
	logger.Printf("[ERROR] "+format, args...)
}
