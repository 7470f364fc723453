package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugfRespectsToggle(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		debugEnabled.Store(false)
		logger.SetFlags(0)
	})

	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no debug output, got %q", buf.String())
	}

	EnableDebug()
	Debugf("visible %d", 2)
	if !strings.Contains(buf.String(), "[DEBUG] visible 2") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}

func TestWarnfAndErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	logger.SetFlags(0)

	Warnf("config %s", "broken")
	Errorf("spawn %s", "failed")

	out := buf.String()
	if !strings.Contains(out, "rofi-keys: [WARN] config broken") {
		t.Fatalf("missing warning in %q", out)
	}
	if !strings.Contains(out, "[ERROR] spawn failed") {
		t.Fatalf("missing error in %q", out)
	}
}
