package fractal

import (
	"bytes"
	"log/slog"
	"testing"
)

// =============================================================================
// Logger Tests
// =============================================================================

func TestLogger_DefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello")
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}

	// nil restores the silent default.
	SetLogger(nil)
	if Logger().Enabled(nil, slog.LevelError) {
		t.Error("nil should restore the silent logger")
	}
}
