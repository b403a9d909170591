package track

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("nopHandler is enabled")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs lost the handler type")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup lost the handler type")
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestLoggingRouteBuild(t *testing.T) {
	buf := captureLogs(t)
	mustRoute(t, Diagonal)
	out := buf.String()
	for _, want := range []string{"route built", "kind=diagonal", "segments=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q doesn't contain %q", out, want)
		}
	}
}

func TestLoggingRefusedSwitch(t *testing.T) {
	buf := captureLogs(t)
	s := Signal(NewState(mustRoute(t, Straight)))
	if _, err := SwitchRoute(s, s.Route); !errors.Is(err, ErrTrainMoving) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(buf.String(), "route switch refused") {
		t.Errorf("got log %q", buf.String())
	}
}
