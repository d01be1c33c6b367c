package dragplan

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestGestureAttrs(t *testing.T) {
	e := newTestEngine(t, nil)
	attrs := e.gestureAttrs("zone", "z1")
	if len(attrs) != 6 || attrs[0] != "gesture" || attrs[3] != "idle" || attrs[4] != "zone" {
		t.Errorf("idle attrs = %v", attrs)
	}

	e.StartDrag("evt-9", ItemIdea, nil, grab())
	attrs = e.gestureAttrs()
	if len(attrs) != 6 || attrs[1] != e.gestureID || attrs[5] != "evt-9" {
		t.Errorf("dragging attrs = %v", attrs)
	}
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := newTestEngine(t, func(c *Config) { c.Logger = logger })
	e.Zones().Register(DropZone{ID: "z", Rect: Rect{0, 0, 50, 50}})

	e.StartDrag("evt-1", ItemScheduled, nil, grab())
	e.PointerUp(400, 400)

	out := buf.String()
	for _, want := range []string{"drag start", "release outside drop zones", "drag end", "item=evt-1", "outcome=no-target"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestEngineLogging_DropFailureIsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	e := newTestEngine(t, func(c *Config) {
		c.Logger = logger
		c.OnDrop = func(context.Context, DraggedItem, DropZone) (bool, error) {
			return false, nil
		}
	})
	e.Zones().Register(DropZone{ID: "z", Rect: Rect{0, 0, 50, 50}})

	e.StartDrag("evt-1", ItemScheduled, nil, grab())
	e.PointerUp(10, 10)

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "drop failed") || !strings.Contains(out, "zone=z") {
		t.Errorf("expected a warning for the failed drop:\n%s", out)
	}
	if strings.Contains(out, "drag start") {
		t.Error("debug lines should be filtered at warn level")
	}
}
