package dragplan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const weekScript = `
zones:
  - id: tue-10
    kind: time-slot
    rect: {x: 300, y: 300, width: 100, height: 50}
    accepts: [scheduled-item, template]
  - id: ideas
    kind: container-switch
    rect: {x: 0, y: 500, width: 800, height: 100}
steps:
  - action: start
    id: evt-1
    kind: scheduled-item
    x: 100
    y: 100
    bounds: {x: 90, y: 90, width: 40, height: 40}
  - action: drag
    fromX: 100
    fromY: 100
    toX: 320
    toY: 310
    frames: 3
  - action: wait
    frames: 2
  - action: key
    key: shift
  - action: select
    id: evt-1
  - action: select
    id: evt-2
  - action: keyup
    key: shift
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(weekScript))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(s.Zones) != 2 || len(s.Steps) != 7 {
		t.Fatalf("zones=%d steps=%d", len(s.Zones), len(s.Steps))
	}
	if s.Steps[0].Bounds == nil || s.Steps[0].Bounds.Width != 40 {
		t.Error("start bounds not decoded")
	}
	if s.Steps[1].Frames != 3 || s.Steps[1].ToX != 320 {
		t.Errorf("drag step = %+v", s.Steps[1])
	}
	if !s.Zones[0].AcceptsKind(ItemTemplate) || s.Zones[0].AcceptsKind(ItemIdea) {
		t.Error("accepts list not honored")
	}
	if !s.Zones[1].AcceptsKind(ItemIdea) {
		t.Error("empty accepts list should take every kind")
	}
}

func TestParseScript_JSON(t *testing.T) {
	data := []byte(`{"steps": [{"action": "move", "x": 10, "y": 20}, {"action": "wait", "frames": 3}]}`)
	s, err := ParseScript(data)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Steps[0].X != 10 || s.Steps[1].Frames != 3 {
		t.Errorf("steps = %+v", s.Steps)
	}
}

func TestParseScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "steps: [", "parse script"},
		{"unknown action", "steps: [{action: teleport}]", "unknown action"},
		{"start without id", "steps: [{action: start, kind: idea}]", "requires an id"},
		{"bad item kind", "steps: [{action: start, id: a, kind: meeting}]", "unknown item kind"},
		{"bad key", "steps: [{action: key, key: f13}]", "unknown key"},
		{"bad zone kind", "zones: [{id: z, kind: sidebar}]\nsteps: [{action: cancel}]", "unknown kind"},
		{"zone without id", "zones: [{kind: date-cell}]\nsteps: [{action: cancel}]", "has no id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseScript_Empty(t *testing.T) {
	_, err := ParseScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrScriptEmpty) {
		t.Errorf("err = %v, want ErrScriptEmpty", err)
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.yaml")
	if err := os.WriteFile(path, []byte(weekScript), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(path); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if _, err := LoadScript(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScriptRunner_ReplaysGestures(t *testing.T) {
	s, err := ParseScript([]byte(weekScript))
	if err != nil {
		t.Fatal(err)
	}

	var drops []string
	e := newTestEngine(t, func(c *Config) {
		c.ValidateDrop = func(item DraggedItem, zone DropZone) bool {
			return zone.Data.(*ScriptZone).AcceptsKind(item.Kind)
		}
		c.OnDrop = func(_ context.Context, item DraggedItem, zone DropZone) (bool, error) {
			drops = append(drops, item.ID+"->"+zone.ID)
			return true, nil
		}
	})
	s.RegisterZones(e.Zones())
	if e.Zones().Len() != 2 {
		t.Fatalf("registered %d zones", e.Zones().Len())
	}

	runner := NewScriptRunner(s)
	e.SetScriptRunner(runner)
	for i := 0; i < 100 && !runner.Done(); i++ {
		e.Update(1.0 / 60)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}

	if len(drops) != 1 || drops[0] != "evt-1->tue-10" {
		t.Errorf("drops = %v", drops)
	}
	if got := e.SelectedItemIDs(); len(got) != 2 || got[0] != "evt-1" || got[1] != "evt-2" {
		t.Errorf("selection = %v, want [evt-1 evt-2]", got)
	}
	if e.IsMultiSelecting() {
		t.Error("keyup shift should clear the modifier")
	}
}

func TestScriptRunner_WaitsForQueue(t *testing.T) {
	s, err := ParseScript([]byte(`steps: [{action: move, x: 5, y: 5}, {action: move, x: 6, y: 6}]`))
	if err != nil {
		t.Fatal(err)
	}
	e := newTestEngine(t, nil)
	runner := NewScriptRunner(s)

	runner.step(e)
	if e.PendingInput() != 1 {
		t.Fatalf("expected 1 queued event, got %d", e.PendingInput())
	}
	runner.step(e)
	if e.PendingInput() != 1 {
		t.Error("runner should not advance while input is pending")
	}
	e.processInjectedInput()
	runner.step(e)
	runner.step(e)
	e.processInjectedInput()
	runner.step(e)
	if !runner.Done() {
		t.Error("runner should be done after all steps ran and the queue drained")
	}
}

func TestScriptRunner_StartLabel(t *testing.T) {
	s, err := ParseScript([]byte(`steps:
  - {action: start, id: a, kind: scheduled-item, x: 10, y: 10}
  - {action: release, x: 500, y: 500}
  - {action: start, id: b, kind: scheduled-item, label: Standup, x: 10, y: 10}
`))
	if err != nil {
		t.Fatal(err)
	}
	var started []DraggedItem
	e := newTestEngine(t, func(c *Config) {
		c.OnDragStart = func(item DraggedItem) { started = append(started, item) }
	})
	runner := NewScriptRunner(s)
	e.SetScriptRunner(runner)
	for i := 0; i < 20 && !runner.Done(); i++ {
		e.Update(1.0 / 60)
	}

	if len(started) != 2 {
		t.Fatalf("started %d gestures", len(started))
	}
	if started[0].Payload != nil || started[0].Label() != "a" {
		t.Errorf("unlabelled step: payload=%v label=%q", started[0].Payload, started[0].Label())
	}
	if started[1].Label() != "Standup" {
		t.Errorf("label = %q, want Standup", started[1].Label())
	}
}
