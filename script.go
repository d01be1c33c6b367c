package dragplan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrScriptEmpty is returned for scripts with no steps.
var ErrScriptEmpty = errors.New("script has no steps")

// ScriptRect is a rectangle in a gesture script.
type ScriptRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r ScriptRect) rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// ScriptZone declares a drop zone. The zone's Data is the *ScriptZone itself,
// so drop handlers can read Accepts and Fail.
type ScriptZone struct {
	ID   string     `yaml:"id"`
	Kind string     `yaml:"kind"`
	Rect ScriptRect `yaml:"rect"`
	// Accepts lists the item kinds the zone takes. Empty accepts every kind.
	Accepts []string `yaml:"accepts,omitempty"`
	// Fail makes the drop commit fail, to exercise the failure path.
	Fail bool `yaml:"fail,omitempty"`
}

// AcceptsKind reports whether the zone takes items of kind k.
func (z *ScriptZone) AcceptsKind(k ItemKind) bool {
	if len(z.Accepts) == 0 {
		return true
	}
	for _, a := range z.Accepts {
		if a == k.String() {
			return true
		}
	}
	return false
}

// ScriptStep is a single action in a gesture script.
type ScriptStep struct {
	Action string      `yaml:"action"`
	ID     string      `yaml:"id,omitempty"`
	Kind   string      `yaml:"kind,omitempty"`
	Label  string      `yaml:"label,omitempty"`
	Key    string      `yaml:"key,omitempty"`
	X      float64     `yaml:"x,omitempty"`
	Y      float64     `yaml:"y,omitempty"`
	Bounds *ScriptRect `yaml:"bounds,omitempty"`
	FromX  float64     `yaml:"fromX,omitempty"`
	FromY  float64     `yaml:"fromY,omitempty"`
	ToX    float64     `yaml:"toX,omitempty"`
	ToY    float64     `yaml:"toY,omitempty"`
	Frames int         `yaml:"frames,omitempty"`
}

// scriptLabel is the payload of a scripted item; it names the preview.
type scriptLabel string

func (l scriptLabel) String() string { return string(l) }

// Script is a recorded or hand-written sequence of gestures. JSON is accepted
// as well, since it is valid YAML.
type Script struct {
	Zones []ScriptZone `yaml:"zones"`
	Steps []ScriptStep `yaml:"steps"`
}

// ParseScript decodes and validates a gesture script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrScriptEmpty)
	}
	for i, z := range s.Zones {
		if z.ID == "" {
			return nil, fmt.Errorf("parse script: zone %d has no id", i)
		}
		if _, ok := ParseZoneKind(z.Kind); !ok {
			return nil, fmt.Errorf("parse script: zone %q: unknown kind %q", z.ID, z.Kind)
		}
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &s, nil
}

// LoadScript reads and parses a gesture script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading script: %w", err)
	}
	return ParseScript(data)
}

func (st ScriptStep) validate() error {
	switch st.Action {
	case "start":
		if st.ID == "" {
			return fmt.Errorf("start requires an id")
		}
		if _, ok := ParseItemKind(st.Kind); !ok {
			return fmt.Errorf("unknown item kind %q", st.Kind)
		}
	case "key", "keyup":
		if _, ok := ParseKey(st.Key); !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	case "select":
		if st.ID == "" {
			return fmt.Errorf("select requires an id")
		}
	case "move", "release", "drag", "cancel", "wait":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// RegisterZones registers the script's zones, in order, with reg.
func (s *Script) RegisterZones(reg *ZoneRegistry) {
	for i := range s.Zones {
		z := &s.Zones[i]
		kind, _ := ParseZoneKind(z.Kind)
		reg.Register(DropZone{ID: z.ID, Kind: kind, Data: z, Rect: z.Rect.rect()})
	}
}

// ScriptRunner feeds a Script into an Engine one step per frame. Attach it
// with Engine.SetScriptRunner.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// NewScriptRunner returns a runner positioned at the first step.
func NewScriptRunner(s *Script) *ScriptRunner {
	return &ScriptRunner{steps: s.Steps}
}

// SetScriptRunner attaches a runner. Its step method is called from Update
// before injected input is processed.
func (e *Engine) SetScriptRunner(r *ScriptRunner) {
	e.runner = r
}

// Done reports whether every step has run and its input has drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "start":
		kind, _ := ParseItemKind(st.Kind)
		bounds := Rect{X: st.X, Y: st.Y}
		if st.Bounds != nil {
			bounds = st.Bounds.rect()
		}
		var payload any
		if st.Label != "" {
			payload = scriptLabel(st.Label)
		}
		e.StartDrag(st.ID, kind, payload, Origin{Pointer: Vec2{st.X, st.Y}, Bounds: bounds})
	case "move":
		e.InjectMove(st.X, st.Y)
	case "release":
		e.InjectRelease(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		k, _ := ParseKey(st.Key)
		e.InjectKey(k)
	case "keyup":
		k, _ := ParseKey(st.Key)
		e.InjectKeyUp(k)
	case "cancel":
		e.CancelDrag()
	case "select":
		e.selection.Pick(st.ID)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
