package dragplan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by DefaultOptions.
const (
	DefaultGridSize        = 20.0
	DefaultScrollThreshold = 50.0
	DefaultScrollStep      = 10.0
	DefaultScrollInterval  = time.Second / 60
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Options holds the declarative engine settings. It can be loaded from YAML.
type Options struct {
	Enabled         bool          `yaml:"enabled"`
	SnapToGrid      bool          `yaml:"snap_to_grid"`
	GridSize        float64       `yaml:"grid_size"`
	AutoScroll      bool          `yaml:"auto_scroll"`
	ScrollThreshold float64       `yaml:"scroll_threshold"`
	ScrollStep      float64       `yaml:"scroll_step"`
	ScrollInterval  time.Duration `yaml:"scroll_interval"`
	ReturnDuration  time.Duration `yaml:"return_duration"`
	// DropTimeout bounds the context passed to OnDrop. Zero means no deadline.
	DropTimeout time.Duration `yaml:"drop_timeout"`
}

// DefaultOptions returns an enabled engine with snapping and auto-scroll off.
func DefaultOptions() Options {
	return Options{
		Enabled:         true,
		GridSize:        DefaultGridSize,
		ScrollThreshold: DefaultScrollThreshold,
		ScrollStep:      DefaultScrollStep,
		ScrollInterval:  DefaultScrollInterval,
		ReturnDuration:  time.Duration(DefaultReturnDuration * float64(time.Second)),
	}
}

// Validate reports the first malformed setting.
func (o Options) Validate() error {
	switch {
	case o.GridSize < 0:
		return fmt.Errorf("%w: grid_size must not be negative, got %v", ErrInvalidConfig, o.GridSize)
	case o.SnapToGrid && o.GridSize == 0:
		return fmt.Errorf("%w: snap_to_grid requires a grid_size", ErrInvalidConfig)
	case o.ScrollThreshold < 0:
		return fmt.Errorf("%w: scroll_threshold must not be negative", ErrInvalidConfig)
	case o.ScrollStep < 0:
		return fmt.Errorf("%w: scroll_step must not be negative", ErrInvalidConfig)
	case o.ScrollInterval < 0, o.ReturnDuration < 0, o.DropTimeout < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	case o.AutoScroll && o.ScrollInterval == 0:
		return fmt.Errorf("%w: auto_scroll requires a scroll_interval", ErrInvalidConfig)
	}
	return nil
}

// ParseOptions decodes YAML over DefaultOptions and validates the result.
// Keys not present in data keep their default values.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// LoadOptions reads and parses a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("loading options: %w", err)
	}
	return ParseOptions(data)
}

// Config is supplied once to NewEngine and never mutated by the engine.
// ValidateDrop and OnDrop are the only places where caller business logic
// enters the engine; every other callback is a notification.
type Config struct {
	Options

	// ValidateDrop decides whether item may land on zone. Nil accepts all.
	ValidateDrop func(item DraggedItem, zone DropZone) bool
	// OnDrop commits a validated drop. Nil always succeeds. Returning false,
	// an error, or panicking counts as a failed drop.
	OnDrop func(ctx context.Context, item DraggedItem, zone DropZone) (bool, error)

	OnDragStart func(item DraggedItem)
	OnDragMove  func(item DraggedItem, pos Vec2)
	// OnDragEnd receives the zone only when the drop was committed.
	OnDragEnd func(item DraggedItem, zone *DropZone)

	// OnFeedback receives the zone-targeted success or failure signal for
	// the presentation layer.
	OnFeedback func(Feedback)
	// OnPreview receives every change of the floating drag preview.
	OnPreview func(Preview)

	// Scroller is the container nudged by auto-scroll. Nil disables it.
	Scroller Scroller
	// Zones is the registry snapshotted at drag start. Nil creates a new one.
	Zones *ZoneRegistry
	// Logger receives lifecycle diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Feedback is the zone-targeted signal emitted after a drop attempt.
type Feedback struct {
	Item    DraggedItem
	Zone    DropZone
	Success bool
	Err     error
}

// Preview is the render contract for the floating drag preview. The engine
// owns no visual element; the presentation layer draws whatever it receives.
type Preview struct {
	Visible   bool
	Position  Vec2
	Label     string
	Returning bool
}
