package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/dragplan"
)

var errZoneFail = errors.New("zone configured to fail")

func replayCmd() *cobra.Command {
	var (
		configPath string
		maxFrames  int
		fps        int
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Run a gesture script through the engine and print its events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := dragplan.LoadScript(args[0])
			if err != nil {
				return err
			}
			opts := dragplan.DefaultOptions()
			if configPath != "" {
				if opts, err = dragplan.LoadOptions(configPath); err != nil {
					return err
				}
			}
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			sum, err := replay(cmd.OutOrStdout(), script, opts, logger, maxFrames, fps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "frames=%d drops=%d failed=%d rolled_back=%d selected=%v\n",
				sum.Frames, sum.Drops, sum.Failed, sum.RolledBack, sum.Selected)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "options YAML file")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "stop after this many frames")
	cmd.Flags().IntVar(&fps, "fps", 60, "simulated frames per second")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine diagnostics to stderr")
	return cmd
}

type replaySummary struct {
	Frames     int
	Drops      int
	Failed     int
	RolledBack int
	Selected   []string
}

// replay drives script through a fresh engine until the script and any return
// animation finish. Zones declared in the script accept the kinds they list
// and fail their commits when marked fail.
func replay(out io.Writer, script *dragplan.Script, opts dragplan.Options, logger *slog.Logger, maxFrames, fps int) (replaySummary, error) {
	if fps <= 0 {
		return replaySummary{}, fmt.Errorf("fps must be positive, got %d", fps)
	}
	var sum replaySummary
	cfg := dragplan.Config{
		Options: opts,
		Logger:  logger,
		ValidateDrop: func(item dragplan.DraggedItem, zone dragplan.DropZone) bool {
			sz, ok := zone.Data.(*dragplan.ScriptZone)
			return !ok || sz.AcceptsKind(item.Kind)
		},
		OnDrop: func(_ context.Context, item dragplan.DraggedItem, zone dragplan.DropZone) (bool, error) {
			if sz, ok := zone.Data.(*dragplan.ScriptZone); ok && sz.Fail {
				return false, errZoneFail
			}
			return true, nil
		},
	}
	engine, err := dragplan.NewEngine(cfg)
	if err != nil {
		return sum, err
	}
	script.RegisterZones(engine.Zones())

	frame := 0
	engine.OnEvent(func(ev dragplan.GestureEvent) {
		switch ev.Type {
		case dragplan.EventDragMove:
			return
		case dragplan.EventDrop:
			sum.Drops++
		case dragplan.EventDropFailed:
			sum.Failed++
		case dragplan.EventCancel:
			sum.RolledBack++
		}
		fmt.Fprintf(out, "%5d  %-15s item=%s", frame, ev.Type, ev.ItemID)
		if ev.ZoneID != "" {
			fmt.Fprintf(out, " zone=%s", ev.ZoneID)
		}
		if ev.Outcome != dragplan.OutcomeNone {
			fmt.Fprintf(out, " outcome=%s", ev.Outcome)
		}
		fmt.Fprintf(out, " pos=(%g,%g)\n", ev.X, ev.Y)
	})

	runner := dragplan.NewScriptRunner(script)
	engine.SetScriptRunner(runner)
	dt := 1 / float64(fps)
	for ; frame < maxFrames; frame++ {
		if runner.Done() && !engine.Returning() && !engine.IsDragging() {
			break
		}
		engine.Update(dt)
	}
	sum.Frames = frame
	sum.Selected = engine.SelectedItemIDs()
	if !runner.Done() {
		return sum, fmt.Errorf("script did not finish within %d frames", maxFrames)
	}
	return sum, nil
}
