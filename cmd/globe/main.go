// Command globe shows an orbitable globe and reports the latitude and longitude under each tap.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-globe/config"
	"github.com/Carmen-Shannon/oxy-globe/engine"
	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/globe"
	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
	"github.com/Carmen-Shannon/oxy-globe/engine/renderer"
	"github.com/Carmen-Shannon/oxy-globe/engine/touch"
	"github.com/Carmen-Shannon/oxy-globe/engine/window"
	"github.com/spf13/cobra"
)

const windowTitle = "Globe"

var flags *config.Flags

var rootCmd = &cobra.Command{
	Use:   "globe",
	Short: "Orbit a globe and pick coordinates by touch",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(cmd.Flags(), flags)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		return run(cfg)
	},
}

func init() {
	flags = config.BindFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	label := &overlay.Label{}
	g, err := globe.NewGlobe(
		globe.WithViewport(cfg.Width, cfg.Height),
		globe.WithRadius(float32(cfg.Radius)),
		globe.WithSteps(cfg.Steps),
		globe.WithOrbitOptions(
			camera.WithYaw(cfg.Orbit.Yaw),
			camera.WithPitch(cfg.Orbit.Pitch),
			camera.WithFriction(cfg.Orbit.Friction),
			camera.WithPitchLimit(cfg.Orbit.PitchLimit),
		),
		globe.WithAnnotator(overlay.NewAnnotator(
			overlay.WithSize(cfg.Overlay.Width, cfg.Overlay.Height),
			overlay.WithMarkerRadius(cfg.Overlay.MarkerRadius),
		)),
		globe.WithTextDisplay(overlay.MultiDisplay{label, overlay.TextFunc(func(s string) {
			logger.Info("pick", "text", s)
		})}),
		globe.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create globe: %w", err)
	}

	base, err := overlay.LoadBaseMap(cfg.MapPath, cfg.Overlay.Width, cfg.Overlay.Height)
	if err != nil {
		return fmt.Errorf("failed to load base map: %w", err)
	}

	logger.Info("starting globe",
		"backend", cfg.Backend,
		"width", cfg.Width,
		"height", cfg.Height,
		"steps", cfg.Steps,
	)

	switch cfg.Backend {
	case config.BackendEbiten:
		shell := touch.NewShell(g, base, label,
			touch.WithTitle(windowTitle),
			touch.WithTickRate(int(math.Round(cfg.TickRate))),
			touch.WithLogger(logger),
		)
		return shell.Run(cfg.Width, cfg.Height)

	case config.BackendWebGPU:
		w, err := window.NewWindow(
			window.WithTitle(windowTitle),
			window.WithSize(cfg.Width, cfg.Height),
		)
		if err != nil {
			return fmt.Errorf("failed to open window: %w", err)
		}
		r, err := renderer.NewRenderer(w.SurfaceDescriptor(), g.Mesh(), w.Width(), w.Height(),
			renderer.WithLogger(logger),
		)
		if err != nil {
			_ = w.Close()
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		// The framebuffer may differ from the requested size on high-DPI displays.
		g.Resize(w.Width(), w.Height())

		eng := engine.NewEngine(w, g, r,
			engine.WithLabel(label),
			engine.WithBaseMap(base),
			engine.WithTickRate(cfg.TickRate),
			engine.WithRenderFrameLimit(cfg.FrameLimit),
			engine.WithProfiling(cfg.Profile),
			engine.WithLogger(logger),
		)
		return eng.Run()

	default:
		return fmt.Errorf("unexpected backend %q", cfg.Backend)
	}
}
