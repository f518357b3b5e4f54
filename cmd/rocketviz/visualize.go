package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rocketviz/internal/config"
	"rocketviz/internal/logging"
	"rocketviz/internal/particles"
	"rocketviz/internal/status"
	"rocketviz/internal/telemetry"
	"rocketviz/internal/viz"
)

var (
	vizLogPath    string
	vizConfigPath string
	vizSchemaPath string
	vizParticles  bool
	vizPrintOnly  bool
	vizColor      bool
	vizDebug      bool
	vizSeed       int64
	vizFrameLog   string
	vizStatusAddr string
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Run the real-time rocket visualizer",
	Long:  "visualize polls telemetry (from a log file, or synthesized when none is given) and renders the rocket scene.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(vizDebug)

		cfg := config.Default()
		if vizConfigPath != "" {
			loaded, err := config.Load(vizConfigPath, vizSchemaPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if vizParticles {
			cfg.Particles.Enabled = true
		}
		if env := os.Getenv("TELEMETRY_INTERVAL"); env != "" {
			cfg.TelemetryInterval = env
		}
		if env := os.Getenv("FRAME_INTERVAL"); env != "" {
			cfg.FrameInterval = env
		}

		seed := cfg.Particles.Seed
		if vizSeed != 0 {
			seed = vizSeed
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		var source telemetry.Source
		if vizLogPath != "" {
			source = telemetry.NewFileSource(vizLogPath, logger)
			logger.Info("telemetry source: log file", "path", vizLogPath)
		} else {
			source = telemetry.NewSyntheticSource(seed, logger)
			logger.Info("telemetry source: synthetic ascent generator")
		}

		engine := particles.NewEngine(cfg.Window.Width, cfg.Window.Height, cfg.Particles.Enabled, seed)
		sessionID := uuid.NewString()

		writer, sink, cleanup, err := newWriters(cfg, sessionID, vizPrintOnly, vizColor, vizFrameLog)
		if err != nil {
			return err
		}
		defer cleanup()

		visualizer, err := viz.New(sessionID, cfg, source, engine, writer, sink)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(logging.NewContext(context.Background(), logger))
		defer cancel()

		if vizStatusAddr != "" {
			srv := status.NewServer(visualizer)
			go func() {
				logger.Info("status server listening", "addr", vizStatusAddr)
				if err := srv.Start(ctx, vizStatusAddr); err != nil && err != http.ErrServerClosed {
					logger.Error("status server failed", "error", err)
				}
			}()
		}

		go visualizer.Run(ctx)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		cancel()
		logger.Info("visualizer stopped")
		return nil
	},
}

func init() {
	visualizeCmd.Flags().StringVar(&vizLogPath, "log", "", "Path to telemetry log file (omit to synthesize an ascent)")
	visualizeCmd.Flags().BoolVar(&vizParticles, "particles", false, "Enable particle effects")
	visualizeCmd.Flags().StringVar(&vizConfigPath, "config", "", "Path to visualizer configuration YAML")
	visualizeCmd.Flags().StringVar(&vizSchemaPath, "schema", "schemas/visualizer.cue", "Path to CUE schema file")
	visualizeCmd.Flags().BoolVar(&vizPrintOnly, "print-only", false, "Print frames as JSON to STDOUT instead of rendering a TUI")
	visualizeCmd.Flags().BoolVar(&vizColor, "color", false, "With --print-only, print colorized frame summaries instead of JSON")
	visualizeCmd.Flags().BoolVar(&vizDebug, "debug", false, "Enable debug logging")
	visualizeCmd.Flags().Int64Var(&vizSeed, "seed", 0, "Seed for particle and synthetic-telemetry randomness (0 = time-based)")
	visualizeCmd.Flags().StringVar(&vizFrameLog, "frame-log", "", "Path to export frames (JSONL); raw telemetry goes to <path>.telemetry")
	visualizeCmd.Flags().StringVar(&vizStatusAddr, "status-addr", "", "Address for the JSON status server (empty = disabled)")
}
