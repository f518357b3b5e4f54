package main

import (
	"os"

	"golang.org/x/term"

	"rocketviz/internal/config"
	"rocketviz/internal/viz"
)

// newWriters sets up the frame writer and optional telemetry sink based on
// flags and env vars. It returns a cleanup function to close any resources.
func newWriters(cfg *config.Config, sessionID string, printOnly, color bool, frameLog string) (viz.FrameWriter, viz.TelemetrySink, func(), error) {
	cleanup := func() {}

	var writer viz.FrameWriter
	switch {
	case printOnly && color:
		writer = viz.NewColorWriter()
	case printOnly || !term.IsTerminal(int(os.Stdout.Fd())):
		writer = viz.NewStdoutWriter()
	default:
		tui := viz.NewTUIWriter(cfg.Window.Width, cfg.Window.Height)
		writer = tui
		cleanup = func() { tui.Close() }
	}

	var sink viz.TelemetrySink
	if endpoint := os.Getenv("GREPTIMEDB_ENDPOINT"); endpoint != "" {
		db := os.Getenv("GREPTIMEDB_DATABASE")
		if db == "" {
			db = "public"
		}
		gw, err := viz.NewGreptimeWriter(endpoint, db, os.Getenv("GREPTIMEDB_TABLE"), sessionID)
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		sink = gw
	}

	if frameLog == "" {
		return writer, sink, cleanup, nil
	}

	fw, err := viz.NewFileWriter(frameLog, frameLog+".telemetry")
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	sinks := []viz.TelemetrySink{fw}
	if sink != nil {
		sinks = append(sinks, sink)
	}
	mw := viz.NewMultiWriter([]viz.FrameWriter{writer, fw}, sinks)

	prev := cleanup
	cleanup = func() {
		prev()
		fw.Close()
	}
	return mw, mw, cleanup, nil
}
