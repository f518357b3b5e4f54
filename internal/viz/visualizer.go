// Visualizer orchestrating telemetry polling and the frame loop
package viz

import (
	"context"
	"sync"
	"time"

	"rocketviz/internal/config"
	"rocketviz/internal/logging"
	"rocketviz/internal/particles"
	"rocketviz/internal/telemetry"
	"rocketviz/internal/visual"
)

// Visualizer drives the simulation: a slow tick pulls telemetry, a fast
// tick advances the particle engine and publishes a frame. Both ticks run
// on one goroutine, so the simulation state is never touched concurrently;
// the mutex only guards the published-frame slot read by other goroutines.
type Visualizer struct {
	sessionID     string
	source        telemetry.Source
	engine        *particles.Engine
	writer        FrameWriter
	sink          TelemetrySink
	width, height int
	telemetryTick time.Duration
	frameTick     time.Duration

	current     telemetry.Sample
	lastAdvance time.Time

	mu        sync.Mutex
	lastFrame Frame
	haveFrame bool
}

// New assembles a visualizer from config and components. sessionID tags
// every published frame; sink may be nil.
func New(sessionID string, cfg *config.Config, source telemetry.Source, engine *particles.Engine, writer FrameWriter, sink TelemetrySink) (*Visualizer, error) {
	teleTick, err := cfg.TelemetryTick()
	if err != nil {
		return nil, err
	}
	frameTick, err := cfg.FrameTick()
	if err != nil {
		return nil, err
	}
	return &Visualizer{
		sessionID:     sessionID,
		source:        source,
		engine:        engine,
		writer:        writer,
		sink:          sink,
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
		telemetryTick: teleTick,
		frameTick:     frameTick,
	}, nil
}

// SessionID returns the identifier stamped on every frame of this run.
func (v *Visualizer) SessionID() string { return v.sessionID }

// Run starts both tick loops and blocks until the context is done.
func (v *Visualizer) Run(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Info("starting visualizer",
		"session", v.sessionID,
		"telemetry_tick", v.telemetryTick,
		"frame_tick", v.frameTick,
		"particles", v.engine.Enabled())

	telemetryTicker := time.NewTicker(v.telemetryTick)
	defer telemetryTicker.Stop()
	frameTicker := time.NewTicker(v.frameTick)
	defer frameTicker.Stop()

	// Prime the current sample so the first frames have data to show.
	v.pollTelemetry(ctx)

	for {
		select {
		case <-telemetryTicker.C:
			v.pollTelemetry(ctx)
		case now := <-frameTicker.C:
			v.advanceFrame(ctx, now)
		case <-ctx.Done():
			log.Info("stopping visualizer")
			return
		}
	}
}

// pollTelemetry pulls the freshest sample and forwards it to the sink.
// The source swallows its own failures, so a poll always yields a usable
// (possibly stale) sample.
func (v *Visualizer) pollTelemetry(ctx context.Context) {
	v.current = v.source.Poll()
	if v.sink != nil {
		if err := v.sink.WriteSample(v.current); err != nil {
			logging.FromContext(ctx).Warn("telemetry sink write failed", "error", err)
		}
	}
}

// advanceFrame runs one fast tick: derive visual state from the current
// sample, emit particles, integrate, and publish the frame.
func (v *Visualizer) advanceFrame(ctx context.Context, now time.Time) {
	sample := v.current

	cx := float64(v.width) / 2
	cy := float64(v.height) / 2
	v.engine.SpawnExhaust(cx, cy,
		sample.AccelerationX, sample.AccelerationY, sample.AccelerationZ, sample.Pitch)
	v.engine.SpawnDust(
		sample.AccelerationX, sample.AccelerationY, sample.AccelerationZ, sample.Pitch)

	dt := v.frameTick.Seconds()
	if !v.lastAdvance.IsZero() {
		dt = now.Sub(v.lastAdvance).Seconds()
	}
	v.lastAdvance = now
	v.engine.Advance(dt)

	exhaust, dust := v.engine.Snapshot()
	frame := Frame{
		SessionID:   v.sessionID,
		Timestamp:   now,
		Background:  visual.BackgroundColor(sample.Altitude),
		RotationDeg: visual.Rotation(sample.Pitch),
		Sample:      sample,
		Exhaust:     exhaust,
		Dust:        dust,
	}

	v.mu.Lock()
	v.lastFrame = frame
	v.haveFrame = true
	v.mu.Unlock()

	if err := v.writer.WriteFrame(frame); err != nil {
		logging.FromContext(ctx).Warn("frame write failed", "error", err)
	}
}

// LatestFrame returns the most recently published frame. The second
// return is false before the first frame.
func (v *Visualizer) LatestFrame() (Frame, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastFrame, v.haveFrame
}
