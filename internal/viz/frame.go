// Render payload published to frame writers once per fast tick
package viz

import (
	"time"

	"rocketviz/internal/particles"
	"rocketviz/internal/telemetry"
	"rocketviz/internal/visual"
)

// Frame is everything a renderer needs to draw one instant of the
// visualization: the derived visual state, the particle snapshots, and
// the telemetry sample they were computed from.
type Frame struct {
	SessionID   string               `json:"session_id"`
	Timestamp   time.Time            `json:"ts"`
	Background  visual.RGB           `json:"background"`
	RotationDeg float64              `json:"rotation_deg"`
	Sample      telemetry.Sample     `json:"sample"`
	Exhaust     []particles.Particle `json:"exhaust"`
	Dust        []particles.Particle `json:"dust"`
}

// FrameWriter is an interface to support different render backends.
type FrameWriter interface {
	WriteFrame(Frame) error
}

// TelemetrySink receives raw samples as they are polled, independently of
// the frame cadence. Sinks are optional.
type TelemetrySink interface {
	WriteSample(telemetry.Sample) error
}
