package viz

import "rocketviz/internal/telemetry"

// MultiWriter fans frames and samples out to multiple writers.
type MultiWriter struct {
	frameWriters []FrameWriter
	sinks        []TelemetrySink
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(fws []FrameWriter, sinks []TelemetrySink) *MultiWriter {
	return &MultiWriter{frameWriters: fws, sinks: sinks}
}

// WriteFrame sends a frame to all frame writers.
func (mw *MultiWriter) WriteFrame(frame Frame) error {
	for _, w := range mw.frameWriters {
		if err := w.WriteFrame(frame); err != nil {
			return err
		}
	}
	return nil
}

// WriteSample sends a sample to all telemetry sinks.
func (mw *MultiWriter) WriteSample(sample telemetry.Sample) error {
	for _, s := range mw.sinks {
		if err := s.WriteSample(sample); err != nil {
			return err
		}
	}
	return nil
}
