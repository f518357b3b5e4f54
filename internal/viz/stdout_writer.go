// Writer implementation printing frames to STDOUT
package viz

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rocketviz/internal/telemetry"
)

// StdoutWriter prints one JSON object per frame, suitable for piping into
// other tools or running headless.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a StdoutWriter writing to os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout}
}

// WriteFrame outputs a single frame.
func (w *StdoutWriter) WriteFrame(frame Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}

// WriteSample outputs a raw telemetry sample, so the same writer can serve
// as a telemetry sink in print-only mode.
func (w *StdoutWriter) WriteSample(sample telemetry.Sample) error {
	data, err := json.Marshal(sample)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}
