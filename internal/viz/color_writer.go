// ColorWriter prints human-friendly, colorized frame summaries to STDOUT.
package viz

import (
	"fmt"
	"io"
	"os"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorWriter prints one colorized summary line per frame.
type ColorWriter struct {
	out io.Writer
}

// NewColorWriter creates a ColorWriter writing to os.Stdout.
func NewColorWriter() *ColorWriter {
	return &ColorWriter{out: os.Stdout}
}

// WriteFrame outputs a single frame summary.
func (w *ColorWriter) WriteFrame(frame Frame) error {
	bg := frame.Background
	swatch := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  %s", bg.R, bg.G, bg.B, colorReset)

	_, err := fmt.Fprintf(w.out, "%s[%s]%s %s %salt=%.1fm%s %spitch=%.1f°%s %srot=%.1f°%s %saccel_z=%.2f%s %sexhaust=%d%s %sdust=%d%s %sbatt=%.1f%s %sstate=%d%s\n",
		colorGray, frame.Sample.Timestamp, colorReset,
		swatch,
		colorMagenta, frame.Sample.Altitude, colorReset,
		colorGreen, frame.Sample.Pitch, colorReset,
		colorYellow, frame.RotationDeg, colorReset,
		colorCyan, frame.Sample.AccelerationZ, colorReset,
		colorRed, len(frame.Exhaust), colorReset,
		colorBlue, len(frame.Dust), colorReset,
		colorGreen, frame.Sample.Battery, colorReset,
		colorGray, frame.Sample.State, colorReset,
	)
	return err
}
