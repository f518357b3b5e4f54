// Telemetry sources: log-file tailing and the synthetic ascent generator
package telemetry

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Source produces the freshest available telemetry sample on each poll.
// A poll never fails: when no new valid sample can be obtained, the
// previously returned sample comes back unchanged.
type Source interface {
	Poll() Sample
}

// FileSource polls the newest complete line of a telemetry log file.
type FileSource struct {
	path    string
	current Sample
	log     *slog.Logger
}

// NewFileSource creates a source reading from the log file at path.
// The file does not need to exist yet; polls before it appears return
// the zero sample.
func NewFileSource(path string, log *slog.Logger) *FileSource {
	if log == nil {
		log = slog.Default()
	}
	return &FileSource{path: path, log: log}
}

// Poll reads the last complete line of the log file and parses it.
// I/O and parse failures are logged and swallowed; the retained sample
// is returned so a bad tick never interrupts the visualization.
func (s *FileSource) Poll() Sample {
	line, err := lastLine(s.path)
	if err != nil {
		s.log.Warn("telemetry log read failed", "path", s.path, "error", err)
		return s.current
	}
	if line == "" {
		return s.current
	}
	sample, err := ParseLine(line)
	if err != nil {
		s.log.Warn("telemetry line rejected", "error", err)
		return s.current
	}
	s.current = sample
	return s.current
}

// lastLine returns the newest complete line of the file, or "" when the
// file is empty. The whole file is read on every call; flight logs stay
// small enough that seeking from the tail is not worth the complexity.
func lastLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i], nil
		}
	}
	return "", nil
}

// Synthetic generator constants: a gentle powered ascent with an
// oscillating pitch, so the visualization is demoable without hardware.
const (
	synthClimbPerPoll  = 10.0   // meters gained per poll
	synthPitchAmpDeg   = 15.0   // pitch oscillation amplitude
	synthPitchRateRad  = 0.5    // pitch oscillation angular rate, rad/s
	synthSeaLevelHPa   = 1013.25
	synthPressureDrop  = 0.12   // hPa lost per meter
	synthSeaLevelTempC = 15.0
	synthLapseRate     = 0.0065 // °C lost per meter
	synthGravity       = 9.81
)

// SyntheticSource generates a deterministic-shape ascent profile as a
// function of wall-clock time since creation. Each poll is formatted as a
// log line and run through ParseLine, so both source kinds exercise the
// same parsing path.
type SyntheticSource struct {
	start    time.Time
	altitude float64
	current  Sample
	rng      *rand.Rand
	log      *slog.Logger
	now      func() time.Time
}

// NewSyntheticSource creates a generator seeded for reproducible jitter.
func NewSyntheticSource(seed int64, log *slog.Logger) *SyntheticSource {
	if log == nil {
		log = slog.Default()
	}
	return &SyntheticSource{
		start: time.Now(),
		rng:   rand.New(rand.NewSource(seed)),
		log:   log,
		now:   time.Now,
	}
}

// Poll advances the ascent profile by one step and returns the new sample.
func (s *SyntheticSource) Poll() Sample {
	sample, err := ParseLine(s.GenerateLine())
	if err != nil {
		// Only reachable if the line format and parser drift apart.
		s.log.Error("synthetic line rejected", "error", err)
		return s.current
	}
	s.current = sample
	return s.current
}

// GenerateLine produces one 18-token telemetry log line for the current
// instant. It is exported so the generate subcommand can write demo logs
// consumable by a FileSource.
func (s *SyntheticSource) GenerateLine() string {
	now := s.now()
	elapsed := now.Sub(s.start).Seconds()

	s.altitude += synthClimbPerPoll
	pitch := math.Sin(elapsed*synthPitchRateRad) * synthPitchAmpDeg

	pressure := synthSeaLevelHPa - s.altitude*synthPressureDrop
	temperature := synthSeaLevelTempC - s.altitude*synthLapseRate

	accelZ := synthGravity + 5 + s.rng.Float64()*10
	accelX := s.rng.Float64() - 0.5
	accelY := s.rng.Float64() - 0.5

	ts := fmt.Sprintf("%s.%03d", now.Format("15:04:05"), now.Nanosecond()/1e6)

	return fmt.Sprintf("%s %.3f %.2f %.2f 0 0 0 0 0 0 %.6f %.6f %.5f %.5f 0 0 0 %d",
		ts, s.altitude, pressure, temperature, accelX, accelY, accelZ, pitch, StateAscent)
}
