package viz

import (
	"encoding/json"
	"os"

	"rocketviz/internal/telemetry"
)

// FileWriter writes frames and raw telemetry samples to JSONL files.
type FileWriter struct {
	frameFile  *os.File
	sampleFile *os.File
	frameEnc   *json.Encoder
	sampleEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. samplePath may be empty to skip the
// raw telemetry log.
func NewFileWriter(framePath, samplePath string) (*FileWriter, error) {
	ff, err := os.Create(framePath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{frameFile: ff, frameEnc: json.NewEncoder(ff)}
	if samplePath != "" {
		sf, err := os.Create(samplePath)
		if err != nil {
			ff.Close()
			return nil, err
		}
		fw.sampleFile = sf
		fw.sampleEnc = json.NewEncoder(sf)
	}
	return fw, nil
}

// WriteFrame appends one frame to the frame log.
func (w *FileWriter) WriteFrame(frame Frame) error {
	return w.frameEnc.Encode(frame)
}

// WriteSample appends one sample to the telemetry log, if configured.
func (w *FileWriter) WriteSample(sample telemetry.Sample) error {
	if w.sampleEnc == nil {
		return nil
	}
	return w.sampleEnc.Encode(sample)
}

// Close closes the underlying files.
func (w *FileWriter) Close() error {
	err := w.frameFile.Close()
	if w.sampleFile != nil {
		if cerr := w.sampleFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
