package viz

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rocketviz/internal/telemetry"
	"rocketviz/internal/visual"
)

func TestFileWriter_WritesJSONL(t *testing.T) {
	dir := t.TempDir()
	framePath := filepath.Join(dir, "frames.jsonl")
	samplePath := filepath.Join(dir, "samples.jsonl")

	fw, err := NewFileWriter(framePath, samplePath)
	if err != nil {
		t.Fatalf("NewFileWriter() returned error: %v", err)
	}

	frame := Frame{
		SessionID:   "session-1",
		Timestamp:   time.Now().UTC(),
		Background:  visual.RGB{R: 80, G: 115, B: 173},
		RotationDeg: -5,
		Sample:      testSample(),
	}
	for i := 0; i < 3; i++ {
		if err := fw.WriteFrame(frame); err != nil {
			t.Fatalf("WriteFrame() returned error: %v", err)
		}
	}
	if err := fw.WriteSample(testSample()); err != nil {
		t.Fatalf("WriteSample() returned error: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	f, err := os.Open(framePath)
	if err != nil {
		t.Fatalf("failed to open frame log: %v", err)
	}
	defer f.Close()

	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var got Frame
		if err := json.Unmarshal(scanner.Bytes(), &got); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", count, err)
		}
		if got.SessionID != "session-1" || got.RotationDeg != -5 {
			t.Errorf("line %d round-trip mismatch: %+v", count, got)
		}
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 frame lines, got %d", count)
	}

	sampleData, err := os.ReadFile(samplePath)
	if err != nil {
		t.Fatalf("failed to read sample log: %v", err)
	}
	var sample telemetry.Sample
	if err := json.Unmarshal(sampleData, &sample); err != nil {
		t.Fatalf("sample log line invalid: %v", err)
	}
	if sample.Altitude != 2500 {
		t.Errorf("sample round-trip mismatch: %+v", sample)
	}
}

func TestFileWriter_SampleLogOptional(t *testing.T) {
	framePath := filepath.Join(t.TempDir(), "frames.jsonl")
	fw, err := NewFileWriter(framePath, "")
	if err != nil {
		t.Fatalf("NewFileWriter() returned error: %v", err)
	}
	defer fw.Close()
	if err := fw.WriteSample(testSample()); err != nil {
		t.Errorf("WriteSample() without sample log should be a no-op, got %v", err)
	}
}
