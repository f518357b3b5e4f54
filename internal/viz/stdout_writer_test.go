package viz

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStdoutWriter_FrameJSON(t *testing.T) {
	var buf bytes.Buffer
	w := &StdoutWriter{out: &buf}

	frame := Frame{SessionID: "s1", RotationDeg: -12.5, Sample: testSample()}
	if err := w.WriteFrame(frame); err != nil {
		t.Fatalf("WriteFrame() returned error: %v", err)
	}

	var got Frame
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.SessionID != "s1" || got.RotationDeg != -12.5 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Sample.Altitude != 2500 {
		t.Errorf("sample not embedded: %+v", got.Sample)
	}
}

func TestStdoutWriter_SampleJSON(t *testing.T) {
	var buf bytes.Buffer
	w := &StdoutWriter{out: &buf}
	if err := w.WriteSample(testSample()); err != nil {
		t.Fatalf("WriteSample() returned error: %v", err)
	}
	if !strings.Contains(buf.String(), `"altitude":2500`) {
		t.Errorf("unexpected sample output: %s", buf.String())
	}
}

func TestColorWriter_SummaryLine(t *testing.T) {
	var buf bytes.Buffer
	w := &ColorWriter{out: &buf}

	frame := Frame{
		RotationDeg: -5,
		Sample:      testSample(),
	}
	if err := w.WriteFrame(frame); err != nil {
		t.Fatalf("WriteFrame() returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"alt=2500.0m", "pitch=5.0°", "rot=-5.0°", "exhaust=0", "dust=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q: %s", want, out)
		}
	}
}
