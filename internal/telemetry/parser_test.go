package telemetry

import "testing"

const validLine = "12:00:00.000 100.0 1001.0 14.35 0 0 0 0 0 0 0.1 0.1 15.0 5.0 0 0 4.1 1"

func TestParseLine_Valid(t *testing.T) {
	sample, err := ParseLine(validLine)
	if err != nil {
		t.Fatalf("ParseLine() returned error: %v", err)
	}
	if sample.Timestamp != "12:00:00.000" {
		t.Errorf("unexpected timestamp: %q", sample.Timestamp)
	}
	if sample.Altitude != 100.0 {
		t.Errorf("expected altitude 100.0, got %f", sample.Altitude)
	}
	if sample.Pressure != 1001.0 {
		t.Errorf("expected pressure 1001.0, got %f", sample.Pressure)
	}
	if sample.Temperature != 14.35 {
		t.Errorf("expected temperature 14.35, got %f", sample.Temperature)
	}
	if sample.AccelerationX != 0.1 || sample.AccelerationY != 0.1 || sample.AccelerationZ != 15.0 {
		t.Errorf("unexpected acceleration: %f %f %f", sample.AccelerationX, sample.AccelerationY, sample.AccelerationZ)
	}
	if sample.Pitch != 5.0 {
		t.Errorf("expected pitch 5.0, got %f", sample.Pitch)
	}
	if sample.Battery != 4.1 {
		t.Errorf("expected battery 4.1, got %f", sample.Battery)
	}
	if sample.State != StateAscent {
		t.Errorf("expected state %d, got %d", StateAscent, sample.State)
	}
}

func TestParseLine_ExtraTokensIgnored(t *testing.T) {
	sample, err := ParseLine(validLine + " trailing junk 42")
	if err != nil {
		t.Fatalf("ParseLine() returned error: %v", err)
	}
	if sample.Altitude != 100.0 || sample.State != 1 {
		t.Errorf("extra tokens changed parse result: %+v", sample)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"too few tokens":  "12:00:00.000 100.0 1001.0",
		"17 tokens":       "12:00:00.000 100.0 1001.0 14.35 0 0 0 0 0 0 0.1 0.1 15.0 5.0 0 0 4.1",
		"bad float":       "12:00:00.000 abc 1001.0 14.35 0 0 0 0 0 0 0.1 0.1 15.0 5.0 0 0 4.1 1",
		"bad state":       "12:00:00.000 100.0 1001.0 14.35 0 0 0 0 0 0 0.1 0.1 15.0 5.0 0 0 4.1 x",
		"float for state": "12:00:00.000 100.0 1001.0 14.35 0 0 0 0 0 0 0.1 0.1 15.0 5.0 0 0 4.1 1.5",
	}
	for name, line := range cases {
		if _, err := ParseLine(line); err == nil {
			t.Errorf("%s: expected parse error for %q", name, line)
		}
	}
}
