package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileSource_ReadsNewestLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.log")
	content := "12:00:00.000 50.0 1007.0 14.68 0 0 0 0 0 0 0 0 12.0 1.0 0 0 4.2 1\n" +
		validLine + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write log file: %v", err)
	}

	src := NewFileSource(path, nil)
	sample := src.Poll()
	if sample.Altitude != 100.0 || sample.Pitch != 5.0 {
		t.Errorf("expected newest line to win, got %+v", sample)
	}
}

func TestFileSource_RetainsSampleOnBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.log")
	if err := os.WriteFile(path, []byte(validLine+"\n"), 0644); err != nil {
		t.Fatalf("failed to write log file: %v", err)
	}
	src := NewFileSource(path, nil)
	first := src.Poll()
	if first.Altitude != 100.0 {
		t.Fatalf("expected valid first poll, got %+v", first)
	}

	// Corrupt tail: the prior sample must survive untouched.
	if err := os.WriteFile(path, []byte("garbage line\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite log file: %v", err)
	}
	second := src.Poll()
	if second != first {
		t.Errorf("bad line overwrote sample: %+v", second)
	}
}

func TestFileSource_RetainsSampleOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.log")
	src := NewFileSource(path, nil)
	if sample := src.Poll(); sample != (Sample{}) {
		t.Errorf("expected zero sample before file exists, got %+v", sample)
	}

	if err := os.WriteFile(path, []byte(validLine+"\n"), 0644); err != nil {
		t.Fatalf("failed to write log file: %v", err)
	}
	first := src.Poll()

	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove log file: %v", err)
	}
	if sample := src.Poll(); sample != first {
		t.Errorf("missing file overwrote sample: %+v", sample)
	}
}

func TestFileSource_SkipsTrailingBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.log")
	if err := os.WriteFile(path, []byte(validLine+"\n\n  \n"), 0644); err != nil {
		t.Fatalf("failed to write log file: %v", err)
	}
	src := NewFileSource(path, nil)
	if sample := src.Poll(); sample.Altitude != 100.0 {
		t.Errorf("blank tail lines hid the newest sample: %+v", sample)
	}
}

func TestSyntheticSource_AscentProfile(t *testing.T) {
	src := NewSyntheticSource(1, nil)

	// Drive the generator clock explicitly so the pitch phase is known.
	fake := src.start
	src.now = func() time.Time { return fake }

	var prevAlt float64
	for i := 0; i < 50; i++ {
		fake = fake.Add(200 * time.Millisecond)
		sample := src.Poll()

		if sample.Altitude <= prevAlt {
			t.Fatalf("poll %d: altitude not strictly increasing: %f after %f", i, sample.Altitude, prevAlt)
		}
		prevAlt = sample.Altitude

		if sample.Pitch < -synthPitchAmpDeg || sample.Pitch > synthPitchAmpDeg {
			t.Errorf("poll %d: pitch %f outside ±%.0f", i, sample.Pitch, synthPitchAmpDeg)
		}
		if sample.AccelerationZ < synthGravity+5 || sample.AccelerationZ > synthGravity+15 {
			t.Errorf("poll %d: accel_z %f outside thrust bounds", i, sample.AccelerationZ)
		}
		if sample.AccelerationX < -0.5 || sample.AccelerationX > 0.5 {
			t.Errorf("poll %d: accel_x %f outside lateral bounds", i, sample.AccelerationX)
		}
		if sample.State != StateAscent {
			t.Errorf("poll %d: expected ascent state, got %d", i, sample.State)
		}
	}
}

func TestSyntheticSource_DerivedAtmosphere(t *testing.T) {
	src := NewSyntheticSource(7, nil)
	sample := src.Poll()

	wantPressure := synthSeaLevelHPa - sample.Altitude*synthPressureDrop
	if diff := sample.Pressure - wantPressure; diff > 0.01 || diff < -0.01 {
		t.Errorf("pressure %f does not track altitude (want %f)", sample.Pressure, wantPressure)
	}
	wantTemp := synthSeaLevelTempC - sample.Altitude*synthLapseRate
	if diff := sample.Temperature - wantTemp; diff > 0.01 || diff < -0.01 {
		t.Errorf("temperature %f does not track altitude (want %f)", sample.Temperature, wantTemp)
	}
}

func TestSyntheticSource_Deterministic(t *testing.T) {
	a := NewSyntheticSource(42, nil)
	b := NewSyntheticSource(42, nil)
	start := time.Now()
	a.start, b.start = start, start
	fixed := start.Add(time.Second)
	a.now = func() time.Time { return fixed }
	b.now = func() time.Time { return fixed }

	if la, lb := a.GenerateLine(), b.GenerateLine(); la != lb {
		t.Errorf("same seed produced different lines:\n%s\n%s", la, lb)
	}
}
