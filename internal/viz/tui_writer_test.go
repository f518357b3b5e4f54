package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// mockProgram records messages instead of driving a real terminal.
type mockProgram struct {
	msgs []tea.Msg
}

func (p *mockProgram) Send(msg tea.Msg) { p.msgs = append(p.msgs, msg) }

func TestTUIWriter_SendsFrames(t *testing.T) {
	p := &mockProgram{}
	w := &TUIWriter{program: p}

	frame := Frame{SessionID: "s1", Sample: testSample()}
	if err := w.WriteFrame(frame); err != nil {
		t.Fatalf("WriteFrame() returned error: %v", err)
	}
	if len(p.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(p.msgs))
	}
	fm, ok := p.msgs[0].(frameMsg)
	if !ok {
		t.Fatalf("expected frameMsg, got %T", p.msgs[0])
	}
	if fm.SessionID != "s1" {
		t.Errorf("frame not forwarded intact: %+v", fm.Frame)
	}
}

func drive(t *testing.T, m tuiModel, msgs ...tea.Msg) tuiModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(tuiModel)
	}
	return m
}

func TestTUIModel_ReadoutShowsSample(t *testing.T) {
	m := newTUIModel(600, 600)
	m = drive(t, m,
		tea.WindowSizeMsg{Width: 80, Height: 24},
		frameMsg{Frame{SessionID: "s1", RotationDeg: -5, Sample: testSample()}},
	)

	view := m.View()
	for _, want := range []string{"2500.0m", "5.0°", "-5.0°", "15.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTUIModel_LogsOncePerTelemetryUpdate(t *testing.T) {
	m := newTUIModel(600, 600)
	sample := testSample()
	frame := Frame{Sample: sample}

	// Three frames on one telemetry update: one log line.
	m = drive(t, m,
		tea.WindowSizeMsg{Width: 80, Height: 24},
		frameMsg{frame}, frameMsg{frame}, frameMsg{frame},
	)
	if len(m.logs) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(m.logs))
	}

	sample.Timestamp = "12:00:00.200"
	m = drive(t, m, frameMsg{Frame{Sample: sample}})
	if len(m.logs) != 2 {
		t.Errorf("expected 2 log lines after new telemetry, got %d", len(m.logs))
	}
}

func TestTUIModel_QuitKey(t *testing.T) {
	m := newTUIModel(600, 600)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestParticleGlyph_ThinsWithFade(t *testing.T) {
	if particleGlyph(255) != '●' || particleGlyph(120) != '•' || particleGlyph(10) != '·' {
		t.Error("glyph ramp does not follow alpha")
	}
}
