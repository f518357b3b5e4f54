// TUIWriter renders frames as a live terminal scene using bubbletea.
package viz

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// frameMsg carries one published frame into the TUI model.
type frameMsg struct{ Frame }

const maxLogLines = 200

// TUIWriter renders frames using a bubbletea TUI.
type TUIWriter struct {
	program    teaProgram
	done       chan struct{}
	sendSignal atomic.Bool
}

// NewTUIWriter starts a bubbletea program and returns a TUIWriter.
// sceneW and sceneH are the viewport pixel dimensions used to map
// particle positions onto terminal cells.
func NewTUIWriter(sceneW, sceneH int) *TUIWriter {
	w := &TUIWriter{done: make(chan struct{})}
	w.sendSignal.Store(true)
	m := newTUIModel(sceneW, sceneH)
	p := tea.NewProgram(m, tea.WithAltScreen())
	w.program = p
	go func() {
		_, _ = p.Run()
		close(w.done)
		if w.sendSignal.Load() {
			if proc, err := os.FindProcess(os.Getpid()); err == nil {
				_ = proc.Signal(os.Interrupt)
			}
		}
	}()
	return w
}

// WriteFrame implements FrameWriter.
func (w *TUIWriter) WriteFrame(frame Frame) error {
	w.program.Send(frameMsg{frame})
	return nil
}

// Close shuts down the TUI program and waits for cleanup.
func (w *TUIWriter) Close() error {
	w.sendSignal.Store(false)
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}

type tuiModel struct {
	sceneW, sceneH int
	width, height  int
	frame          Frame
	haveFrame      bool
	lastSampleTS   string
	logs           []string
	logVP          viewport.Model
	showHelp       bool
}

func newTUIModel(sceneW, sceneH int) tuiModel {
	return tuiModel{
		sceneW: sceneW,
		sceneH: sceneH,
		logVP:  viewport.New(0, 0),
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logVP.Width = msg.Width
		m.logVP.Height = 6
	case frameMsg:
		m.frame = msg.Frame
		m.haveFrame = true
		// One log line per telemetry update, not per frame.
		if msg.Sample.Timestamp != m.lastSampleTS {
			m.lastSampleTS = msg.Sample.Timestamp
			line := fmt.Sprintf("[%s] alt=%.1fm pitch=%.1f° accel=(%.2f,%.2f,%.2f) batt=%.1f state=%d",
				msg.Sample.Timestamp, msg.Sample.Altitude, msg.Sample.Pitch,
				msg.Sample.AccelerationX, msg.Sample.AccelerationY, msg.Sample.AccelerationZ,
				msg.Sample.Battery, msg.Sample.State)
			m.logs = append(m.logs, line)
			if len(m.logs) > maxLogLines {
				m.logs = m.logs[len(m.logs)-maxLogLines:]
			}
			m.logVP.SetContent(wordwrap.String(strings.Join(m.logs, "\n"), max(1, m.logVP.Width)))
			m.logVP.GotoBottom()
		}
	}
	var cmd tea.Cmd
	m.logVP, cmd = m.logVP.Update(msg)
	return m, cmd
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	readoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m tuiModel) View() string {
	if m.width == 0 {
		return "starting..."
	}
	var b strings.Builder

	title := titleStyle.Render("rocketviz")
	if m.haveFrame {
		title += labelStyle.Render("  session " + m.frame.SessionID)
	}
	b.WriteString(title + "\n")

	sceneRows := m.height - 10
	if sceneRows < 4 {
		sceneRows = 4
	}
	b.WriteString(m.renderScene(m.width, sceneRows))
	b.WriteString("\n")
	b.WriteString(m.renderReadout())
	b.WriteString("\n")
	b.WriteString(m.logVP.View())
	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(helpStyle.Render(wordwrap.String(
			"q quit · ? toggle help · scene shows dust (gray) streaming past the rocket and exhaust (orange) trailing it; the sky darkens as altitude climbs", m.width)))
	} else {
		b.WriteString(helpStyle.Render("q quit · ? help"))
	}
	return b.String()
}

// renderScene maps the particle snapshot from viewport pixels onto a
// cols×rows cell grid, dust under exhaust, with the rocket at center.
func (m tuiModel) renderScene(cols, rows int) string {
	bg := lipgloss.Color("#000000")
	if m.haveFrame {
		c := m.frame.Background
		bg = lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	cellStyle := lipgloss.NewStyle().Background(bg)

	type cell struct {
		glyph rune
		color string
	}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{glyph: ' '}
		}
	}

	plot := func(px, py float64, glyph rune, color string) {
		x := int(px / float64(m.sceneW) * float64(cols))
		// Screen y grows downward; telemetry scene y grows upward.
		y := rows - 1 - int(py/float64(m.sceneH)*float64(rows))
		if x < 0 || x >= cols || y < 0 || y >= rows {
			return
		}
		grid[y][x] = cell{glyph: glyph, color: color}
	}

	if m.haveFrame {
		for _, p := range m.frame.Dust {
			plot(p.X, p.Y, particleGlyph(p.Alpha), fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B))
		}
		for _, p := range m.frame.Exhaust {
			plot(p.X, p.Y, particleGlyph(p.Alpha), fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B))
		}
	}
	grid[rows/2][cols/2] = cell{glyph: rocketGlyph(m.frame.RotationDeg), color: "#ffffff"}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		var line strings.Builder
		for x := 0; x < cols; x++ {
			c := grid[y][x]
			if c.glyph == ' ' {
				line.WriteString(cellStyle.Render(" "))
				continue
			}
			line.WriteString(cellStyle.Foreground(lipgloss.Color(c.color)).Render(string(c.glyph)))
		}
		b.WriteString(line.String())
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// particleGlyph picks a glyph by opacity so fading particles thin out.
func particleGlyph(alpha uint8) rune {
	switch {
	case alpha > 170:
		return '●'
	case alpha > 85:
		return '•'
	default:
		return '·'
	}
}

// rocketGlyph leans the rocket marker with the screen rotation angle.
func rocketGlyph(rotationDeg float64) rune {
	switch {
	case rotationDeg < -5:
		return '◥'
	case rotationDeg > 5:
		return '◤'
	default:
		return '▲'
	}
}

func (m tuiModel) renderReadout() string {
	if !m.haveFrame {
		return labelStyle.Render("waiting for telemetry...")
	}
	s := m.frame.Sample
	parts := []string{
		labelStyle.Render("Altitude ") + readoutStyle.Render(fmt.Sprintf("%.1fm", s.Altitude)),
		labelStyle.Render("Pitch ") + readoutStyle.Render(fmt.Sprintf("%.1f°", s.Pitch)),
		labelStyle.Render("Rotation ") + readoutStyle.Render(fmt.Sprintf("%.1f°", m.frame.RotationDeg)),
		labelStyle.Render("Accel ") + readoutStyle.Render(fmt.Sprintf("%.2f m/s²", s.AccelerationZ)),
		labelStyle.Render("Exhaust ") + readoutStyle.Render(fmt.Sprintf("%d", len(m.frame.Exhaust))),
		labelStyle.Render("Dust ") + readoutStyle.Render(fmt.Sprintf("%d", len(m.frame.Dust))),
	}
	return strings.Join(parts, labelStyle.Render("  │  "))
}
