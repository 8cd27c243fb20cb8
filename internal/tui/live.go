package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/sim"
)

const (
	width           = 60
	height          = 20
	historyCapacity = 600
	trailCapacity   = 400
)

var gainKeys = []string{"Kp", "Ki", "Kd"}

type TickMsg time.Time

// Model contains the simulator, display buffers and UI context.
type Model struct {
	sim      *sim.Simulator
	params   sim.Params
	interval time.Duration

	canvas   *Canvas
	proj     projection
	trail    []flight.Position
	altitude []float64
	thrust   []float64
	last     flight.Frame

	running  bool
	done     bool
	selected int
	showHelp bool
	err      error
}

// NewModel starts s with p. The view advances one tick per dt of wall
// time.
func NewModel(s *sim.Simulator, p sim.Params) (Model, error) {
	if _, err := s.Start(p); err != nil {
		return Model{}, err
	}

	points := append([]flight.Position{p.Start}, p.Waypoints...)
	canvas := NewCanvas(width, height)
	pw, ph := canvas.PixelSize()

	return Model{
		sim:      s,
		params:   p,
		interval: time.Duration(p.Dt * float64(time.Second)),
		canvas:   canvas,
		proj:     newProjection(points, pw, ph),
		trail:    make([]flight.Position, 0, trailCapacity),
		altitude: make([]float64, 0, historyCapacity),
		thrust:   make([]float64, 0, historyCapacity),
		last:     flight.Frame{Position: p.Start, MotorCommands: flight.MotorCommands{1500, 1500, 1500, 1500}},
		running:  true,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.sim.Stop()
			return m, tea.Quit
		case " ":
			if !m.done {
				m.running = !m.running
			}
		case "r":
			m.restart()
		case "tab":
			m.selected = (m.selected + 1) % len(gainKeys)
		case "up", "k":
			m.adjustGain(1.1)
		case "down", "j":
			m.adjustGain(0.9)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	f, err := m.sim.Tick()
	switch {
	case errors.Is(err, flight.ErrStepBudgetExhausted):
		m.running, m.done = false, true
		return
	case err != nil:
		m.running, m.err = false, err
		return
	}

	m.last = f
	m.trail = appendBounded(m.trail, f.Position, trailCapacity)
	m.altitude = appendBounded(m.altitude, f.Position.Alt, historyCapacity)
	m.thrust = appendBounded(m.thrust, f.ControlState.Thrust, historyCapacity)
}

func appendBounded[T any](s []T, v T, limit int) []T {
	s = append(s, v)
	if len(s) > limit {
		s = s[1:]
	}
	return s
}

// restart begins the mission again with the currently tuned gains.
func (m *Model) restart() {
	p := m.params
	if g, ok := m.sim.Gains(); ok {
		p.Gains = g
	}
	if _, err := m.sim.Start(p); err != nil {
		m.err = err
		return
	}
	m.params = p
	m.trail = m.trail[:0]
	m.altitude = m.altitude[:0]
	m.thrust = m.thrust[:0]
	m.last = flight.Frame{Position: p.Start, MotorCommands: flight.MotorCommands{1500, 1500, 1500, 1500}}
	m.running, m.done, m.err = true, false, nil
}

func (m *Model) adjustGain(factor float64) {
	g, ok := m.sim.Gains()
	if !ok {
		return
	}
	key := gainKeys[m.selected]
	val := map[string]float64{"Kp": g.Kp, "Ki": g.Ki, "Kd": g.Kd}[key]

	newVal := val * factor
	if val == 0 && factor > 1 {
		newVal = 0.01
	}
	if err := m.sim.SetGain(key, newVal); err != nil {
		m.err = err
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	x, y := m.proj.point(m.params.Start)
	m.canvas.DrawLine(x-2, y-2, x+2, y+2)
	m.canvas.DrawLine(x-2, y+2, x+2, y-2)

	mission := m.sim.Mission()
	for i, wp := range m.params.Waypoints {
		x, y := m.proj.point(wp)
		r := 2
		if i == mission.Index && !mission.RTL {
			r = 4
		}
		m.canvas.Cross(x, y, r)
	}

	for _, p := range m.trail {
		m.canvas.Set(m.proj.point(p))
	}
	x, y = m.proj.point(m.last.Position)
	m.canvas.DrawLine(x-3, y, x+3, y)
	m.canvas.DrawLine(x, y-1, x, y+1)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("QUADSIM "+m.sim.Handle().ID.String()[:8]) + "\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("ERROR: "+m.err.Error()) + "\n\n")
	case m.done:
		s.WriteString(statusDone.Render("COMPLETE") + "\n\n")
	case m.running:
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	f := m.last
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", f.Time))
	row("Position", fmt.Sprintf("%.6f, %.6f", f.Position.Lat, f.Position.Lon))
	row("Altitude", fmt.Sprintf("%.2f", f.Position.Alt))

	mission := m.sim.Mission()
	switch {
	case m.params.RTL:
		row("Mission", "RTL")
	case len(m.params.Waypoints) == 0:
		row("Mission", "hold")
	default:
		row("Mission", fmt.Sprintf("wp %d/%d", min(mission.Index, len(m.params.Waypoints)), len(m.params.Waypoints)))
	}

	cs := f.ControlState
	row("R/P/Y", fmt.Sprintf("%+.3f %+.3f %+.3f", cs.Roll, cs.Pitch, cs.Yaw))
	row("Thrust", fmt.Sprintf("%.3f", cs.Thrust))

	s.WriteString("\nMOTORS\n")
	for i, pwm := range f.MotorCommands {
		s.WriteString(fmt.Sprintf("  m%d %s %d\n", i+1, pwmBar(pwm, 20), pwm))
	}

	if len(m.altitude) > 1 {
		chart := asciigraph.PlotMany([][]float64{m.altitude, m.thrust},
			asciigraph.Height(4), asciigraph.Width(30),
			asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Yellow),
			asciigraph.Caption("Altitude / Thrust"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nGAINS\n")
	g, ok := m.sim.Gains()
	if !ok {
		g = m.params.Gains
	}
	vals := []float64{g.Kp, g.Ki, g.Kd}
	for i, k := range gainKeys {
		line := fmt.Sprintf("%-4s %.4f", k, vals[i])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Restart Q:Quit\nTab:Gain ↑↓:Tune ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart mission          ║
║  Q        - Quit                     ║
║  Tab      - Cycle gains              ║
║  Up/K     - Increase gain (+10%)     ║
║  Down/J   - Decrease gain (-10%)     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run opens the live view full-screen until the user quits.
func Run(s *sim.Simulator, p sim.Params) error {
	m, err := NewModel(s, p)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
