// Package viz renders the sandbox in the terminal: a braille-canvas
// scene view driven by bubbletea, with a kinetic-energy sparkline.
// It is a presentation layer only — it consumes post-step state and
// decides how many physics ticks to run per frame.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mkarpis/partbox/internal/physics"
	"github.com/mkarpis/partbox/internal/scene"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	maxTimeScale    = 20
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model holds the live scene, playback settings, and canvas buffers.
type Model struct {
	scene     *scene.Scene
	initial   *scene.Scene
	sceneName string
	dt        float64
	timeScale int
	t         float64

	canvas *Canvas
	zoom   float64

	running       bool
	warnings      int
	bondsBroken   int
	energyHistory []float64
}

// NewModel prepares a live view of the scene. The scene is cloned for
// reset; the passed-in instance is the one stepped and drawn.
func NewModel(s *scene.Scene, sceneName string, dt float64, timeScale int) Model {
	return Model{
		scene:         s,
		initial:       s.Clone(),
		sceneName:     sceneName,
		dt:            dt,
		timeScale:     timeScale,
		canvas:        NewCanvas(width, height),
		zoom:          4.5,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.zoom *= 1.1
		case "-", "_":
			m.zoom /= 1.1
		case "up", "k":
			if m.timeScale < maxTimeScale {
				m.timeScale++
			}
		case "down", "j":
			// Time scale 0 freezes simulated time without pausing the UI.
			if m.timeScale > 0 {
				m.timeScale--
			}
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step runs the physics pipeline timeScale times with the same dt.
func (m *Model) step() {
	for i := 0; i < m.timeScale; i++ {
		rep := m.scene.Step(m.dt)
		m.t += m.dt
		if !rep.Converged {
			m.warnings++
		}
		m.bondsBroken += rep.BondsBroken
	}

	m.energyHistory = append(m.energyHistory, m.scene.KineticEnergy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) reset() {
	m.scene.Particles = append(m.scene.Particles[:0], m.initial.Particles...)
	m.scene.Walls = append(m.scene.Walls[:0], m.initial.Walls...)
	for k := range m.scene.Bonds {
		delete(m.scene.Bonds, k)
	}
	for k, v := range m.initial.Bonds {
		m.scene.Bonds[k] = v
	}
	m.t = 0
	m.warnings = 0
	m.bondsBroken = 0
	m.energyHistory = m.energyHistory[:0]
}

// project maps world coordinates to sub-pixel canvas coordinates,
// world origin at canvas center, y up.
func (m *Model) project(p physics.Vec2) (int, int) {
	cw, ch := width*2, height*4
	x := int(p.X*m.zoom) + cw/2
	y := ch/2 - int(p.Y*m.zoom)
	return x, y
}

func (m *Model) draw() {
	m.canvas.Clear()

	for i := range m.scene.Walls {
		w := &m.scene.Walls[i]
		x0, y0 := m.project(w.Pos.Sub(w.Size.Scale(0.5)))
		x1, y1 := m.project(w.Pos.Add(w.Size.Scale(0.5)))
		m.canvas.DrawRect(x0, y0, x1, y1)
	}

	for key := range m.scene.Bonds {
		a := m.scene.Particles[key.A].Pos
		b := m.scene.Particles[key.B].Pos
		x0, y0 := m.project(a)
		x1, y1 := m.project(b)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}

	for i := range m.scene.Particles {
		p := &m.scene.Particles[i]
		x, y := m.project(p.Pos)
		m.canvas.FillCircle(x, y, int(p.Radius()*m.zoom))
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sceneName)) + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.3f", m.scene.KineticEnergy())) + "\n")
	p := m.scene.Momentum()
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", len(m.scene.Particles))) + "\n")
	s.WriteString(labelStyle.Render("Bonds") + valueStyle.Render(fmt.Sprintf("%d (%d broken)", len(m.scene.Bonds), m.bondsBroken)) + "\n")
	s.WriteString(labelStyle.Render("Time Scale") + valueStyle.Render(fmt.Sprintf("%dx", m.timeScale)) + "\n")
	if m.warnings > 0 {
		s.WriteString(labelStyle.Render("Warnings") + warningStyle.Render(fmt.Sprintf("%d solver cap hits", m.warnings)) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\n+/-:Zoom ↑↓:Time Scale"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the live view and blocks until it exits.
func Run(s *scene.Scene, sceneName string, dt float64, timeScale int) error {
	p := tea.NewProgram(NewModel(s, sceneName, dt, timeScale))
	_, err := p.Run()
	return err
}
