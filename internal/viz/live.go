package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mkarev/trajlab/internal/physics"
)

const (
	defaultCanvasWidth  = 72
	defaultCanvasHeight = 22
	statsPanelWidth     = 46
)

type TickMsg time.Time

// Notifier receives flight and grading events, typically for sound cues.
type Notifier interface {
	Launch()
	Impact()
	Correct()
	Wrong()
}

// Model plays back one solved flight: a frame tick advances the
// timeline, the scene repaints, and the loop stops rescheduling once
// the playback duration has elapsed. Restarting anchors a new timeline.
type Model struct {
	sol      *physics.Solution
	scene    *Scene
	timeline *Timeline

	// Cues, when set, is notified at launch and impact.
	Cues Notifier

	masked   bool
	idx      int
	progress float64
	landed   bool

	width, height int
}

func NewModel(sol *physics.Solution, sprite *Sprite, masked bool) Model {
	n := 0
	if sol != nil {
		n = len(sol.Trajectory)
	}
	return Model{
		sol:      sol,
		scene:    NewScene(sol, sprite, defaultCanvasWidth, defaultCanvasHeight, masked),
		timeline: NewTimeline(n),
		masked:   masked,
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	// An empty trajectory never starts the animation loop.
	if m.sol == nil || len(m.sol.Trajectory) == 0 {
		return nil
	}
	return frameTick()
}

// Update handles input, resize, and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m.restart()
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		return m.tick(time.Time(msg))
	}
	return m, nil
}

// resize recomputes the canvas from the terminal size. A zero report
// keeps the previous dimensions, so stray resize events are no-ops.
func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width, m.height = w, h

	cw := w - statsPanelWidth - 6
	ch := h - 7
	if cw < 20 {
		cw = defaultCanvasWidth
	}
	if ch < 8 {
		ch = defaultCanvasHeight
	}
	m.scene.Resize(cw, ch)
	m.scene.Render(m.idx)
}

func (m Model) tick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.timeline.Started() {
		m.timeline.Start(now)
		if m.Cues != nil {
			m.Cues.Launch()
		}
	}

	m.progress = m.timeline.Progress(now)
	m.idx = m.timeline.Index(now)
	m.scene.Render(m.idx)

	if m.timeline.Done(now) {
		if !m.landed && m.Cues != nil {
			m.Cues.Impact()
		}
		m.landed = true
		return m, nil
	}
	return m, frameTick()
}

// restart begins a fresh playback with a new anchor timestamp.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.sol == nil || len(m.sol.Trajectory) == 0 {
		return m, nil
	}
	m.timeline = NewTimeline(len(m.sol.Trajectory))
	m.idx = 0
	m.progress = 0
	m.landed = false
	return m, frameTick()
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	canvasView := canvasStyle.Foreground(CurrentTheme.Primary).Render(m.scene.Canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(CurrentTheme.Accent).Render("PROJECTILE FLIGHT") + "\n")

	status := statusFlying.Render("FLYING")
	if m.sol == nil || len(m.sol.Trajectory) == 0 {
		status = statusError.Render("NO TRAJECTORY")
	} else if m.landed {
		status = statusLanded.Render("LANDED")
	}
	s.WriteString(status)
	if m.masked {
		s.WriteString("  " + maskedBadge.Render("PRACTICE"))
	}
	s.WriteString("\n\n")

	s.WriteString(ProgressBar(m.progress, 28) + "\n\n")

	if m.sol != nil && len(m.sol.Trajectory) > 0 {
		s.WriteString(m.statsView())
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nR:Replay T:Theme Q:Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) statsView() string {
	var s strings.Builder

	if m.idx < len(m.sol.Trajectory) && m.idx >= 1 {
		heights := make([]float64, 0, m.idx+1)
		for _, p := range m.sol.Trajectory[:m.idx+1] {
			heights = append(heights, p.Y)
		}
		chart := asciigraph.Plot(heights,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Height"))
		s.WriteString(graphStyle.Foreground(CurrentTheme.Secondary).Render(chart) + "\n\n")
	}

	cur := m.sol.Trajectory[m.idx]
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f s", cur.Time)) + "\n")
	s.WriteString(labelStyle.Render("Launch") + valueStyle.Render(fmt.Sprintf("%.1f m/s @ %.0f°", m.sol.Velocity, m.sol.Angle)) + "\n")
	s.WriteString(labelStyle.Render("Height") + valueStyle.Render(fmt.Sprintf("%.1f m", m.sol.InitialHeight)) + "\n")

	s.WriteString("\nRESULTS\n")
	if m.masked {
		s.WriteString(hintStyle.Render("hidden until you answer") + "\n")
		return s.String()
	}
	s.WriteString(labelStyle.Render("Max H") + valueStyle.Render(fmt.Sprintf("%.2f m", m.sol.MaxHeight)) + "\n")
	s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("%.2f m", m.sol.Range)) + "\n")
	s.WriteString(labelStyle.Render("Total T") + valueStyle.Render(fmt.Sprintf("%.2f s", m.sol.TotalTime)) + "\n")
	s.WriteString(labelStyle.Render("Impact V") + valueStyle.Render(fmt.Sprintf("%.2f m/s", m.sol.ImpactVelocity)) + "\n")
	return s.String()
}
