package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarev/trajlab/internal/game"
	"github.com/mkarev/trajlab/internal/physics"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	stateMenu = iota
	stateConfig
	stateSim
	statePractice
	stateVictory
)

var menuEntries = []struct {
	name, info string
}{
	{"free flight", "configure a launch and watch it"},
	{"practice", "solve randomized flights level by level"},
	{"reset progress", "back to level one"},
	{"quit", "leave the lab"},
}

// Options wires the interactive app to its collaborators. OnLevelChange
// fires whenever practice progress moves so the caller can persist it.
// StartInPractice skips the menu and opens on the active problem.
type Options struct {
	Session         *game.Session
	Sprite          *Sprite
	Cues            Notifier
	Launch          physics.Launch
	OnLevelChange   func(level int)
	StartInPractice bool
}

// enterPracticeMsg is self-sent from Init when the app should open
// directly on the practice screen.
type enterPracticeMsg struct{}

type model struct {
	state, cursor int
	width, height int

	// free flight configuration
	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string
	configErr   string

	opts Options
	live Model

	// practice
	session      *game.Session
	problem      *game.Problem
	practiceLive Model
	answers      []string
	qCursor      int
	qEditing     bool
	verdicts     []game.Verdict
	graded       bool
	advanced     bool
	practiceErr  string
}

func NewInteractiveApp(opts Options) *model {
	l := opts.Launch
	if l.Velocity == 0 {
		l = *physics.NewLaunch()
	}
	session := opts.Session
	if session == nil {
		session = game.NewSession(1, 0)
	}
	return &model{
		state: stateMenu,
		params: map[string]float64{
			"velocity": l.Velocity,
			"angle":    l.Angle,
			"height":   l.InitialHeight,
		},
		paramNames: []string{"velocity", "angle", "height"},
		opts:       opts,
		session:    session,
		width:      80, height: 24,
	}
}

func (m model) Init() tea.Cmd {
	if m.opts.StartInPractice {
		return func() tea.Msg { return enterPracticeMsg{} }
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case enterPracticeMsg:
		if m.session.Won() {
			m.state = stateVictory
			return m, nil
		}
		cmd, err := m.loadPractice()
		if err != nil {
			m.practiceErr = err.Error()
			return m, nil
		}
		m.state = statePractice
		return m, cmd
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		switch m.state {
		case stateSim:
			newLive, cmd := m.live.Update(msg)
			m.live = newLive.(Model)
			return m, cmd
		case statePractice:
			newLive, cmd := m.practiceLive.Update(msg)
			m.practiceLive = newLive.(Model)
			return m, cmd
		}
		return m, nil
	default:
		switch m.state {
		case stateSim:
			newLive, cmd := m.live.Update(msg)
			m.live = newLive.(Model)
			return m, cmd
		case statePractice:
			newLive, cmd := m.practiceLive.Update(msg)
			m.practiceLive = newLive.(Model)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		if msg.String() == "esc" {
			m.state = stateMenu
			return m, nil
		}
		newLive, cmd := m.live.Update(msg)
		m.live = newLive.(Model)
		return m, cmd
	case statePractice:
		return m.practiceKey(msg)
	case stateVictory:
		return m.victoryKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "enter", " ":
		switch m.cursor {
		case 0:
			m.state, m.paramCursor, m.configErr = stateConfig, 0, ""
		case 1:
			if m.session.Won() {
				m.state = stateVictory
				return m, nil
			}
			cmd, err := m.loadPractice()
			if err != nil {
				m.practiceErr = err.Error()
				return m, nil
			}
			m.state = statePractice
			return m, cmd
		case 2:
			m.session.Reset()
			m.notifyLevel()
		case 3:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing, m.editBuf = false, ""
		case "escape", "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "escape", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, fmt.Sprintf("%.1f", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		m.params[m.paramNames[m.paramCursor]] -= 1
	case "right", "l":
		m.params[m.paramNames[m.paramCursor]] += 1
	case "s":
		return m.startFlight()
	}
	return m, nil
}

// startFlight solves the configured launch and switches to playback.
// A bad parameter keeps the user in the form with the error shown.
func (m model) startFlight() (model, tea.Cmd) {
	l := physics.Launch{
		Velocity:      m.params["velocity"],
		Angle:         m.params["angle"],
		InitialHeight: m.params["height"],
	}
	sol, err := l.Solve()
	if err != nil {
		m.configErr = err.Error()
		return m, nil
	}

	m.configErr = ""
	m.live = NewModel(sol, m.opts.Sprite, false)
	m.live.Cues = m.opts.Cues
	m.live.resize(m.width, m.height)
	m.state = stateSim
	return m, m.live.Init()
}

// loadPractice builds the masked playback for the session's active
// problem and clears the answer sheet.
func (m *model) loadPractice() (tea.Cmd, error) {
	p, err := m.session.Problem()
	if err != nil {
		return nil, err
	}
	if p == nil {
		m.state = stateVictory
		return nil, nil
	}

	m.problem = p
	m.practiceLive = NewModel(p.Solution, m.opts.Sprite, true)
	m.practiceLive.Cues = m.opts.Cues
	m.practiceLive.resize(m.width, m.height)
	m.answers = make([]string, len(p.Questions))
	m.qCursor, m.qEditing = 0, false
	m.verdicts, m.graded, m.advanced = nil, false, false
	m.practiceErr = ""
	return m.practiceLive.Init(), nil
}

func (m model) practiceKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.qEditing {
		switch msg.String() {
		case "enter", "escape", "esc":
			m.qEditing = false
		case "backspace":
			if len(m.answers[m.qCursor]) > 0 {
				m.answers[m.qCursor] = m.answers[m.qCursor][:len(m.answers[m.qCursor])-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '-' {
					m.answers[m.qCursor] += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.qCursor > 0 {
			m.qCursor--
		}
	case "down", "j":
		if m.qCursor < len(m.answers)-1 {
			m.qCursor++
		}
	case "enter", " ":
		if m.advanced {
			cmd, err := m.loadPractice()
			if err != nil {
				m.practiceErr = err.Error()
				return m, nil
			}
			return m, cmd
		}
		m.qEditing = true
	case "s":
		return m.submitAnswers()
	case "n":
		m.session.Regenerate()
		cmd, err := m.loadPractice()
		if err != nil {
			m.practiceErr = err.Error()
			return m, nil
		}
		return m, cmd
	case "b":
		m.session.StepBack()
		m.notifyLevel()
		cmd, err := m.loadPractice()
		if err != nil {
			m.practiceErr = err.Error()
			return m, nil
		}
		return m, cmd
	case "r", "t":
		newLive, cmd := m.practiceLive.Update(msg)
		m.practiceLive = newLive.(Model)
		return m, cmd
	}
	return m, nil
}

func (m model) submitAnswers() (model, tea.Cmd) {
	if m.problem == nil || m.advanced {
		return m, nil
	}

	answers := make(map[game.QuestionType]int)
	for i, q := range m.problem.Questions {
		if v, err := strconv.Atoi(strings.TrimSpace(m.answers[i])); err == nil {
			answers[q.Type] = v
		}
	}

	verdicts, allCorrect, err := m.session.Submit(answers)
	if err != nil {
		m.practiceErr = err.Error()
		return m, nil
	}
	m.verdicts, m.graded = verdicts, true

	if allCorrect {
		m.advanced = true
		m.notifyLevel()
		if m.opts.Cues != nil {
			m.opts.Cues.Correct()
		}
	} else if m.opts.Cues != nil {
		m.opts.Cues.Wrong()
	}
	return m, nil
}

func (m model) victoryKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.session.Reset()
		m.notifyLevel()
		cmd, err := m.loadPractice()
		if err != nil {
			m.practiceErr = err.Error()
			return m, nil
		}
		m.state = statePractice
		return m, cmd
	case "escape", "esc", "enter":
		m.state = stateMenu
	}
	return m, nil
}

func (m *model) notifyLevel() {
	if m.opts.OnLevelChange != nil {
		m.opts.OnLevelChange(m.session.Level())
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.live.View() + "\n" + dim.Render("  esc back to menu")
	case statePractice:
		return m.viewPractice()
	case stateVictory:
		return m.viewVictory()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + cyan.Bold(true).Render("TRAJLAB") + "\n")
	b.WriteString("    " + dim.Render("projectile motion teaching lab") + "\n")
	b.WriteString("    " + dim.Render(fmt.Sprintf("practice level %d", m.session.Level())) + "\n")
	b.WriteString("    " + dimmer.Render("─────────────────────────") + "\n\n")
	for i, e := range menuEntries {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				cyan.Bold(true).Render("▸"),
				white.Bold(true).Render(fmt.Sprintf("%-16s", e.name)),
				accent.Render(e.info)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				dim.Render(fmt.Sprintf("%-16s", e.name)),
				dimmer.Render(e.info)))
		}
	}
	if m.practiceErr != "" {
		b.WriteString("\n    " + statusError.Render(m.practiceErr) + "\n")
	}
	b.WriteString("\n    " + cyan.Render("j/k") + dim.Render(" navigate  ") +
		cyan.Render("enter") + dim.Render(" select  ") +
		cyan.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + cyan.Bold(true).Render("FREE FLIGHT") + "\n")
	b.WriteString("    " + dim.Render("velocity m/s, angle degrees, height m") + "\n")
	b.WriteString("    " + dimmer.Render("─────────────────────────") + "\n\n")
	for i, name := range m.paramNames {
		val := m.params[name]
		valStr := fmt.Sprintf("%8.1f", val)
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			styled := accent.Bold(true).Render(valStr)
			if m.editing {
				styled = activeFieldStyle.Render(valStr)
			}
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				cyan.Bold(true).Render("▸"),
				white.Bold(true).Render(fmt.Sprintf("%-10s", name)),
				styled))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				dim.Render(fmt.Sprintf("%-10s", name)),
				dimmer.Render(valStr)))
		}
	}
	if m.configErr != "" {
		b.WriteString("\n    " + statusError.Render(m.configErr) + "\n")
	}
	b.WriteString("\n    " + cyan.Render("j/k") + dim.Render(" select  ") +
		cyan.Render("h/l") + dim.Render(" adjust  ") +
		cyan.Render("enter") + dim.Render(" edit  ") +
		cyan.Render("s") + dim.Render(" launch  ") +
		cyan.Render("esc") + dim.Render(" back") + "\n")
	return b.String()
}

func (m model) viewPractice() string {
	if m.problem == nil {
		return "\n    " + statusError.Render("no problem loaded") + "\n"
	}

	var b strings.Builder
	lv, _ := game.LevelAt(m.problem.Level)
	b.WriteString("  " + cyan.Bold(true).Render(fmt.Sprintf("PRACTICE  LEVEL %d", m.problem.Level)) +
		"  " + dim.Render(lv.Title) + "\n")
	b.WriteString("  " + white.Render(fmt.Sprintf("Given: v0 = %.0f m/s, angle = %.0f°, h0 = %.0f m",
		m.problem.Launch.Velocity, m.problem.Launch.Angle, m.problem.Launch.InitialHeight)) + "\n")

	b.WriteString(m.practiceLive.View() + "\n")
	b.WriteString("  " + Separator(56) + "\n")

	for i, q := range m.problem.Questions {
		ans := m.answers[i]
		if m.qEditing && i == m.qCursor {
			ans += "_"
		}
		line := fmt.Sprintf("%-34s [%s]: %s", q.Text, q.Unit, ans)
		if i == m.qCursor {
			b.WriteString("  " + cyan.Bold(true).Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("    " + dim.Render(line) + "\n")
		}
	}

	if m.graded {
		b.WriteString("\n")
		for _, v := range m.verdicts {
			if v.Correct {
				b.WriteString("  " + correctStyle.Render("✓ "+v.Question.Text+": "+v.Message) + "\n")
			} else {
				b.WriteString("  " + wrongStyle.Render("✗ "+v.Question.Text+": "+v.Message) + "\n")
				b.WriteString("    " + hintStyle.Render(v.Hint) + "\n")
			}
		}
	}
	if m.advanced {
		b.WriteString("\n  " + green.Bold(true).Render(fmt.Sprintf("Perfect! Advancing to Level %d.", m.session.Level())) +
			dim.Render("  press enter to continue") + "\n")
	}
	if m.practiceErr != "" {
		b.WriteString("\n  " + statusError.Render(m.practiceErr) + "\n")
	}

	b.WriteString("\n  " + cyan.Render("j/k") + dim.Render(" select  ") +
		cyan.Render("enter") + dim.Render(" answer  ") +
		cyan.Render("s") + dim.Render(" submit  ") +
		cyan.Render("n") + dim.Render(" new  ") +
		cyan.Render("b") + dim.Render(" level back  ") +
		cyan.Render("r") + dim.Render(" replay  ") +
		cyan.Render("esc") + dim.Render(" menu") + "\n")
	return b.String()
}

func (m model) viewVictory() string {
	var b strings.Builder
	b.WriteString("\n\n    " + yellow.Bold(true).Render("★ VICTORY ★") + "\n\n")
	b.WriteString("    " + white.Render("All five levels cleared. The kinematics are yours.") + "\n\n")
	b.WriteString("    " + cyan.Render("r") + dim.Render(" play again from level one  ") +
		cyan.Render("esc") + dim.Render(" menu  ") +
		cyan.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive starts the full-screen app.
func RunInteractive(opts Options) error {
	return tea.NewProgram(NewInteractiveApp(opts), tea.WithAltScreen()).Start()
}
