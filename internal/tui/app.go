// Package tui provides the terminal console for CosmoBot.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cosmobot/internal/constants"
	"cosmobot/internal/core"
	"cosmobot/internal/transcript"
)

type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleMode  key.Binding
	ForceEvent key.Binding
	Export     key.Binding
	CrewView   key.Binding
	CrewToggle key.Binding
	Sound      key.Binding
	ClearChat  key.Binding
	Submit     key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	Help:       key.NewBinding(key.WithKeys("f1")),
	CycleMode:  key.NewBinding(key.WithKeys("f2")),
	ForceEvent: key.NewBinding(key.WithKeys("f3")),
	Export:     key.NewBinding(key.WithKeys("f4")),
	CrewView:   key.NewBinding(key.WithKeys("f5")),
	CrewToggle: key.NewBinding(key.WithKeys("ctrl+g")),
	Sound:      key.NewBinding(key.WithKeys("ctrl+b")),
	ClearChat:  key.NewBinding(key.WithKeys("ctrl+x")),
	Submit:     key.NewBinding(key.WithKeys("enter")),
}

// turnDoneMsg delivers the result of a submitted user turn.
type turnDoneMsg struct {
	result core.TurnResult
}

// exportDoneMsg delivers the outcome of a captain's log export.
type exportDoneMsg struct {
	path string
	err  error
}

// busEventMsg wraps a session bus event.
type busEventMsg struct {
	event core.Event
}

// Model is the main TUI model. The session is touched only from the update
// loop and the single in-flight submit command; every key that reads or
// mutates the session is refused while a turn is pending.
type Model struct {
	session *core.Session
	eventCh <-chan core.Event

	width  int
	height int

	viewport viewport.Model
	input    InputModel
	spin     spinner.Model

	busy        bool
	showHelp    bool
	showCrewLog bool
	statusMsg   string
}

// New creates the console model.
func New(session *core.Session, eventCh <-chan core.Event) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		session: session,
		eventCh: eventCh,
		input:   NewInputModel(),
		spin:    sp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.listenForEvents())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 8)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(msg.Width-4, m.chatHeight())
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = m.chatHeight()
		}
		m.refreshChat()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case turnDoneMsg:
		m.busy = false
		m.statusMsg = ""
		m.refreshChat()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.statusMsg = errorStyle.Render("Export failed: " + msg.err.Error())
		} else {
			m.statusMsg = statusLineStyle.Render("Captain's log saved to " + msg.path)
		}
		return m, nil

	case busEventMsg:
		m.refreshChat()
		return m, m.listenForEvents()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.showCrewLog = false
		return m, nil

	case key.Matches(msg, keys.CrewView):
		m.showCrewLog = !m.showCrewLog
		m.showHelp = false
		return m, nil

	case key.Matches(msg, keys.CycleMode):
		if m.busy {
			return m, nil
		}
		m.session.SetMode(nextMode(m.session.Config().Mode))
		m.statusMsg = statusLineStyle.Render(fmt.Sprintf("Mode shift complete: %s engaged.", m.session.Config().Mode))
		return m, nil

	case key.Matches(msg, keys.ForceEvent):
		if m.busy {
			return m, nil
		}
		m.session.MaybeTriggerEvent(true)
		m.refreshChat()
		return m, nil

	case key.Matches(msg, keys.Export):
		if m.busy {
			return m, nil
		}
		return m, m.exportLog()

	case key.Matches(msg, keys.CrewToggle):
		if m.busy {
			return m, nil
		}
		enabled := !m.session.Config().CrewLogEnabled
		m.session.SetCrewLogEnabled(enabled)
		m.statusMsg = statusLineStyle.Render("Crew log " + onOff(enabled))
		return m, nil

	case key.Matches(msg, keys.Sound):
		if m.busy {
			return m, nil
		}
		enabled := !m.session.Config().SoundEnabled
		m.session.SetSoundEnabled(enabled)
		m.statusMsg = statusLineStyle.Render("Console sounds " + onOff(enabled))
		return m, nil

	case key.Matches(msg, keys.ClearChat):
		if m.busy {
			return m, nil
		}
		m.session.Clear()
		m.refreshChat()
		m.statusMsg = statusLineStyle.Render("Chat cleared.")
		return m, nil

	case key.Matches(msg, keys.Submit):
		if m.showHelp || m.showCrewLog {
			m.showHelp = false
			m.showCrewLog = false
			return m, nil
		}
		return m.submit()
	}

	if m.showHelp || m.showCrewLog {
		m.showHelp = false
		m.showCrewLog = false
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit starts processing the typed message, unless one is in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.busy {
		return m, nil
	}

	m.input.Reset()
	m.busy = true
	m.statusMsg = ""

	session := m.session
	beep := session.Config().SoundEnabled
	run := func() tea.Msg {
		result := session.Submit(context.Background(), text)
		if beep {
			os.Stdout.WriteString("\a")
		}
		return turnDoneMsg{result: result}
	}

	return m, tea.Batch(m.spin.Tick, run)
}

// exportLog renders the captain's log synchronously, while no turn is in
// flight and the session is quiescent; only the file write runs in the
// command goroutine.
func (m Model) exportLog() tea.Cmd {
	doc := transcript.Build(m.session, transcript.Now())
	return func() tea.Msg {
		dir, err := os.Getwd()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path, err := transcript.Save(doc, dir)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.eventCh
		if !ok {
			return nil
		}
		return busEventMsg{event: event}
	}
}

// refreshChat re-renders the conversation into the viewport and pins the
// view to the newest message.
func (m *Model) refreshChat() {
	if m.viewport.Width == 0 {
		return
	}
	m.viewport.SetContent(m.renderChat())
	m.viewport.GotoBottom()
}

func (m Model) renderChat() string {
	history := m.session.History()
	if len(history) == 0 {
		return subtitleStyle.Render("🧭 Try /help or F1 for the command palette. Or type: mission, status, scan, space fact, joke.")
	}

	wrap := lipgloss.NewStyle().Width(m.viewport.Width - 2)
	var b strings.Builder
	for i, entry := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		label := cosmobotStyle.Render("CosmoBot")
		if entry.Role == core.RoleUser {
			label = commanderStyle.Render("Commander")
		}
		ts := subtitleStyle.Render(entry.Timestamp.Format(constants.ShortTimestampFormat))
		b.WriteString(label + " " + ts + "\n")
		b.WriteString(wrap.Render(entry.Content) + "\n")
	}
	return b.String()
}

// View renders the console.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return RenderHelp(m.width, m.height)
	}
	if m.showCrewLog {
		return RenderCrewLog(m.session.CrewLog(), m.session.Config().CrewLogEnabled, m.width, m.height)
	}

	var sections []string
	sections = append(sections,
		titleStyle.Render("HANNAH")+" "+subtitleStyle.Render("🛸 CosmoBot — Onboard AI Console"),
		RenderStatusBar(m.session.World(), m.session.Config()),
	)

	if last := m.session.LastEvent(); last != "" {
		sections = append(sections, eventCardStyle.Width(m.width-2).Render("Recent Event: "+last))
	}

	sections = append(sections, chatStyle.Width(m.width-2).Render(m.viewport.View()))

	if m.busy {
		sections = append(sections, m.spin.View()+spinnerStyle.Render(" Scanning..."))
	} else {
		sections = append(sections, inputStyle.Width(m.width-2).Render(m.input.View()))
	}

	footer := footerStyle.Render("F1 help • F2 mode • F3 event • F4 export • F5 crew log • Ctrl+C quit")
	if m.statusMsg != "" {
		footer = m.statusMsg
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// chatHeight is the viewport height given the fixed chrome around it.
func (m Model) chatHeight() int {
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	return h
}

func nextMode(current core.Mode) core.Mode {
	for i, mode := range core.Modes {
		if mode == current {
			return core.Modes[(i+1)%len(core.Modes)]
		}
	}
	return core.ModeStandard
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
