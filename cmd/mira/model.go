package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	orchestration "github.com/mira-assistant/mira-core/core"
	"github.com/mira-assistant/mira-core/core/events"
	"github.com/muesli/reflow/wordwrap"
)

const drainInterval = 100 * time.Millisecond

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	youStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	systemStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// drainTickMsg paces the mailbox polling loop. All engine events reach the
// surface through this tick, never through a callback, so every model
// mutation happens on the bubbletea goroutine.
type drainTickMsg time.Time

func drainTick() tea.Cmd {
	return tea.Tick(drainInterval, func(t time.Time) tea.Msg {
		return drainTickMsg(t)
	})
}

type model struct {
	orchestrator *orchestration.Orchestrator

	viewport viewport.Model
	input    textinput.Model

	status      events.Status
	audioLocked bool
	lines       []string

	width  int
	height int
	ready  bool

	quitting bool
}

func newModel(orchestrator *orchestration.Orchestrator) model {
	input := textinput.New()
	input.Placeholder = "Type a message, or press ctrl+l to talk"
	input.Focus()

	return model{
		orchestrator: orchestrator,
		input:        input,
		status:       events.StatusIdle,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, drainTick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if m.orchestrator.StartTextTurn(text) {
				m.input.Reset()
			}
			return m, nil

		case tea.KeyCtrlL:
			if m.audioLocked {
				return m, nil
			}
			if m.orchestrator.StartAudioTurn() {
				m.audioLocked = true
			}
			return m, nil

		case tea.KeyCtrlS:
			m.orchestrator.StopSpeaking()
			return m, nil
		}

	case drainTickMsg:
		var quit bool
		for _, event := range m.orchestrator.Mailbox().DrainPending() {
			quit = m.applyEvent(event) || quit
		}
		m.refreshViewport()
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, drainTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.input.Width = msg.Width - 4
		m.refreshViewport()
		return m, nil
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, viewportCmd)
}

// applyEvent folds one engine event into the surface state and reports
// whether the engine asked the program to exit.
func (m *model) applyEvent(event events.Event) bool {
	switch event := event.(type) {
	case events.TranscriptAppended:
		m.lines = append(m.lines, renderLine(event))
	case events.StatusChanged:
		m.status = event.Status
	case events.InputUnlocked:
		m.audioLocked = false
	case events.ExitRequested:
		return true
	}
	return false
}

func renderLine(event events.TranscriptAppended) string {
	label := string(event.Speaker) + ":"
	switch event.Speaker {
	case events.SpeakerYou:
		label = youStyle.Render(label)
	case events.SpeakerAssistant:
		label = assistantStyle.Render(label)
	default:
		label = systemStyle.Render(label)
	}
	return fmt.Sprintf("%s %s", label, event.Message)
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	content := strings.Join(m.lines, "\n")
	if m.width > 0 {
		content = wordwrap.String(content, m.width-2)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting..."
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Left,
		titleStyle.Render("mira"),
		statusStyle.Render("  ["+string(m.status)+"]"),
	)

	help := "enter send · ctrl+l talk · ctrl+s hush · esc quit"
	if m.audioLocked {
		help = "listening... · esc quit"
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n%s",
		header,
		m.viewport.View(),
		m.input.View(),
		helpStyle.Render(help),
	)
}
