package live

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/quiz"
	"quizdesk/internal/ui"
)

// Model renders a quiz session using Bubble Tea.
type Model struct {
	session  *quiz.Session
	input    textinput.Model
	keys     keyMap
	help     help.Model
	focus    quiz.Control
	width    int
	noColor  bool
	messages ui.Messages
	aborted  bool
}

// Options configures the live UI model.
type Options struct {
	NoColor  bool
	Messages ui.Messages
}

// NewModel constructs a live UI model for a session.
func NewModel(session *quiz.Session, opts Options) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Type your answer"
	input.Width = 60
	input.Focus()

	keys := newKeyMap()
	keys.syncTo(session.Screen())
	return Model{
		session:  session,
		input:    input,
		keys:     keys,
		help:     help.New(),
		focus:    quiz.ControlSubmit,
		noColor:  opts.NoColor,
		messages: opts.Messages.WithDefaults(),
	}
}

// Aborted reports whether the user quit before the session completed.
func (m Model) Aborted() bool {
	return m.aborted
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update maps key presses to quiz actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.input.Width = max(typed.Width-len(m.input.Prompt)-2, 10)
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the quiz screen.
func (m Model) View() string {
	screen := m.session.Screen()
	if screen.Phase == quiz.PhaseComplete {
		return renderComplete(m.messages, m.noColor)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.messages, screen, m.noColor),
		"",
		renderQuestion(screen, m.width, m.noColor),
		"",
		m.input.View(),
		"",
		renderFeedback(m.messages, screen, m.noColor),
		renderControls(screen, m.focus, m.noColor),
		"",
		m.help.View(m.keys),
	)
}

// handleKey routes a key press according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.session.Screen()
	if screen.Phase == quiz.PhaseComplete {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) {
		m.aborted = true
		return m, tea.Quit
	}
	if screen.Phase == quiz.PhaseAsking {
		if key.Matches(msg, m.keys.Accept) {
			return m.dispatch(quiz.Accept(m.input.Value()))
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.Dispatch(quiz.Edit(m.input.Value()))
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Retry):
		return m.dispatch(quiz.Retry())
	case key.Matches(msg, m.keys.Next):
		return m.dispatch(quiz.Next())
	case key.Matches(msg, m.keys.FocusNext):
		m.moveFocus(screen, 1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.moveFocus(screen, -1)
	case key.Matches(msg, m.keys.Accept):
		return m.dispatch(m.focus.Action(m.input.Value()))
	}
	return m, nil
}

// dispatch applies an action and resets widget state on a transition.
func (m Model) dispatch(action quiz.Action) (tea.Model, tea.Cmd) {
	before := m.session.State()
	after := m.session.Dispatch(action)
	if before.Phase == after.Phase && before.Index == after.Index {
		return m, nil
	}
	screen := after.Screen()
	m.keys.syncTo(screen)
	switch after.Phase {
	case quiz.PhaseAsking:
		m.focus = quiz.ControlSubmit
		m.input.Reset()
		return m, m.input.Focus()
	case quiz.PhaseCorrect, quiz.PhaseWrong:
		m.focus = quiz.ControlNext
		m.input.Blur()
	default:
		m.input.Blur()
	}
	return m, nil
}

// moveFocus cycles focus through the visible controls.
func (m *Model) moveFocus(screen quiz.Screen, delta int) {
	count := len(screen.Controls)
	if count == 0 {
		return
	}
	current := 0
	for i, control := range screen.Controls {
		if control == m.focus {
			current = i
			break
		}
	}
	m.focus = screen.Controls[(current+delta+count)%count]
}
