package live

import (
	"github.com/charmbracelet/bubbles/key"

	"quizdesk/internal/quiz"
)

// keyMap binds keys to quiz actions and feeds the help footer.
type keyMap struct {
	Accept    key.Binding
	Retry     key.Binding
	Next      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "focus"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// syncTo enables the bindings that apply to a screen. Letter shortcuts stay
// disabled while asking so they reach the text input.
func (k *keyMap) syncTo(screen quiz.Screen) {
	asking := screen.Phase == quiz.PhaseAsking
	k.Retry.SetEnabled(!asking && screen.Has(quiz.ControlRetry))
	k.Next.SetEnabled(!asking && screen.Has(quiz.ControlNext))
	k.FocusNext.SetEnabled(!asking && len(screen.Controls) > 1)
	k.FocusPrev.SetEnabled(!asking && len(screen.Controls) > 1)
	k.Accept.SetEnabled(screen.Phase != quiz.PhaseComplete)
	if asking {
		k.Accept.SetHelp("enter", "submit")
	} else {
		k.Accept.SetHelp("enter", "select")
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Retry, k.Next, k.FocusNext, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
