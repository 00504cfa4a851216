package live

import tea "github.com/charmbracelet/bubbletea"

// ErrorModel blocks on a fatal error until the user presses a key.
type ErrorModel struct {
	err     error
	noColor bool
}

// NewErrorModel constructs an error notification model.
func NewErrorModel(err error, opts Options) ErrorModel {
	return ErrorModel{err: err, noColor: opts.NoColor}
}

// Init has nothing to start.
func (m ErrorModel) Init() tea.Cmd {
	return nil
}

// Update quits on any key press.
func (m ErrorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the error.
func (m ErrorModel) View() string {
	return renderError(m.err, m.noColor)
}
