package live

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizdesk/internal/quiz"
)

// Result reports how a live session ended.
type Result struct {
	Completed bool
}

// Run drives a session in the alternate screen until it completes or the
// user quits.
func Run(session *quiz.Session, stdout io.Writer, opts Options) (Result, error) {
	final, err := runProgram(NewModel(session, opts), stdout)
	if err != nil {
		return Result{}, fmt.Errorf("run live ui: %w", err)
	}
	if model, ok := final.(Model); ok && model.Aborted() {
		return Result{}, nil
	}
	return Result{Completed: session.State().Done()}, nil
}

// ShowError displays a blocking error notification.
func ShowError(stdout io.Writer, cause error, opts Options) error {
	if _, err := runProgram(NewErrorModel(cause, opts), stdout); err != nil {
		return fmt.Errorf("show error: %w", err)
	}
	return nil
}

func runProgram(model tea.Model, stdout io.Writer) (tea.Model, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	return program.Run()
}
