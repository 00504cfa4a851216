package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/quiz"
	"quizdesk/internal/ui"
)

// renderHeader renders the title and progress line.
func renderHeader(messages ui.Messages, screen quiz.Screen, noColor bool) string {
	line := messages.Title
	if progress := messages.Progress(screen); progress != "" {
		line += " | " + progress
	}
	return stylizeBold(line, noColor, colorHeader)
}

// renderQuestion renders the question text, wrapped to the window width.
func renderQuestion(screen quiz.Screen, width int, noColor bool) string {
	style := lipgloss.NewStyle()
	if width > 4 {
		style = style.Width(width - 2)
	}
	if !noColor {
		style = style.Bold(true)
	}
	return style.Render(screen.Question)
}

// renderFeedback renders the feedback line, colored by outcome.
func renderFeedback(messages ui.Messages, screen quiz.Screen, noColor bool) string {
	lines := messages.FeedbackLines(screen)
	if len(lines) == 0 {
		return ""
	}
	color := colorCorrect
	if screen.Phase == quiz.PhaseWrong {
		color = colorWrong
	}
	return stylize(strings.Join(lines, "\n"), noColor, color)
}

// renderControls renders the visible action buttons in a row.
func renderControls(screen quiz.Screen, focus quiz.Control, noColor bool) string {
	if len(screen.Controls) == 0 {
		return ""
	}
	asking := screen.Phase == quiz.PhaseAsking
	buttons := make([]string, 0, len(screen.Controls)*2)
	for i, control := range screen.Controls {
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		focused := !asking && control == focus
		buttons = append(buttons, renderButton(control.Label(), focused, noColor))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// renderComplete renders the end-of-quiz notification.
func renderComplete(messages ui.Messages, noColor bool) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		stylizeBold(messages.Complete, noColor, colorCorrect),
		"",
		stylize("Press any key to exit.", noColor, colorMuted),
	)
}

// renderError renders a fatal error notification.
func renderError(err error, noColor bool) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		stylizeBold("Error", noColor, colorError),
		"",
		err.Error(),
		"",
		stylize("Press any key to exit.", noColor, colorMuted),
	)
}
