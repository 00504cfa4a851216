// Package ui holds presentation text shared by the live and plain drivers.
package ui

import (
	"strconv"

	"quizdesk/internal/quiz"
)

// Messages are the user-facing strings around quiz content.
type Messages struct {
	Title         string
	Complete      string
	CorrectPrefix string
	WrongPrefix   string
	HintPrefix    string
}

// DefaultMessages returns the built-in text.
func DefaultMessages() Messages {
	return Messages{
		Title:         "Quiz",
		Complete:      "Quiz complete!",
		CorrectPrefix: "System: ",
		WrongPrefix:   "System: ",
		HintPrefix:    "Hint: ",
	}
}

// WithDefaults fills empty fields from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	defaults := DefaultMessages()
	if m.Title == "" {
		m.Title = defaults.Title
	}
	if m.Complete == "" {
		m.Complete = defaults.Complete
	}
	if m.CorrectPrefix == "" {
		m.CorrectPrefix = defaults.CorrectPrefix
	}
	if m.WrongPrefix == "" {
		m.WrongPrefix = defaults.WrongPrefix
	}
	if m.HintPrefix == "" {
		m.HintPrefix = defaults.HintPrefix
	}
	return m
}

// FeedbackLines renders the feedback area for a screen. It is empty while asking.
func (m Messages) FeedbackLines(screen quiz.Screen) []string {
	switch screen.Phase {
	case quiz.PhaseCorrect:
		return []string{m.CorrectPrefix + screen.Feedback}
	case quiz.PhaseWrong:
		return []string{m.WrongPrefix + screen.Feedback, m.HintPrefix + screen.Hint}
	default:
		return nil
	}
}

// Progress renders a "Question n/N" label.
func (m Messages) Progress(screen quiz.Screen) string {
	if screen.Position == 0 {
		return ""
	}
	return "Question " + strconv.Itoa(screen.Position) + "/" + strconv.Itoa(screen.Total)
}
