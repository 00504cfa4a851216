// Package plain drives a quiz session over line-oriented input and output,
// for terminals without a TTY.
package plain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"quizdesk/internal/quiz"
	"quizdesk/internal/ui"
)

// maxLineBytes bounds a single answer line.
const maxLineBytes = 1 << 20

// Result reports how a plain session ended.
type Result struct {
	Completed bool
}

// Run reads one line per prompt until the session completes or input ends.
func Run(session *quiz.Session, in io.Reader, out io.Writer, messages ui.Messages) (Result, error) {
	messages = messages.WithDefaults()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lastIndex, lastPhase := -1, quiz.PhaseComplete

	for {
		screen := session.Screen()
		if screen.Phase == quiz.PhaseComplete {
			fmt.Fprintln(out, messages.Complete)
			return Result{Completed: true}, nil
		}
		changed := session.State().Index != lastIndex || screen.Phase != lastPhase
		lastIndex, lastPhase = session.State().Index, screen.Phase
		if changed {
			writeScreen(out, messages, screen)
		}
		fmt.Fprint(out, prompt(screen))

		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return Result{}, fmt.Errorf("read input: %w", err)
			}
			return Result{}, nil
		}
		if action, ok := actionFor(screen, scanner.Text()); ok {
			session.Dispatch(action)
		}
	}
}

// writeScreen prints the question or the feedback for a new screen.
func writeScreen(out io.Writer, messages ui.Messages, screen quiz.Screen) {
	if screen.Phase == quiz.PhaseAsking {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s: %s\n", messages.Progress(screen), screen.Question)
		return
	}
	for _, line := range messages.FeedbackLines(screen) {
		fmt.Fprintln(out, line)
	}
}

func prompt(screen quiz.Screen) string {
	switch screen.Phase {
	case quiz.PhaseWrong:
		return "[r]etry / [n]ext > "
	case quiz.PhaseCorrect:
		return "[n]ext > "
	default:
		return "> "
	}
}

// actionFor maps a line to an action. Unrecognised choices re-prompt.
func actionFor(screen quiz.Screen, line string) (quiz.Action, bool) {
	if screen.Phase == quiz.PhaseAsking {
		return quiz.Submit(line), true
	}
	choice := strings.ToLower(strings.TrimSpace(line))
	switch {
	case choice == "r" && screen.Has(quiz.ControlRetry):
		return quiz.Retry(), true
	case choice == "" || choice == "n":
		return quiz.Next(), true
	case screen.Phase == quiz.PhaseCorrect:
		return quiz.Next(), true
	default:
		return quiz.Action{}, false
	}
}
