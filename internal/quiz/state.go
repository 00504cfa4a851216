package quiz

import (
	"errors"

	"quizdesk/internal/question"
)

// Phase identifies where the session is within the current question.
type Phase int

const (
	// PhaseAsking shows the question and waits for a submission.
	PhaseAsking Phase = iota
	// PhaseCorrect shows the correct feedback.
	PhaseCorrect
	// PhaseWrong shows the wrong feedback and hint.
	PhaseWrong
	// PhaseComplete follows the last question.
	PhaseComplete
)

// String returns a stable label for logs.
func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseCorrect:
		return "correct"
	case PhaseWrong:
		return "wrong"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ErrNoRecords indicates a session was requested for an empty record set.
var ErrNoRecords = errors.New("quiz has no questions")

// State is the full session state. Index is in [0, len(Records)] and equals
// len(Records) only in PhaseComplete.
type State struct {
	Records  []question.Record
	Index    int
	Phase    Phase
	Input    string
	Feedback string
	Hint     string
}

// NewState starts a session at the first record.
func NewState(records []question.Record) (State, error) {
	if len(records) == 0 {
		return State{}, ErrNoRecords
	}
	owned := make([]question.Record, len(records))
	copy(owned, records)
	return State{Records: owned, Phase: PhaseAsking}, nil
}

// Current returns the record being asked, if any.
func (s State) Current() (question.Record, bool) {
	if s.Index < 0 || s.Index >= len(s.Records) {
		return question.Record{}, false
	}
	return s.Records[s.Index], true
}

// Total returns the number of records in the session.
func (s State) Total() int {
	return len(s.Records)
}

// Done reports whether the session has completed.
func (s State) Done() bool {
	return s.Phase == PhaseComplete
}
