package quiz

// ActionKind identifies a user-triggered action.
type ActionKind int

const (
	// ActionEdit updates the pending input text.
	ActionEdit ActionKind = iota
	// ActionSubmit checks Input against the expected answer.
	ActionSubmit
	// ActionAccept is the accept keystroke: submit while asking, next once answered.
	ActionAccept
	// ActionRetry returns to the current question.
	ActionRetry
	// ActionNext advances to the following question.
	ActionNext
)

// String returns a stable label for logs.
func (k ActionKind) String() string {
	switch k {
	case ActionEdit:
		return "edit"
	case ActionSubmit:
		return "submit"
	case ActionAccept:
		return "accept"
	case ActionRetry:
		return "retry"
	case ActionNext:
		return "next"
	default:
		return "unknown"
	}
}

// Action is a single input to Reduce.
type Action struct {
	Kind  ActionKind
	Input string
}

// Edit builds an edit action.
func Edit(input string) Action { return Action{Kind: ActionEdit, Input: input} }

// Submit builds a submit action.
func Submit(input string) Action { return Action{Kind: ActionSubmit, Input: input} }

// Accept builds an accept-keystroke action.
func Accept(input string) Action { return Action{Kind: ActionAccept, Input: input} }

// Retry builds a retry action.
func Retry() Action { return Action{Kind: ActionRetry} }

// Next builds a next action.
func Next() Action { return Action{Kind: ActionNext} }
