package quiz

// Control is an action button a screen can show.
type Control int

const (
	// ControlSubmit submits the typed answer.
	ControlSubmit Control = iota
	// ControlRetry retries the current question.
	ControlRetry
	// ControlNext moves to the next question.
	ControlNext
)

// Label returns the button caption.
func (c Control) Label() string {
	switch c {
	case ControlSubmit:
		return "Submit"
	case ControlRetry:
		return "Retry"
	case ControlNext:
		return "Next"
	default:
		return ""
	}
}

// Action returns the action the control triggers for the given input.
func (c Control) Action(input string) Action {
	switch c {
	case ControlRetry:
		return Retry()
	case ControlNext:
		return Next()
	default:
		return Submit(input)
	}
}

// Screen describes what a UI binding should display for a state.
type Screen struct {
	Phase    Phase
	Position int
	Total    int
	Question string
	Input    string
	Feedback string
	Hint     string
	Controls []Control
}

// Screen derives the display for the current state.
func (s State) Screen() Screen {
	screen := Screen{
		Phase: s.Phase,
		Total: len(s.Records),
		Input: s.Input,
	}
	record, ok := s.Current()
	if ok {
		screen.Position = s.Index + 1
		screen.Question = record.Question
	}
	switch s.Phase {
	case PhaseAsking:
		screen.Controls = []Control{ControlSubmit}
	case PhaseCorrect:
		screen.Feedback = s.Feedback
		screen.Controls = []Control{ControlNext}
	case PhaseWrong:
		screen.Feedback = s.Feedback
		screen.Hint = s.Hint
		screen.Controls = []Control{ControlRetry, ControlNext}
	}
	return screen
}

// Has reports whether the screen shows a control.
func (s Screen) Has(control Control) bool {
	for _, c := range s.Controls {
		if c == control {
			return true
		}
	}
	return false
}
