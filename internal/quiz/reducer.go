package quiz

import "quizdesk/internal/question"

// Reduce applies an action to the session state. Actions that are not valid
// in the current phase return the state unchanged.
func Reduce(state State, action Action) State {
	if state.Phase == PhaseComplete {
		return state
	}
	switch action.Kind {
	case ActionEdit:
		if state.Phase == PhaseAsking {
			state.Input = action.Input
		}
		return state
	case ActionSubmit:
		return submit(state, action.Input)
	case ActionAccept:
		if state.Phase == PhaseAsking {
			return submit(state, action.Input)
		}
		return next(state)
	case ActionRetry:
		return retry(state)
	case ActionNext:
		return next(state)
	default:
		return state
	}
}

// submit checks input against the current answer.
func submit(state State, input string) State {
	if state.Phase != PhaseAsking || question.IsBlank(input) {
		return state
	}
	record, ok := state.Current()
	if !ok {
		return state
	}
	state.Input = input
	if question.MatchAnswer(input, record.Answer) {
		state.Phase = PhaseCorrect
		state.Feedback = record.CorrectFeedback
		state.Hint = ""
		return state
	}
	state.Phase = PhaseWrong
	state.Feedback = record.WrongFeedback
	state.Hint = record.Hint
	return state
}

// retry returns to asking the same question with a clean slate.
func retry(state State) State {
	if state.Phase != PhaseWrong {
		return state
	}
	return resetQuestion(state, state.Index)
}

// next advances to the following question or completes the session.
func next(state State) State {
	if state.Phase != PhaseCorrect && state.Phase != PhaseWrong {
		return state
	}
	state = resetQuestion(state, state.Index+1)
	if state.Index >= len(state.Records) {
		state.Index = len(state.Records)
		state.Phase = PhaseComplete
	}
	return state
}

func resetQuestion(state State, index int) State {
	state.Index = index
	state.Phase = PhaseAsking
	state.Input = ""
	state.Feedback = ""
	state.Hint = ""
	return state
}
