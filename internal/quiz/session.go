package quiz

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizdesk/internal/question"
)

// Session owns the state of one run and logs its transitions.
// It is not safe for concurrent use; the UI loop is its only caller.
type Session struct {
	id     string
	state  State
	logger *zap.Logger
}

// NewSession starts a session over records. A nil logger disables logging.
func NewSession(records []question.Record, logger *zap.Logger) (*Session, error) {
	state, err := NewState(records)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	session := &Session{
		id:     id,
		state:  state,
		logger: logger.With(zap.String("session_id", id)),
	}
	session.logger.Info("session started", zap.Int("questions", state.Total()))
	return session, nil
}

// ID returns the session correlation id.
func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	return s.state
}

// Screen returns the display for the current state.
func (s *Session) Screen() Screen {
	return s.state.Screen()
}

// Dispatch applies an action and returns the resulting state.
func (s *Session) Dispatch(action Action) State {
	before := s.state
	after := Reduce(before, action)
	s.state = after
	if action.Kind == ActionEdit {
		return after
	}
	if before.Phase == after.Phase && before.Index == after.Index {
		s.logger.Debug("action ignored",
			zap.Stringer("action", action.Kind),
			zap.Stringer("phase", before.Phase),
			zap.Int("index", before.Index),
		)
		return after
	}
	s.logger.Info("transition",
		zap.Stringer("action", action.Kind),
		zap.Int("index", after.Index),
		zap.Stringer("from", before.Phase),
		zap.Stringer("to", after.Phase),
	)
	if after.Phase == PhaseComplete {
		s.logger.Info("session complete")
	}
	return after
}
