package entities

// Phase marks what the user is currently doing in a chat.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseStudying Phase = "studying"
	PhaseTesting  Phase = "testing"
)

// Session is the per-chat state: the loaded vocabulary table, the quiz in
// progress (if any) and the current phase. Each chat owns exactly one
// session; sessions are never shared across chats.
type Session struct {
	Table      Table
	ActiveQuiz *Quiz
	Phase      Phase
}

// NewSession creates an idle session with no table loaded.
func NewSession() *Session {
	return &Session{Phase: PhaseIdle}
}

// StartQuiz attaches a quiz and moves the session to the testing phase.
func (s *Session) StartQuiz(q *Quiz) {
	s.ActiveQuiz = q
	s.Phase = PhaseTesting
}

// FinishQuiz drops the active quiz and returns the session to idle.
func (s *Session) FinishQuiz() {
	s.ActiveQuiz = nil
	s.Phase = PhaseIdle
}
