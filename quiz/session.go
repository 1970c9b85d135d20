package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionState enumerates quiz session states
type SessionState string

const (
	StateInstructions SessionState = "INSTRUCTIONS"
	StateInProgress   SessionState = "IN_PROGRESS"
	StateSubmitted    SessionState = "SUBMITTED"
	StateAbandoned    SessionState = "ABANDONED"
)

var (
	ErrNotInProgress   = errors.New("quiz session is not in progress")
	ErrAlreadyFinished = errors.New("quiz session already finished")
	ErrIndexOutOfRange = errors.New("question index out of range")
)

// SessionQuestion is the learner-facing view of a question. The correct
// answer never leaves the server while the session is live.
type SessionQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	correctAnswer string
}

// Session administers one timed quiz attempt. All state transitions go
// through the mutex; the timer callback and the focus-lost signal may fire
// together, so terminal transitions are idempotent.
type Session struct {
	ID           string
	UserID       uint
	CourseID     uint
	AssessmentID uint

	Title             string
	DurationMinutes   int
	PassingPercentage int
	TotalMarks        int

	mu           sync.Mutex
	state        SessionState
	questions    []SessionQuestion
	currentIndex int
	answers      map[int]string
	startedAt    time.Time
	deadline     time.Time
	timer        *time.Timer

	// onExpire is invoked outside the lock when the countdown reaches zero
	onExpire func(*Session)
}

// NewSession builds a session in the INSTRUCTIONS state. The countdown does
// not run until Start is called.
func NewSession(userID, courseID, assessmentID uint, title string, durationMinutes, passingPercentage, totalMarks int, questions []SessionQuestion) *Session {
	if durationMinutes <= 0 {
		durationMinutes = 15
	}
	return &Session{
		ID:                uuid.NewString(),
		UserID:            userID,
		CourseID:          courseID,
		AssessmentID:      assessmentID,
		Title:             title,
		DurationMinutes:   durationMinutes,
		PassingPercentage: passingPercentage,
		TotalMarks:        totalMarks,
		state:             StateInstructions,
		questions:         questions,
		answers:           make(map[int]string),
	}
}

// NewSessionQuestion keeps the correct answer unexported so JSON encoding of
// a live session can never leak it.
func NewSessionQuestion(text string, options []string, correctAnswer string) SessionQuestion {
	return SessionQuestion{Text: text, Options: options, correctAnswer: correctAnswer}
}

// Start moves the session into IN_PROGRESS and starts the countdown
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInstructions {
		return ErrAlreadyFinished
	}

	s.state = StateInProgress
	s.startedAt = time.Now()
	s.deadline = s.startedAt.Add(time.Duration(s.DurationMinutes) * time.Minute)

	if s.onExpire != nil {
		s.timer = time.AfterFunc(time.Until(s.deadline), func() {
			s.onExpire(s)
		})
	}
	return nil
}

// Answer records the selected option for a question. Re-selecting overwrites
// the previous choice; answering is never additive.
func (s *Session) Answer(index int, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	s.answers[index] = option
	return nil
}

// Navigate moves the current question pointer, bounded at the array ends
func (s *Session) Navigate(delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return s.currentIndex, ErrNotInProgress
	}
	next := s.currentIndex + delta
	if next < 0 {
		next = 0
	}
	if next > len(s.questions)-1 {
		next = len(s.questions) - 1
	}
	s.currentIndex = next
	return s.currentIndex, nil
}

// Result is the graded outcome of a finished session
type Result struct {
	Score          int
	TotalMarks     int
	Percentage     int
	Status         string
	TotalQuestions int
	Answers        map[int]string
}

// Submit grades the session and moves it to SUBMITTED. Duplicate calls and
// calls after an abandon observe ErrAlreadyFinished.
func (s *Session) Submit() (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return nil, ErrAlreadyFinished
	}
	s.finishLocked(StateSubmitted)
	return s.resultLocked(), nil
}

// Abandon terminates the session without grading. Used for the cheating
// signal (tab switch / window blur). Idempotent: the second of two
// near-simultaneous signals is a no-op.
func (s *Session) Abandon() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrAlreadyFinished
	}
	s.finishLocked(StateAbandoned)
	return nil
}

// Expired reports whether the deadline has passed for a live session
func (s *Session) Expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateInProgress && now.After(s.deadline)
}

// Remaining returns the seconds left on the countdown, never negative
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return 0
	}
	left := time.Until(s.deadline)
	if left < 0 {
		return 0
	}
	return int(left.Seconds())
}

// State returns the current session state
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Finished reports whether the session reached a terminal state
func (s *Session) Finished() bool {
	st := s.State()
	return st == StateSubmitted || st == StateAbandoned
}

// CurrentQuestion returns the question at the pointer plus progress info
func (s *Session) CurrentQuestion() (SessionQuestion, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.currentIndex], s.currentIndex, len(s.questions)
}

// AnswerFor returns the stored answer for an index, if any
func (s *Session) AnswerFor(index int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.answers[index]
	return v, ok
}

// QuestionCount returns the number of questions in the session
func (s *Session) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

func (s *Session) finishLocked(state SessionState) {
	s.state = state
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) resultLocked() *Result {
	correct := make([]string, len(s.questions))
	for i, q := range s.questions {
		correct[i] = q.correctAnswer
	}

	answers := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}

	score := Score(correct, answers)
	pct := Percentage(score, len(s.questions))

	return &Result{
		Score:          score,
		TotalMarks:     score * 2,
		Percentage:     pct,
		Status:         Status(pct, s.PassingPercentage),
		TotalQuestions: len(s.questions),
		Answers:        answers,
	}
}
