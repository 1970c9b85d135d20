package quiz

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

var ErrSessionInProgress = errors.New("a quiz session for this course is already in progress")

// Manager tracks live quiz sessions in memory. Sessions are single-attempt
// scratch state; the Submission row written at the end is the durable record.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session // by session ID
	byOwner  map[string]string   // "user:course" -> session ID

	// AutoSubmit is invoked when a session's countdown reaches zero. It
	// receives the graded result so the caller can persist it.
	AutoSubmit func(s *Session, r *Result)
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		byOwner:  make(map[string]string),
	}
}

func ownerKey(userID, courseID uint) string {
	return fmt.Sprintf("%d:%d", userID, courseID)
}

// Register adds a session and enforces one live session per (user, course).
// A finished leftover session for the pair is evicted; a live one rejects
// the new registration.
func (m *Manager) Register(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ownerKey(s.UserID, s.CourseID)
	if existingID, ok := m.byOwner[key]; ok {
		existing := m.sessions[existingID]
		if existing != nil && !existing.Finished() {
			return ErrSessionInProgress
		}
		delete(m.sessions, existingID)
	}

	s.onExpire = m.expire
	m.sessions[s.ID] = s
	m.byOwner[key] = s.ID
	return nil
}

// Get returns a session by ID
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session from the manager
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		delete(m.byOwner, ownerKey(s.UserID, s.CourseID))
		delete(m.sessions, id)
	}
}

// expire is the timer callback: grade whatever was answered and hand the
// result to AutoSubmit. A session that was submitted or abandoned in the
// meantime is left alone.
func (m *Manager) expire(s *Session) {
	result, err := s.Submit()
	if err != nil {
		return
	}
	log.Printf("[QUIZ] Session %s timed out, auto-submitting (score %d/%d)", s.ID, result.Score, result.TotalQuestions)
	if m.AutoSubmit != nil {
		m.AutoSubmit(s, result)
	}
}

// ReapExpired force-submits live sessions whose deadline passed without the
// timer firing (safety net) and evicts finished sessions. Returns the number
// of sessions reaped.
func (m *Manager) ReapExpired(now time.Time) int {
	m.mu.Lock()
	var stale []*Session
	var finished []string
	for id, s := range m.sessions {
		if s.Expired(now) {
			stale = append(stale, s)
		} else if s.Finished() {
			finished = append(finished, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		m.expire(s)
	}
	for _, id := range finished {
		m.Remove(id)
	}
	return len(stale)
}
