package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managerTestSession(userID, courseID uint) *Session {
	questions := []SessionQuestion{
		NewSessionQuestion("2 + 2 = ?", []string{"3", "4", "5", "6"}, "4"),
	}
	return NewSession(userID, courseID, 100, "Math", 15, 50, 2, questions)
}

func TestManagerRegisterAndGet(t *testing.T) {
	m := NewManager()
	s := managerTestSession(1, 10)

	require.NoError(t, m.Register(s))

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("no-such-session")
	assert.False(t, ok)
}

func TestManagerOneLiveSessionPerOwner(t *testing.T) {
	m := NewManager()
	first := managerTestSession(1, 10)
	require.NoError(t, m.Register(first))
	require.NoError(t, first.Start())

	// Same learner, same course: rejected while the first is live
	assert.ErrorIs(t, m.Register(managerTestSession(1, 10)), ErrSessionInProgress)

	// Different course or different learner is fine
	assert.NoError(t, m.Register(managerTestSession(1, 11)))
	assert.NoError(t, m.Register(managerTestSession(2, 10)))
}

func TestManagerRegisterEvictsFinishedLeftover(t *testing.T) {
	m := NewManager()
	first := managerTestSession(1, 10)
	require.NoError(t, m.Register(first))
	require.NoError(t, first.Start())
	require.NoError(t, first.Abandon())

	second := managerTestSession(1, 10)
	require.NoError(t, m.Register(second))

	_, ok := m.Get(first.ID)
	assert.False(t, ok, "finished leftover must be evicted")
	_, ok = m.Get(second.ID)
	assert.True(t, ok)
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	s := managerTestSession(1, 10)
	require.NoError(t, m.Register(s))

	m.Remove(s.ID)
	_, ok := m.Get(s.ID)
	assert.False(t, ok)

	// Owner slot is freed too
	assert.NoError(t, m.Register(managerTestSession(1, 10)))
}

func TestReapExpiredForceSubmits(t *testing.T) {
	m := NewManager()

	var autoSubmitted []*Result
	m.AutoSubmit = func(s *Session, r *Result) {
		autoSubmitted = append(autoSubmitted, r)
	}

	s := managerTestSession(1, 10)
	require.NoError(t, m.Register(s))
	require.NoError(t, s.Start())
	require.NoError(t, s.Answer(0, "4"))

	// Nothing stale yet
	assert.Equal(t, 0, m.ReapExpired(time.Now()))
	assert.Empty(t, autoSubmitted)

	// Pretend the deadline passed without the timer firing
	reaped := m.ReapExpired(time.Now().Add(16 * time.Minute))
	assert.Equal(t, 1, reaped)
	require.Len(t, autoSubmitted, 1)
	assert.Equal(t, 1, autoSubmitted[0].Score)
	assert.Equal(t, "PASS", autoSubmitted[0].Status)
	assert.Equal(t, StateSubmitted, s.State())

	// A second reap finds nothing live and evicts the finished session
	assert.Equal(t, 0, m.ReapExpired(time.Now().Add(17*time.Minute)))
	_, ok := m.Get(s.ID)
	assert.False(t, ok)
}

func TestReapLeavesFinishedSessionsUngraded(t *testing.T) {
	m := NewManager()

	called := 0
	m.AutoSubmit = func(s *Session, r *Result) { called++ }

	s := managerTestSession(1, 10)
	require.NoError(t, m.Register(s))
	require.NoError(t, s.Start())
	require.NoError(t, s.Abandon())

	assert.Equal(t, 0, m.ReapExpired(time.Now().Add(16*time.Minute)))
	assert.Equal(t, 0, called, "abandoned sessions must not be auto-submitted")
}
