package quiz

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	questions := []SessionQuestion{
		NewSessionQuestion("What is the capital of France?", []string{"London", "Paris", "Berlin", "Madrid"}, "Paris"),
		NewSessionQuestion("2 + 2 = ?", []string{"3", "4", "5", "6"}, "4"),
		NewSessionQuestion("Powerhouse of the cell?", []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi"}, "Mitochondria"),
	}
	return NewSession(1, 10, 100, "General Knowledge", 15, 50, 6, questions)
}

func TestSessionStartsInInstructions(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, StateInstructions, s.State())
	assert.False(t, s.Finished())

	// Answering before Start is rejected
	assert.ErrorIs(t, s.Answer(0, "Paris"), ErrNotInProgress)
	_, err := s.Navigate(1)
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestSessionStartOnlyOnce(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())
	assert.Equal(t, StateInProgress, s.State())
	assert.ErrorIs(t, s.Start(), ErrAlreadyFinished)
}

func TestAnswerOverwritesPreviousChoice(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())

	require.NoError(t, s.Answer(0, "London"))
	require.NoError(t, s.Answer(0, "Paris"))

	selected, ok := s.AnswerFor(0)
	require.True(t, ok)
	assert.Equal(t, "Paris", selected)

	result, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score, "only the final selection counts")
}

func TestAnswerIndexBounds(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())

	assert.ErrorIs(t, s.Answer(-1, "Paris"), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Answer(3, "Paris"), ErrIndexOutOfRange)
}

func TestNavigateIsBounded(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())

	// Previous from the first question stays at the first question
	idx, err := s.Navigate(-1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = s.Navigate(1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = s.Navigate(1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	// Next past the last question stays at the last question
	idx, err = s.Navigate(1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestSubmitGradesAndFinishes(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())

	require.NoError(t, s.Answer(0, "Paris"))
	require.NoError(t, s.Answer(1, "4"))
	require.NoError(t, s.Answer(2, "Mitochondria"))

	result, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 6, result.TotalMarks)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, "PASS", result.Status)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, StateSubmitted, s.State())
	assert.True(t, s.Finished())

	// Double submit is rejected
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrAlreadyFinished)
}

func TestSubmitWithPartialAnswers(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())
	require.NoError(t, s.Answer(0, "Paris"))
	require.NoError(t, s.Answer(1, "5"))

	result, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 33, result.Percentage)
	assert.Equal(t, "FAIL", result.Status)
}

func TestAbandonIsIdempotent(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())

	require.NoError(t, s.Abandon())
	assert.Equal(t, StateAbandoned, s.State())

	// A duplicate focus-lost signal lands on an already abandoned session
	assert.ErrorIs(t, s.Abandon(), ErrAlreadyFinished)
	assert.Equal(t, StateAbandoned, s.State())

	// And no grade can be extracted afterwards
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrAlreadyFinished)
	assert.ErrorIs(t, s.Answer(0, "Paris"), ErrNotInProgress)
}

func TestAbandonAfterSubmitDoesNotRegress(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())

	_, err := s.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, s.Abandon(), ErrAlreadyFinished)
	assert.Equal(t, StateSubmitted, s.State(), "a late cheating signal must not overwrite a submitted state")
}

func TestRemainingAndExpired(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, 0, s.Remaining(), "no countdown before start")

	require.NoError(t, s.Start())
	assert.Greater(t, s.Remaining(), 14*60)
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(time.Now().Add(16*time.Minute)))

	_, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Remaining())
	assert.False(t, s.Expired(time.Now().Add(16*time.Minute)), "finished sessions never expire")
}

func TestSessionJSONNeverLeaksCorrectAnswer(t *testing.T) {
	q := NewSessionQuestion("2 + 2 = ?", []string{"3", "4", "5", "6"}, "4")

	raw, err := json.Marshal(q)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correct")
	assert.JSONEq(t, `{"text":"2 + 2 = ?","options":["3","4","5","6"]}`, string(raw))
}

func TestCurrentQuestion(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Start())

	q, idx, total := s.CurrentQuestion()
	assert.Equal(t, "What is the capital of France?", q.Text)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 3, total)
	assert.Len(t, q.Options, 4)
}
