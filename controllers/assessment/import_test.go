package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestNormalizeImportCanonicalKeys(t *testing.T) {
	payload := decodePayload(t, `{
		"title": "General Knowledge",
		"description": "Basics",
		"duration": 20,
		"passingPercentage": 60,
		"questions": [
			{"question": "2 + 2 = ?", "options": ["3", "4", "5", "6"], "correctAnswer": "4"}
		]
	}`)

	in, err := NormalizeImportPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "General Knowledge", in.Title)
	assert.Equal(t, "Basics", in.Description)
	assert.Equal(t, 20, in.DurationMinutes)
	assert.Equal(t, 60, in.PassingPercentage)
	require.Len(t, in.Questions, 1)
	assert.Equal(t, "2 + 2 = ?", in.Questions[0].Text)
	assert.Equal(t, []string{"3", "4", "5", "6"}, in.Questions[0].Options)
	assert.Equal(t, "4", in.Questions[0].CorrectAnswer)
}

func TestNormalizeImportAliasKeys(t *testing.T) {
	// Export tools disagree on key names; all accepted spellings must land
	// in the same internal shape
	payload := decodePayload(t, `{
		"courseTitle": "History 101",
		"courseSubject": "History",
		"questions": [
			{"questionText": "Year WW2 ended?", "choices": ["1943", "1944", "1945", "1946"], "answer": "1945"},
			{"text": "First US president?", "options": ["Lincoln", "Washington", "Adams", "Jefferson"], "correct": "Washington"}
		]
	}`)

	in, err := NormalizeImportPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "History 101", in.Title)
	assert.Equal(t, "History", in.Description)
	require.Len(t, in.Questions, 2)
	assert.Equal(t, "Year WW2 ended?", in.Questions[0].Text)
	assert.Equal(t, "1945", in.Questions[0].CorrectAnswer)
	assert.Equal(t, "First US president?", in.Questions[1].Text)
	assert.Equal(t, "Washington", in.Questions[1].CorrectAnswer)
}

func TestNormalizeImportStringTypedNumbers(t *testing.T) {
	payload := decodePayload(t, `{
		"title": "Math",
		"duration": "25",
		"passPercentage": "75",
		"questions": [
			{"question": "2 + 2 = ?", "options": ["3", "4", "5", "6"], "correctAnswer": "4"}
		]
	}`)

	in, err := NormalizeImportPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, 25, in.DurationMinutes)
	assert.Equal(t, 75, in.PassingPercentage)
}

func TestNormalizeImportMissingTitle(t *testing.T) {
	payload := decodePayload(t, `{"questions": [{"question": "Q", "options": ["a","b","c","d"], "correctAnswer": "a"}]}`)

	_, err := NormalizeImportPayload(payload)
	require.Error(t, err)
	assert.Equal(t, "Title is required!", err.Error())
}

func TestNormalizeImportMissingQuestions(t *testing.T) {
	for _, raw := range []string{
		`{"title": "Math"}`,
		`{"title": "Math", "questions": []}`,
		`{"title": "Math", "questions": "not-a-list"}`,
	} {
		_, err := NormalizeImportPayload(decodePayload(t, raw))
		require.Error(t, err)
		assert.Equal(t, "Questions are required and must be a non-empty array!", err.Error())
	}
}

func TestNormalizeImportWrongOptionCount(t *testing.T) {
	payload := decodePayload(t, `{
		"title": "Math",
		"questions": [
			{"question": "2 + 2 = ?", "options": ["3", "4", "5", "6"], "correctAnswer": "4"},
			{"question": "3 + 3 = ?", "options": ["5", "6"], "correctAnswer": "6"}
		]
	}`)

	_, err := NormalizeImportPayload(payload)
	require.Error(t, err)
	assert.Equal(t, "Question 2 must have exactly 4 options!", err.Error())
}

func TestNormalizeImportMissingOptions(t *testing.T) {
	payload := decodePayload(t, `{
		"title": "Math",
		"questions": [{"question": "2 + 2 = ?", "correctAnswer": "4"}]
	}`)

	_, err := NormalizeImportPayload(payload)
	require.Error(t, err)
	assert.Equal(t, "Question 1 must have exactly 4 options!", err.Error())
}

func TestNormalizeImportMissingAnswer(t *testing.T) {
	payload := decodePayload(t, `{
		"title": "Math",
		"questions": [{"question": "2 + 2 = ?", "options": ["3", "4", "5", "6"]}]
	}`)

	_, err := NormalizeImportPayload(payload)
	require.Error(t, err)
	assert.Equal(t, "Question 1 is missing its correct answer!", err.Error())
}
