package controllers

import (
	"errors"
	"fmt"
	"strconv"
)

// NormalizeImportPayload converts a loosely-shaped bulk-import payload into a
// validated AssessmentInput. Importers use inconsistent key names
// (courseTitle vs title, choices vs options) and sometimes string-typed
// numbers; everything past this function sees only the internal shape.
func NormalizeImportPayload(payload map[string]interface{}) (*AssessmentInput, error) {
	input := &AssessmentInput{
		Title:             pickString(payload, "title", "courseTitle", "assessmentTitle"),
		Description:       pickString(payload, "description", "courseSubject", "subject"),
		DurationMinutes:   pickInt(payload, "duration", "durationMinutes", "duration_minutes"),
		TotalMarks:        pickInt(payload, "totalMarks", "total_marks"),
		PassingPercentage: pickInt(payload, "passingPercentage", "passPercentage", "passing_percentage"),
	}

	if input.Title == "" {
		return nil, errors.New("Title is required!")
	}

	rawQuestions, ok := payload["questions"].([]interface{})
	if !ok || len(rawQuestions) == 0 {
		return nil, errors.New("Questions are required and must be a non-empty array!")
	}

	for i, raw := range rawQuestions {
		qMap, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("Question %d is not an object!", i+1)
		}

		question := QuestionInput{
			Text:          pickString(qMap, "question", "questionText", "text"),
			CorrectAnswer: pickString(qMap, "correctAnswer", "answer", "correct"),
		}
		if question.Text == "" {
			return nil, fmt.Errorf("Question %d is missing its text!", i+1)
		}
		if question.CorrectAnswer == "" {
			return nil, fmt.Errorf("Question %d is missing its correct answer!", i+1)
		}

		rawOptions, ok := pickList(qMap, "options", "choices")
		if !ok {
			return nil, fmt.Errorf("Question %d must have exactly 4 options!", i+1)
		}
		for _, rawOpt := range rawOptions {
			opt, ok := rawOpt.(string)
			if !ok {
				return nil, fmt.Errorf("Question %d has a non-text option!", i+1)
			}
			question.Options = append(question.Options, opt)
		}
		if len(question.Options) != 4 {
			return nil, fmt.Errorf("Question %d must have exactly 4 options!", i+1)
		}

		input.Questions = append(input.Questions, question)
	}

	return input, nil
}

func questionError(index int, msg string) string {
	return fmt.Sprintf("Question %d %s!", index+1, msg)
}

func pickString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func pickInt(m map[string]interface{}, keys ...string) int {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}

func pickUint(m map[string]interface{}, keys ...string) uint {
	n := pickInt(m, keys...)
	if n < 0 {
		return 0
	}
	return uint(n)
}

func pickList(m map[string]interface{}, keys ...string) ([]interface{}, bool) {
	for _, key := range keys {
		if v, ok := m[key].([]interface{}); ok {
			return v, true
		}
	}
	return nil, false
}
