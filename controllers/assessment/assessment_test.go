package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() *AssessmentInput {
	return &AssessmentInput{
		Title: "General Knowledge",
		Questions: []QuestionInput{
			{Text: "What is the capital of France?", Options: []string{"London", "Paris", "Berlin", "Madrid"}, CorrectAnswer: "Paris"},
			{Text: "2 + 2 = ?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
		},
	}
}

func TestApplyDefaults(t *testing.T) {
	in := validInput()
	in.applyDefaults()

	assert.Equal(t, 15, in.DurationMinutes)
	assert.Equal(t, 4, in.TotalMarks, "two marks per question")
	assert.Equal(t, 50, in.PassingPercentage)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	in := validInput()
	in.DurationMinutes = 30
	in.TotalMarks = 10
	in.PassingPercentage = 70
	in.applyDefaults()

	assert.Equal(t, 30, in.DurationMinutes)
	assert.Equal(t, 10, in.TotalMarks)
	assert.Equal(t, 70, in.PassingPercentage)
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	msg, ok := validInput().validate()
	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestValidateRejectsMissingTitle(t *testing.T) {
	in := validInput()
	in.Title = ""
	msg, ok := in.validate()
	assert.False(t, ok)
	assert.Equal(t, "Title is required!", msg)
}

func TestValidateRejectsEmptyQuestions(t *testing.T) {
	in := validInput()
	in.Questions = nil
	msg, ok := in.validate()
	assert.False(t, ok)
	assert.Equal(t, "Questions are required and must be a non-empty array!", msg)
}

func TestValidateRejectsWrongOptionCount(t *testing.T) {
	in := validInput()
	in.Questions[1].Options = []string{"3", "4", "5"}
	msg, ok := in.validate()
	assert.False(t, ok)
	assert.Equal(t, "Question 2 must have exactly 4 options!", msg)

	in.Questions[1].Options = []string{"3", "4", "5", "6", "7"}
	msg, ok = in.validate()
	assert.False(t, ok)
	assert.Equal(t, "Question 2 must have exactly 4 options!", msg)
}

func TestValidateRejectsMissingCorrectAnswer(t *testing.T) {
	in := validInput()
	in.Questions[0].CorrectAnswer = ""
	msg, ok := in.validate()
	assert.False(t, ok)
	assert.Equal(t, "Question 1 is missing its correct answer!", msg)
}

func TestValidateRejectsMissingQuestionText(t *testing.T) {
	in := validInput()
	in.Questions[0].Text = ""
	msg, ok := in.validate()
	assert.False(t, ok)
	assert.Equal(t, "Question 1 is missing its text!", msg)
}
