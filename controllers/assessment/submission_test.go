package controllers

import (
	"encoding/json"
	"testing"

	"upskillr/database"
	assessmentModels "upskillr/models/assessment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}
	return db
}

func seedAssessment(t *testing.T, db *gorm.DB, courseID uint, passing int) *assessmentModels.Assessment {
	t.Helper()

	record := assessmentModels.Assessment{
		CourseID:          courseID,
		Title:             "General Knowledge",
		DurationMinutes:   15,
		TotalMarks:        6,
		PassingPercentage: passing,
		CreatedBy:         99,
		IsActive:          true,
	}
	require.NoError(t, db.Create(&record).Error)

	questions := []struct {
		text    string
		options []string
		answer  string
	}{
		{"What is the capital of France?", []string{"London", "Paris", "Berlin", "Madrid"}, "Paris"},
		{"2 + 2 = ?", []string{"3", "4", "5", "6"}, "4"},
		{"Powerhouse of the cell?", []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi"}, "Mitochondria"},
	}
	for i, q := range questions {
		optionsJSON, err := json.Marshal(q.options)
		require.NoError(t, err)
		require.NoError(t, db.Create(&assessmentModels.Question{
			AssessmentID:  record.ID,
			Text:          q.text,
			Options:       optionsJSON,
			CorrectAnswer: q.answer,
			OrderIndex:    i,
		}).Error)
	}
	return &record
}

func TestRecordSubmissionGradesFromStoredAnswerKey(t *testing.T) {
	db := setupTestDB(t)
	seedAssessment(t, db, 10, 50)

	outcome, err := RecordSubmission(1, 10, map[int]string{0: "Paris", 1: "4", 2: "Mitochondria"})
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Score)
	assert.Equal(t, 100, outcome.Percentage)
	assert.Equal(t, "PASS", outcome.Status)

	var row assessmentModels.Submission
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, 10).First(&row).Error)
	assert.Equal(t, 3, row.Score)
	assert.Equal(t, 6, row.TotalMarks)
	assert.Equal(t, 100, row.Percentage)
	assert.Equal(t, "PASS", row.Status)
	assert.Equal(t, 3, row.TotalQuestions)
}

func TestRecordSubmissionFailingScore(t *testing.T) {
	db := setupTestDB(t)
	seedAssessment(t, db, 10, 50)

	// One correct, one wrong, one skipped
	outcome, err := RecordSubmission(1, 10, map[int]string{0: "Paris", 1: "5"})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Score)
	assert.Equal(t, 33, outcome.Percentage)
	assert.Equal(t, "FAIL", outcome.Status)
}

func TestRecordSubmissionPassBoundaryInclusive(t *testing.T) {
	db := setupTestDB(t)
	seedAssessment(t, db, 10, 67)

	// 2 of 3 correct rounds to 67, exactly the threshold
	outcome, err := RecordSubmission(1, 10, map[int]string{0: "Paris", 1: "4"})
	require.NoError(t, err)
	assert.Equal(t, 67, outcome.Percentage)
	assert.Equal(t, "PASS", outcome.Status)
}

func TestRecordSubmissionDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	seedAssessment(t, db, 10, 50)

	first, err := RecordSubmission(1, 10, map[int]string{0: "Paris"})
	require.NoError(t, err)

	// Retake with a perfect answer sheet is rejected
	_, err = RecordSubmission(1, 10, map[int]string{0: "Paris", 1: "4", 2: "Mitochondria"})
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	// And the original row is untouched
	var rows []assessmentModels.Submission
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, 10).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, first.Score, rows[0].Score)
	assert.Equal(t, first.Percentage, rows[0].Percentage)
}

func TestRecordSubmissionPerUserPerCourse(t *testing.T) {
	db := setupTestDB(t)
	seedAssessment(t, db, 10, 50)
	seedAssessment(t, db, 11, 50)

	_, err := RecordSubmission(1, 10, map[int]string{0: "Paris"})
	require.NoError(t, err)

	// Another learner on the same course, and the same learner on another
	// course, both get their own row
	_, err = RecordSubmission(2, 10, map[int]string{0: "Paris"})
	assert.NoError(t, err)
	_, err = RecordSubmission(1, 11, map[int]string{0: "Paris"})
	assert.NoError(t, err)
}

func TestSubmissionUniqueIndexBackstop(t *testing.T) {
	db := setupTestDB(t)

	// Bypass RecordSubmission's pre-check to prove the index alone holds
	first := assessmentModels.Submission{UserID: 1, CourseID: 10, AssessmentID: 5, Answers: []byte(`{}`), Status: "PASS"}
	require.NoError(t, db.Create(&first).Error)

	second := assessmentModels.Submission{UserID: 1, CourseID: 10, AssessmentID: 5, Answers: []byte(`{}`), Status: "FAIL"}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRecordSubmissionNoAssessment(t *testing.T) {
	setupTestDB(t)

	_, err := RecordSubmission(1, 10, map[int]string{0: "Paris"})
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestRecordSubmissionIgnoresInactiveAssessment(t *testing.T) {
	db := setupTestDB(t)
	record := seedAssessment(t, db, 10, 50)
	require.NoError(t, db.Model(record).Update("is_active", false).Error)

	_, err := RecordSubmission(1, 10, map[int]string{0: "Paris"})
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}
