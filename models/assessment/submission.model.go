package assessment

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission statuses
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Submission records exactly one graded quiz attempt per (user, course).
// The composite unique index is the backstop against a duplicate-submit
// race; application code pre-checks but the index decides.
type Submission struct {
	gorm.Model
	UserID         uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_submission_user_course"`
	CourseID       uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_submission_user_course"`
	AssessmentID   uint           `json:"assessment_id" gorm:"index;not null"`
	Answers        datatypes.JSON `json:"answers"` // question index -> selected option text
	Score          int            `json:"score"`
	TotalMarks     int            `json:"total_marks"` // score x 2
	Percentage     int            `json:"percentage"`  // 0-100
	Status         string         `json:"status" gorm:"type:varchar(10)"` // PASS, FAIL
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
}
