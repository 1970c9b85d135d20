package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"upskillr/database"
	"upskillr/middleware"
	assessmentModels "upskillr/models/assessment"
	"upskillr/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	ErrDuplicateSubmission = errors.New("You have already submitted this assessment!")
	ErrAssessmentNotFound  = errors.New("Assessment not found")
)

// SubmissionOutcome is the minimal result returned to the caller after a
// graded submit; the full row is never echoed back.
type SubmissionOutcome struct {
	Score      int    `json:"score"`
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
}

// RecordSubmission grades and persists one attempt. The score is recomputed
// here from the stored correct answers; nothing client-supplied is trusted.
// The unique index on (user_id, course_id) backstops the duplicate pre-check
// so a racing retry gets the same duplicate error, not a second row.
func RecordSubmission(userID, courseID uint, answers map[int]string) (*SubmissionOutcome, error) {
	db := database.Database.Db

	var existing assessmentModels.Submission
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return nil, ErrDuplicateSubmission
	}

	// The active assessment for the course decides the answer key; the
	// assessmentId a client may have sent is deliberately ignored.
	var record assessmentModels.Assessment
	if err := db.Where("course_id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		Order("created_at desc").First(&record).Error; err != nil {
		return nil, ErrAssessmentNotFound
	}

	var questions []assessmentModels.Question
	if err := db.Where("assessment_id = ? AND is_deleted = ?", record.ID, false).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	correct := make([]string, len(questions))
	for i, q := range questions {
		correct[i] = q.CorrectAnswer
	}

	score := quiz.Score(correct, answers)
	percentage := quiz.Percentage(score, len(questions))
	status := quiz.Status(percentage, record.PassingPercentage)

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	submission := assessmentModels.Submission{
		UserID:         userID,
		CourseID:       courseID,
		AssessmentID:   record.ID,
		Answers:        answersJSON,
		Score:          score,
		TotalMarks:     score * 2,
		Percentage:     percentage,
		Status:         status,
		TotalQuestions: len(questions),
		CorrectAnswers: score,
	}

	if err := db.Create(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	return &SubmissionOutcome{Score: score, Percentage: percentage, Status: status}, nil
}

// SubmitAssessment handles POST /assessments/submit. Legacy clients still
// send score/percentage/status alongside the answers; those fields are
// accepted and ignored.
func SubmitAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		CourseID uint              `json:"courseId"`
		Answers  map[string]string `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.CourseID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required!", nil)
	}

	// Answer keys arrive as JSON object keys, i.e. strings
	answers := make(map[int]string, len(reqData.Answers))
	for key, option := range reqData.Answers {
		index, err := strconv.Atoi(key)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answer keys must be question indices!", nil)
		}
		answers[index] = option
	}

	outcome, err := RecordSubmission(userID, reqData.CourseID, answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateSubmission):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, ErrDuplicateSubmission.Error(), nil)
		case errors.Is(err, ErrAssessmentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, ErrAssessmentNotFound.Error(), nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assessment!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment submitted successfully!", outcome)
}

// CheckSubmission reports whether the caller already submitted for a course,
// with a summary projection used to block a retake before it starts
func CheckSubmission(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var submission assessmentModels.Submission
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No submission yet.", fiber.Map{
			"submitted": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission found.", fiber.Map{
		"submitted":      true,
		"score":          submission.Score,
		"percentage":     submission.Percentage,
		"status":         submission.Status,
		"submittedAt":    submission.CreatedAt,
		"totalQuestions": submission.TotalQuestions,
		"correctAnswers": submission.CorrectAnswers,
	})
}
