package controllers

import (
	"encoding/json"
	"errors"
	"log"

	assessmentController "upskillr/controllers/assessment"
	"upskillr/database"
	"upskillr/middleware"
	assessmentModels "upskillr/models/assessment"
	"upskillr/quiz"

	"github.com/gofiber/fiber/v2"
)

// Sessions is the process-wide quiz session manager. Timer expiry grades and
// persists whatever the learner answered before time ran out.
var Sessions = quiz.NewManager()

func init() {
	Sessions.AutoSubmit = func(s *quiz.Session, r *quiz.Result) {
		if _, err := assessmentController.RecordSubmission(s.UserID, s.CourseID, r.Answers); err != nil {
			log.Printf("[QUIZ] Failed to persist auto-submitted session %s: %v", s.ID, err)
		}
	}
}

// StartQuiz creates a session for the course's active assessment and starts
// the countdown. A learner who already submitted is blocked up front.
func StartQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var existing assessmentModels.Submission
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already submitted this assessment!", nil)
	}

	var record assessmentModels.Assessment
	if err := database.Database.Db.Where("course_id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		Order("created_at desc").First(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found", nil)
	}

	var questions []assessmentModels.Question
	if err := database.Database.Db.Where("assessment_id = ? AND is_deleted = ?", record.ID, false).
		Order("order_index asc").Find(&questions).Error; err != nil || len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found", nil)
	}

	sessionQuestions := make([]quiz.SessionQuestion, len(questions))
	for i, q := range questions {
		var options []string
		if err := json.Unmarshal(q.Options, &options); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start quiz!", nil)
		}
		sessionQuestions[i] = quiz.NewSessionQuestion(q.Text, options, q.CorrectAnswer)
	}

	session := quiz.NewSession(userID, uint(courseID), record.ID, record.Title,
		record.DurationMinutes, record.PassingPercentage, record.TotalMarks, sessionQuestions)

	if err := Sessions.Register(session); err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A quiz session for this course is already in progress!", nil)
	}

	if err := session.Start(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start quiz!", nil)
	}

	// Instructions data plus the first question; correct answers stay server-side
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz started!", fiber.Map{
		"sessionId":         session.ID,
		"title":             session.Title,
		"totalQuestions":    session.QuestionCount(),
		"totalMarks":        session.TotalMarks,
		"durationMinutes":   session.DurationMinutes,
		"passingPercentage": session.PassingPercentage,
		"remainingSeconds":  session.Remaining(),
	})
}

// requireOwnSession loads a session and checks it belongs to the caller
func requireOwnSession(c *fiber.Ctx) (*quiz.Session, error) {
	userID := c.Locals("userId").(uint)
	sessionID := c.Params("sessionId")

	session, ok := Sessions.Get(sessionID)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz session not found!", nil)
	}
	if session.UserID != userID {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "This quiz session is not yours!", nil)
	}
	return session, nil
}

// GetQuizState returns the live view of a session: state, countdown and the
// current question with any stored answer
func GetQuizState(c *fiber.Ctx) error {
	session, errResp := requireOwnSession(c)
	if session == nil {
		return errResp
	}

	question, index, total := session.CurrentQuestion()
	selected, _ := session.AnswerFor(index)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz state fetched!", fiber.Map{
		"state":            session.State(),
		"remainingSeconds": session.Remaining(),
		"questionIndex":    index,
		"totalQuestions":   total,
		"question":         question,
		"selected":         selected,
	})
}

// AnswerQuestion stores the selected option for a question index.
// Re-selecting overwrites.
func AnswerQuestion(c *fiber.Ctx) error {
	session, errResp := requireOwnSession(c)
	if session == nil {
		return errResp
	}

	reqData := new(struct {
		QuestionIndex int    `json:"questionIndex"`
		Option        string `json:"option"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := session.Answer(reqData.QuestionIndex, reqData.Option); err != nil {
		switch {
		case errors.Is(err, quiz.ErrIndexOutOfRange):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question index out of range!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz session is not in progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer recorded!", nil)
}

// NavigateQuiz moves the current-question pointer forward or backward,
// bounded at the ends
func NavigateQuiz(c *fiber.Ctx) error {
	session, errResp := requireOwnSession(c)
	if session == nil {
		return errResp
	}

	reqData := new(struct {
		Direction string `json:"direction"` // next, prev
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	delta := 1
	if reqData.Direction == "prev" {
		delta = -1
	}

	index, err := session.Navigate(delta)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz session is not in progress!", nil)
	}

	question, _, total := session.CurrentQuestion()
	selected, _ := session.AnswerFor(index)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Moved!", fiber.Map{
		"questionIndex":  index,
		"totalQuestions": total,
		"question":       question,
		"selected":       selected,
	})
}

// FocusLost handles the cheating signal (tab switch / window blur). The
// session is abandoned without grading; duplicate signals are no-ops.
func FocusLost(c *fiber.Ctx) error {
	session, errResp := requireOwnSession(c)
	if session == nil {
		return errResp
	}

	if err := session.Abandon(); err != nil {
		// Already terminal, nothing more to do
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz session already ended.", fiber.Map{
			"state": session.State(),
		})
	}

	log.Printf("[QUIZ] Session %s abandoned after focus-loss signal (user %d)", session.ID, session.UserID)

	return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Quiz abandoned: leaving the quiz window is not allowed.", fiber.Map{
		"state": session.State(),
	})
}

// SubmitQuiz explicitly finishes the session, grades it and persists the
// submission through the ledger
func SubmitQuiz(c *fiber.Ctx) error {
	session, errResp := requireOwnSession(c)
	if session == nil {
		return errResp
	}

	result, err := session.Submit()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz session already ended!", nil)
	}

	outcome, err := assessmentController.RecordSubmission(session.UserID, session.CourseID, result.Answers)
	if err != nil {
		switch {
		case errors.Is(err, assessmentController.ErrDuplicateSubmission):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, assessmentController.ErrAssessmentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", outcome)
}
