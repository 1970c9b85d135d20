package controllers

import (
	"encoding/json"

	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	assessmentModels "upskillr/models/assessment"
	courseModels "upskillr/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssessmentInput is the validated internal shape every create/update path
// funnels into, whether it arrived structured or through the bulk importer.
type AssessmentInput struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	DurationMinutes   int             `json:"duration_minutes"`
	TotalMarks        int             `json:"total_marks"`
	PassingPercentage int             `json:"passing_percentage"`
	Questions         []QuestionInput `json:"questions"`
}

// QuestionInput is one question of an AssessmentInput
type QuestionInput struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// applyDefaults fills the spec'd defaults: duration 15 minutes, total marks
// two per question, passing threshold 50 percent.
func (in *AssessmentInput) applyDefaults() {
	if in.DurationMinutes <= 0 {
		in.DurationMinutes = 15
	}
	if in.TotalMarks <= 0 {
		in.TotalMarks = len(in.Questions) * 2
	}
	if in.PassingPercentage <= 0 {
		in.PassingPercentage = 50
	}
}

// validate checks the invariants shared by both create paths
func (in *AssessmentInput) validate() (string, bool) {
	if in.Title == "" {
		return "Title is required!", false
	}
	if len(in.Questions) == 0 {
		return "Questions are required and must be a non-empty array!", false
	}
	for i, q := range in.Questions {
		if q.Text == "" {
			return questionError(i, "is missing its text"), false
		}
		if len(q.Options) != 4 {
			return questionError(i, "must have exactly 4 options"), false
		}
		if q.CorrectAnswer == "" {
			return questionError(i, "is missing its correct answer"), false
		}
	}
	return "", true
}

// persistAssessment writes the assessment with its questions and points the
// course's denormalized assessment reference at it (last write wins).
func persistAssessment(userID uint, course *courseModels.Course, in *AssessmentInput) (*assessmentModels.Assessment, error) {
	record := assessmentModels.Assessment{
		CourseID:          course.ID,
		Title:             in.Title,
		Description:       in.Description,
		DurationMinutes:   in.DurationMinutes,
		TotalMarks:        in.TotalMarks,
		PassingPercentage: in.PassingPercentage,
		CreatedBy:         userID,
		IsActive:          true,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for i, q := range in.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		question := assessmentModels.Question{
			AssessmentID:  record.ID,
			Text:          q.Text,
			Options:       optionsJSON,
			CorrectAnswer: q.CorrectAnswer,
			OrderIndex:    i,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		record.Questions = append(record.Questions, question)
	}

	if err := tx.Model(course).Update("assessment_id", record.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	tx.Commit()

	return &record, nil
}

// CreateAssessment creates an assessment from the structured request shape
func CreateAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		CourseID uint `json:"courseId"`
		AssessmentInput
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if msg, valid := reqData.validate(); !valid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, msg, nil)
	}
	reqData.applyDefaults()

	record, err := persistAssessment(userID, &course, &reqData.AssessmentInput)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assessment created successfully!", record)
}

// UploadAssessmentJSON creates an assessment from a loosely-shaped import
// payload (inconsistent key names, string-typed numbers). The normalizer is
// the only code that ever sees the ambiguous shape.
func UploadAssessmentJSON(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	payload := make(map[string]interface{})
	if err := c.BodyParser(&payload); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	courseID := pickUint(payload, "courseId", "course_id")
	if courseID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	input, err := NormalizeImportPayload(payload)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	input.applyDefaults()

	record, err := persistAssessment(userID, &course, input)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assessment imported successfully!", record)
}

// ListCourseAssessments returns the active assessments for a course with the
// creator's display name attached
func ListCourseAssessments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var assessments []assessmentModels.Assessment
	if err := database.Database.Db.Where("course_id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		Preload("Questions", "is_deleted = ?", false).
		Order("created_at desc").Find(&assessments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessments!", nil)
	}

	type AssessmentWithCreator struct {
		assessmentModels.Assessment
		CreatorName string `json:"creator_name"`
	}

	result := make([]AssessmentWithCreator, len(assessments))
	for i, a := range assessments {
		var creator models.User
		database.Database.Db.Where("id = ?", a.CreatedBy).First(&creator)
		result[i] = AssessmentWithCreator{Assessment: a, CreatorName: creator.Name}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessments fetched successfully!", fiber.Map{
		"assessments": result,
	})
}

// GetAssessment fetches one assessment by ID, active or not
func GetAssessment(c *fiber.Ctx) error {
	assessmentID := c.Locals("assessmentID").(int)

	var record assessmentModels.Assessment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).
		Preload("Questions", "is_deleted = ?", false).
		First(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment fetched successfully!", record)
}

// UpdateAssessment replaces an assessment's fields and questions with
// server-side re-validation
func UpdateAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assessmentID := c.Locals("assessmentID").(int)

	var record assessmentModels.Assessment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).First(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}
	if record.CreatedBy != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this assessment!", nil)
	}

	input := new(AssessmentInput)
	if err := c.BodyParser(input); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if msg, valid := input.validate(); !valid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, msg, nil)
	}
	input.applyDefaults()

	record.Title = input.Title
	record.Description = input.Description
	record.DurationMinutes = input.DurationMinutes
	record.TotalMarks = input.TotalMarks
	record.PassingPercentage = input.PassingPercentage

	tx := database.Database.Db.Begin()
	if err := tx.Save(&record).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assessment!", nil)
	}

	// Full-document patch: replace the question set
	if err := tx.Model(&assessmentModels.Question{}).Where("assessment_id = ?", record.ID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assessment!", nil)
	}

	record.Questions = nil
	for i, q := range input.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assessment!", nil)
		}
		question := assessmentModels.Question{
			AssessmentID:  record.ID,
			Text:          q.Text,
			Options:       optionsJSON,
			CorrectAnswer: q.CorrectAnswer,
			OrderIndex:    i,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assessment!", nil)
		}
		record.Questions = append(record.Questions, question)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment updated successfully!", record)
}

// DeleteAssessment soft-deletes an assessment by flipping isActive. The
// record stays so historical submissions remain dereferenceable.
func DeleteAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assessmentID := c.Locals("assessmentID").(int)

	var record assessmentModels.Assessment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assessment!", nil)
	}
	if record.CreatedBy != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this assessment!", nil)
	}

	if err := database.Database.Db.Model(&record).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment deactivated successfully!", nil)
}
