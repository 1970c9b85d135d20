package controllers

import (
	"time"

	"upskillr/config"
	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	courseModels "upskillr/models/course"
	"upskillr/utils"

	"github.com/gofiber/fiber/v2"
)

// CompleteLesson marks a lesson completed for the caller. Idempotent: a
// repeated completion neither duplicates the record nor re-awards coins.
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Check lesson exists and is published
	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", lessonID, courseID, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var existingCompletion courseModels.LessonCompletion
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&existingCompletion).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson already completed!", existingCompletion)
	}

	completion := courseModels.LessonCompletion{
		UserID:   userID,
		CourseID: uint(courseID),
		LessonID: uint(lessonID),
		Status:   "COMPLETED",
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&completion).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson complete!", nil)
	}

	if err := utils.AwardCoins(tx, &user, uint(config.AppConfig.LessonCoinReward), models.CoinReasonLessonComplete, "lesson", lesson.ID, lesson.Title); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson complete!", nil)
	}
	tx.Commit()

	updateEnrollmentProgress(userID, uint(courseID), &user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked complete!", completion)
}

// GetUserProgress gets the user's progress in a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Completed lesson IDs
	var completions []courseModels.LessonCompletion
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&completions)

	completedIDs := make([]uint, len(completions))
	for i, cc := range completions {
		completedIDs[i] = cc.LessonID
	}

	// Section-wise progress
	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&sections)

	type SectionProgress struct {
		SectionID        uint    `json:"section_id"`
		SectionTitle     string  `json:"section_title"`
		TotalLessons     int64   `json:"total_lessons"`
		CompletedLessons int64   `json:"completed_lessons"`
		Progress         float64 `json:"progress"`
	}

	sectionProgress := make([]SectionProgress, len(sections))
	for i, section := range sections {
		var totalLessons int64
		var completedLessons int64

		database.Database.Db.Model(&courseModels.Lesson{}).
			Where("section_id = ? AND is_deleted = ? AND is_published = ?", section.ID, false, true).Count(&totalLessons)
		database.Database.Db.Model(&courseModels.LessonCompletion{}).
			Joins("JOIN lessons ON lesson_completions.lesson_id = lessons.id").
			Where("lesson_completions.user_id = ? AND lessons.section_id = ? AND lesson_completions.is_deleted = ?", userID, section.ID, false).
			Count(&completedLessons)

		progress := float64(0)
		if totalLessons > 0 {
			progress = float64(completedLessons) / float64(totalLessons) * 100
		}

		sectionProgress[i] = SectionProgress{
			SectionID:        section.ID,
			SectionTitle:     section.Title,
			TotalLessons:     totalLessons,
			CompletedLessons: completedLessons,
			Progress:         progress,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":       enrollment,
		"completed_ids":    completedIDs,
		"section_progress": sectionProgress,
	})
}

// updateEnrollmentProgress recomputes enrollment progress after a lesson
// completion. Reaching 100% marks the course completed, unlocks the
// certificate and awards the completion coin bonus once.
func updateEnrollmentProgress(userID uint, courseID uint, user *models.User) {
	var totalLessons int64
	var completedLessons int64

	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).Count(&totalLessons)
	database.Database.Db.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Count(&completedLessons)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	alreadyCompleted := enrollment.Status == "COMPLETED"

	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)

	if totalLessons > 0 {
		enrollment.Progress = float64(completedLessons) / float64(totalLessons) * 100
	}

	if enrollment.Progress >= 100 {
		enrollment.Status = "COMPLETED"
		enrollment.CertificateUnlocked = true
		now := time.Now()
		enrollment.CompletedAt = &now
	} else if enrollment.Progress > 0 {
		enrollment.Status = "IN_PROGRESS"
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(&enrollment).Error; err != nil {
		tx.Rollback()
		return
	}

	// Course completion bonus, first time only
	if enrollment.Status == "COMPLETED" && !alreadyCompleted {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", courseID).First(&course)
		if err := utils.AwardCoins(tx, user, uint(config.AppConfig.CompleteCoinBonus), models.CoinReasonCourseComplete, "course", course.ID, course.Title); err != nil {
			tx.Rollback()
			return
		}
	}
	tx.Commit()
}
