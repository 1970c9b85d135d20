package controllers

import (
	"log"

	"upskillr/config"
	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	courseModels "upskillr/models/course"
	"upskillr/utils"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is active
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	var totalLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).Count(&totalLessons)

	enrollment := courseModels.Enrollment{
		UserID:       userID,
		CourseID:     uint(courseID),
		Status:       "ENROLLED",
		TotalLessons: int(totalLessons),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// Enrollment coin bonus
	if err := utils.AwardCoins(tx, &user, uint(config.AppConfig.EnrollCoinBonus), models.CoinReasonEnrollment, "course", course.ID, course.Title); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	go func(email, name, title string) {
		if err := utils.SendEnrollmentEmail(email, name, title); err != nil {
			log.Printf("Error sending enrollment email to %s: %v", email, err)
		}
	}(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetUserEnrollmentsList gets all enrollments for the current user
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle       string `json:"course_title"`
		CourseDescription string `json:"course_description"`
		CourseThumbnail   string `json:"course_thumbnail"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:        e,
			CourseTitle:       course.Title,
			CourseDescription: course.Description,
			CourseThumbnail:   course.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
