package controllers

import (
	"upskillr/database"
	"upskillr/middleware"
	courseModels "upskillr/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateSection adds a section to an owned course
func CreateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedSection").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section := courseModels.Section{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// UpdateSection edits a section of an owned course
func UpdateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	sectionID := c.Locals("sectionID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", sectionID, courseID, false).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section.Title = reqData.Title
	section.Description = reqData.Description
	section.OrderIndex = reqData.OrderIndex

	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// DeleteSection soft-deletes a section and its lessons
func DeleteSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	sectionID := c.Locals("sectionID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", sectionID, courseID, false).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	tx := database.Database.Db.Begin()
	if err := tx.Model(&section).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}
	if err := tx.Model(&courseModels.Lesson{}).Where("section_id = ?", section.ID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// CreateLesson adds a lesson to a section of an owned course
func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	sectionID := c.Locals("sectionID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", sectionID, courseID, false).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		TextContent string `json:"text_content"`
		VideoURL    string `json:"video_url"`
		DurationMin int    `json:"duration_min"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		CourseID:    course.ID,
		SectionID:   section.ID,
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		TextContent: reqData.TextContent,
		VideoURL:    reqData.VideoURL,
		DurationMin: reqData.DurationMin,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson edits a lesson of an owned course
func UpdateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		TextContent string `json:"text_content"`
		VideoURL    string `json:"video_url"`
		DurationMin int    `json:"duration_min"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson.Title = reqData.Title
	lesson.ContentType = reqData.ContentType
	lesson.TextContent = reqData.TextContent
	lesson.VideoURL = reqData.VideoURL
	lesson.DurationMin = reqData.DurationMin
	lesson.OrderIndex = reqData.OrderIndex

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson soft-deletes a lesson of an owned course
func DeleteLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := database.Database.Db.Model(&lesson).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
