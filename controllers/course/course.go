package controllers

import (
	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	courseModels "upskillr/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new draft course owned by the calling instructor
func CreateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Category     string `json:"category"`
		Duration     int64  `json:"duration"`
		ThumbnailURL string `json:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Duration:     reqData.Duration,
		ThumbnailURL: reqData.ThumbnailURL,
		InstructorID: userId,
		Status:       "DRAFT",
		IsPublished:  false,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// requireOwnedCourse loads a course and checks the caller owns it
func requireOwnedCourse(c *fiber.Ctx, courseID int) (*courseModels.Course, error) {
	userId := c.Locals("userId").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != userId {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}
	return &course, nil
}

// UpdateCourse updates an owned course
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Category     string `json:"category"`
		Duration     int64  `json:"duration"`
		ThumbnailURL string `json:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.Duration = reqData.Duration
	course.ThumbnailURL = reqData.ThumbnailURL

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// PublishCourse marks an owned course as published and active
func PublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	course.Status = "ACTIVE"
	course.IsPublished = true

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// DeleteCourse soft-deletes an owned course
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	course.IsDeleted = true
	course.Status = "INACTIVE"

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetMyCourses lists courses owned by the calling instructor
func GetMyCourses(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetAllCourses lists published courses for learners, paginated
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ? AND status = ?", false, true, "ACTIVE")

	if !ok {
		var courses []courseModels.Course
		if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"courses": courses,
		})
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a course with its curriculum and instructor name
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var instructor models.User
	database.Database.Db.Where("id = ?", course.InstructorID).First(&instructor)

	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&sections)

	type SectionWithLessons struct {
		courseModels.Section
		Lessons []courseModels.Lesson `json:"lessons"`
	}

	curriculum := make([]SectionWithLessons, len(sections))
	totalLessons := 0
	for i, section := range sections {
		var lessons []courseModels.Lesson
		database.Database.Db.Where("section_id = ? AND is_deleted = ? AND is_published = ?", section.ID, false, true).
			Order("order_index asc").Find(&lessons)
		curriculum[i] = SectionWithLessons{Section: section, Lessons: lessons}
		totalLessons += len(lessons)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":          course,
		"instructor_name": instructor.Name,
		"curriculum":      curriculum,
		"total_lessons":   totalLessons,
	})
}
