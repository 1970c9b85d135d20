package controllers

import (
	"time"

	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	courseModels "upskillr/models/course"
	"upskillr/utils"

	"github.com/gofiber/fiber/v2"
)

// AddResource attaches a downloadable resource to an owned course
func AddResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedResource").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		FileURL     string `json:"file_url"`
		FileType    string `json:"file_type"`
		CoinCost    uint   `json:"coin_cost"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource := courseModels.Resource{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		FileURL:     reqData.FileURL,
		FileType:    reqData.FileType,
		CoinCost:    reqData.CoinCost,
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource added successfully!", resource)
}

// DeleteResource soft-deletes a resource of an owned course
func DeleteResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	resourceID := c.Locals("resourceID").(int)

	course, errResp := requireOwnedCourse(c, courseID)
	if course == nil {
		return errResp
	}

	var resource courseModels.Resource
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", resourceID, courseID, false).
		First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	if err := database.Database.Db.Model(&resource).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}

// ListResources lists a course's resources with the caller's unlock state.
// Download URLs are only revealed for free or unlocked resources.
func ListResources(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var resources []courseModels.Resource
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	var unlocks []courseModels.ResourceUnlock
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&unlocks)

	unlocked := make(map[uint]bool, len(unlocks))
	for _, u := range unlocks {
		unlocked[u.ResourceID] = true
	}

	type ResourceView struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		FileType    string `json:"file_type"`
		CoinCost    uint   `json:"coin_cost"`
		Unlocked    bool   `json:"unlocked"`
		FileURL     string `json:"file_url,omitempty"`
	}

	result := make([]ResourceView, len(resources))
	for i, r := range resources {
		view := ResourceView{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			FileType:    r.FileType,
			CoinCost:    r.CoinCost,
			Unlocked:    r.CoinCost == 0 || unlocked[r.ID],
		}
		if view.Unlocked {
			view.FileURL = r.FileURL
		}
		result[i] = view
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": result,
	})
}

// UnlockResource spends coins to unlock a resource for the caller
func UnlockResource(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	resourceID := c.Locals("resourceID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var resource courseModels.Resource
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", resourceID, courseID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	if resource.CoinCost == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource is free!", fiber.Map{
			"file_url": resource.FileURL,
		})
	}

	var existingUnlock courseModels.ResourceUnlock
	if err := database.Database.Db.Where("user_id = ? AND resource_id = ? AND is_deleted = ?", userID, resourceID, false).First(&existingUnlock).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Resource already unlocked!", fiber.Map{
			"file_url": resource.FileURL,
		})
	}

	tx := database.Database.Db.Begin()

	if err := utils.SpendCoins(tx, &user, resource.CoinCost, models.CoinReasonResourceUnlock, "resource", resource.ID, resource.Title); err != nil {
		tx.Rollback()
		if err == utils.ErrInsufficientCoins {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Not enough coins to unlock this resource!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unlock resource!", nil)
	}

	unlock := courseModels.ResourceUnlock{
		UserID:     userID,
		ResourceID: resource.ID,
		CourseID:   uint(courseID),
		CoinsSpent: resource.CoinCost,
		UnlockedAt: time.Now(),
	}
	if err := tx.Create(&unlock).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unlock resource!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource unlocked successfully!", fiber.Map{
		"file_url":    resource.FileURL,
		"coins_spent": resource.CoinCost,
		"balance":     user.CoinBalance,
	})
}
