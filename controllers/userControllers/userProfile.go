package userControllers

import (
	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	assessmentModels "upskillr/models/assessment"
	courseModels "upskillr/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's profile including coin balance
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile updates the caller's display fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := new(struct {
		Name         string `json:"name"`
		Headline     string `json:"headline"`
		Bio          string `json:"bio"`
		ProfileImage string `json:"profileImage"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	user.Headline = reqData.Headline
	user.Bio = reqData.Bio
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// GetCoinBalance returns the caller's current coin balance
func GetCoinBalance(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coin balance fetched!", fiber.Map{
		"balance": user.CoinBalance,
	})
}

// GetCoinHistory returns the caller's coin ledger, newest first
func GetCoinHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.CoinTransaction{}).Where("user_id = ?", userID)

	var total int64
	db.Count(&total)

	var transactions []models.CoinTransaction
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coin history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coin history fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetUserCertificates lists all certificates earned by the caller
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithCourse struct {
		assessmentModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	var certificates []assessmentModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{Certificate: cert, CourseTitle: course.Title}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}
