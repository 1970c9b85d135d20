package authController

import (
	"log"
	"time"

	"upskillr/config"
	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	"upskillr/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name" validate:"required,min=2,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=LEARNER INSTRUCTOR"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role := reqData.Role
	if role == "" {
		role = "LEARNER"
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Role:     role,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to signup user!", nil)
	}

	// Create verification OTP and send it out of band
	otp := models.OTP{
		UserID:    newUser.ID,
		Code:      utils.GenerateOTP(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := db.Create(&otp).Error; err != nil {
		log.Printf("Error creating verification OTP: %v", err)
	} else {
		go func(email, code string) {
			if err := utils.SendVerificationEmail(email, code); err != nil {
				log.Printf("Error sending verification email to %s: %v", email, err)
			}
		}(newUser.Email, otp.Code)
	}

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func VerifyOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var otp models.OTP
	if err := db.Where("user_id = ? AND code = ? AND is_used = ?", user.ID, reqData.Code, false).
		Order("created_at desc").First(&otp).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification code!", nil)
	}

	if time.Now().After(otp.ExpiresAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code has expired!", nil)
	}

	tx := db.Begin()
	if err := tx.Model(&otp).Update("is_used", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify email!", nil)
	}
	if err := tx.Model(&user).Update("is_email_verified", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify email!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully!", nil)
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	if reqData.Email == "" || reqData.Password == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password are required!", nil)
	}

	var user models.User
	result := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	now := time.Now()
	database.Database.Db.Model(&user).Update("last_login", &now)

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
