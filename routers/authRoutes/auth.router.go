package authRoutes

import (
	authController "upskillr/controllers/auth"
	authValidator "upskillr/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, login and email verification routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/verify-otp", authController.VerifyOTP)
	authGroup.Post("/login", authController.Login)
}
