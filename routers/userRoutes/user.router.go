package userRoutes

import (
	courseControllers "upskillr/controllers/course"
	"upskillr/controllers/userControllers"
	"upskillr/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile, coin and learner dashboard routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userControllers.UpdateProfile)

	userGroup.Get("/coins", middleware.JWTMiddleware, userControllers.GetCoinBalance)
	userGroup.Get("/coins/history", middleware.JWTMiddleware, userControllers.GetCoinHistory)

	userGroup.Get("/enrollments", middleware.JWTMiddleware, courseControllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, userControllers.GetUserCertificates)
}
