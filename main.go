package main

import (
	"upskillr/config"
	quizController "upskillr/controllers/quiz"
	"upskillr/database"
	assessmentRoutes "upskillr/routers/assessmentRoutes"
	authRoutes "upskillr/routers/authRoutes"
	certificateRoutes "upskillr/routers/certificateRoutes"
	courseRoutes "upskillr/routers/courseRoutes"
	quizRoutes "upskillr/routers/quizRoutes"
	userProfileRoutes "upskillr/routers/userRoutes"
	"upskillr/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupInstructorCourseRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	quizRoutes.SetupQuizRoutes(app)

	// Force-submit quiz sessions whose timers have lapsed
	utils.InitializeQuizSessionScheduler(quizController.Sessions)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
