package assessmentRoutes

import (
	assessmentController "upskillr/controllers/assessment"
	"upskillr/middleware"
	assessmentValidator "upskillr/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentRoutes sets up assessment authoring, lookup and submission routes
func SetupAssessmentRoutes(app *fiber.App) {
	assessmentGroup := app.Group("/assessments")

	// Instructor authoring
	assessmentGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), assessmentController.CreateAssessment)
	assessmentGroup.Post("/upload-json", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), assessmentController.UploadAssessmentJSON)

	// Lookup by course must be registered before the /:id wildcard
	assessmentGroup.Get("/course/:courseId", middleware.JWTMiddleware, assessmentValidator.CourseIDParam(), assessmentController.ListCourseAssessments)

	// Submission ledger
	assessmentGroup.Get("/submission/:courseId", middleware.JWTMiddleware, assessmentValidator.CourseIDParam(), assessmentController.CheckSubmission)
	assessmentGroup.Post("/submit", middleware.JWTMiddleware, assessmentController.SubmitAssessment)

	// Public assessment fetch (quiz player loads questions without auth)
	assessmentGroup.Get("/:id", assessmentValidator.AssessmentIDParam(), assessmentController.GetAssessment)

	assessmentGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), assessmentValidator.AssessmentIDParam(), assessmentController.UpdateAssessment)
	assessmentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), assessmentValidator.AssessmentIDParam(), assessmentController.DeleteAssessment)
}
