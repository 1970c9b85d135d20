package certificateRoutes

import (
	certificateController "upskillr/controllers/certificate"
	"upskillr/middleware"
	assessmentValidator "upskillr/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up certificate issuance, retrieval and public verification
func SetupCertificateRoutes(app *fiber.App) {
	certificateGroup := app.Group("/certificates")

	// Issue (or fetch the already issued) certificate for a completed course
	certificateGroup.Get("/course/:courseId/certificate", middleware.JWTMiddleware, assessmentValidator.CourseIDParam(), certificateController.IssueOrFetchCertificate)

	// Learner's own certificate for a course
	certificateGroup.Get("/my/:courseId", middleware.JWTMiddleware, assessmentValidator.CourseIDParam(), certificateController.GetMyCertificate)

	// Public verification endpoint, no auth
	certificateGroup.Get("/:certificateId", certificateController.VerifyCertificate)
}
