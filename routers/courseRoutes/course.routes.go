package courseRoutes

import (
	controllers "upskillr/controllers/course"
	"upskillr/middleware"
	validators "upskillr/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details (published courses)
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Lesson completion and progress tracking
	userGroup.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.CourseIDParam(), validators.LessonIDParam(), controllers.CompleteLesson)
	userGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.GetUserProgress)

	// Downloadable resources and coin unlocks
	userGroup.Get("/:course_id/resources", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.ListResources)
	userGroup.Post("/:course_id/resource/:resource_id/unlock", middleware.JWTMiddleware, validators.CourseIDParam(), validators.ResourceIDParam(), controllers.UnlockResource)
}
