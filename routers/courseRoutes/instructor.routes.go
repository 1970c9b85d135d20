package courseRoutes

import (
	controllers "upskillr/controllers/course"
	"upskillr/middleware"
	validators "upskillr/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorCourseRoutes sets up all instructor course authoring routes
func SetupInstructorCourseRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor/course", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"))

	// Course CRUD
	instructorGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	instructorGroup.Get("/list", controllers.GetMyCourses)
	instructorGroup.Put("/:id", validators.CourseID(), validators.CreateCourse(), controllers.UpdateCourse)
	instructorGroup.Delete("/:id", validators.CourseID(), controllers.DeleteCourse)
	instructorGroup.Post("/:id/publish", validators.CourseID(), controllers.PublishCourse)

	// Section management
	instructorGroup.Post("/:id/section", validators.CourseID(), validators.CreateSection(), controllers.CreateSection)
	instructorGroup.Put("/:course_id/section/:section_id", validators.CourseIDParam(), validators.SectionIDParam(), validators.CreateSection(), controllers.UpdateSection)
	instructorGroup.Delete("/:course_id/section/:section_id", validators.CourseIDParam(), validators.SectionIDParam(), controllers.DeleteSection)

	// Lesson management
	instructorGroup.Post("/:course_id/section/:section_id/lesson", validators.CourseIDParam(), validators.SectionIDParam(), validators.CreateLesson(), controllers.CreateLesson)
	instructorGroup.Put("/:course_id/lesson/:lesson_id", validators.CourseIDParam(), validators.LessonIDParam(), validators.CreateLesson(), controllers.UpdateLesson)
	instructorGroup.Delete("/:course_id/lesson/:lesson_id", validators.CourseIDParam(), validators.LessonIDParam(), controllers.DeleteLesson)

	// Resource management
	instructorGroup.Post("/:id/resource", validators.CourseID(), validators.AddResource(), controllers.AddResource)
	instructorGroup.Delete("/:course_id/resource/:resource_id", validators.CourseIDParam(), validators.ResourceIDParam(), controllers.DeleteResource)
}
