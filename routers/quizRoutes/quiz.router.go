package quizRoutes

import (
	quizController "upskillr/controllers/quiz"
	"upskillr/middleware"
	assessmentValidator "upskillr/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up the timed quiz session routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)

	quizGroup.Post("/:courseId/start", assessmentValidator.CourseIDParam(), quizController.StartQuiz)

	quizGroup.Get("/:sessionId", quizController.GetQuizState)
	quizGroup.Post("/:sessionId/answer", quizController.AnswerQuestion)
	quizGroup.Post("/:sessionId/navigate", quizController.NavigateQuiz)
	quizGroup.Post("/:sessionId/focus-lost", quizController.FocusLost)
	quizGroup.Post("/:sessionId/submit", quizController.SubmitQuiz)
}
