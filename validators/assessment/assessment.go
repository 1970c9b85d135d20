package assessmentValidator

import (
	"strconv"
	"strings"

	"upskillr/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseIDParam validates the :courseId route parameter
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("courseId"))
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid courseId in the URL!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// AssessmentIDParam validates the :id route parameter
func AssessmentIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assessment ID in the URL!", nil)
		}
		c.Locals("assessmentID", id)
		return c.Next()
	}
}
