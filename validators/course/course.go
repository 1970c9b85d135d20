package courseValidator

import (
	"regexp"
	"strconv"
	"strings"

	"upskillr/middleware"

	"github.com/gofiber/fiber/v2"
)

// paramID parses a positive integer route parameter into locals under the
// given key
func paramID(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+" in the URL!", nil)
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return paramID("id", "courseID")
}

// CourseIDParam validates the :course_id route parameter
func CourseIDParam() fiber.Handler {
	return paramID("course_id", "courseID")
}

// SectionIDParam validates the :section_id route parameter
func SectionIDParam() fiber.Handler {
	return paramID("section_id", "sectionID")
}

// LessonIDParam validates the :lesson_id route parameter
func LessonIDParam() fiber.Handler {
	return paramID("lesson_id", "lessonID")
}

// ResourceIDParam validates the :resource_id route parameter
func ResourceIDParam() fiber.Handler {
	return paramID("resource_id", "resourceID")
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Category     string `json:"category"`
			Duration     int64  `json:"duration"`
			ThumbnailURL string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		// Validate Title
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else {
			if len(reqData.Title) < 3 {
				errors["title"] = "Title must be at least 3 characters long!"
			}
			if len(reqData.Title) > 100 {
				errors["title"] = "Title must not exceed 100 characters!"
			}
			if matched, _ := regexp.MatchString(`[<>{}]`, reqData.Title); matched {
				errors["title"] = "Title contains invalid characters (e.g., <, >, {, })!"
			}
		}

		// Validate Description
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		} else if len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Pagination is optional; when either value is present both must be sane
		if reqData.Page == nil && reqData.Limit == nil {
			return c.Next()
		}

		errors := make(map[string]string)

		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
