package courseValidator

import (
	"strings"

	"upskillr/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			ContentType string `json:"content_type"`
			TextContent string `json:"text_content"`
			VideoURL    string `json:"video_url"`
			DurationMin int    `json:"duration_min"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.ToUpper(strings.TrimSpace(reqData.ContentType))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.ContentType == "" {
			reqData.ContentType = "VIDEO"
		} else if reqData.ContentType != "VIDEO" && reqData.ContentType != "TEXT" {
			errors["content_type"] = "Content type must be VIDEO or TEXT!"
		}

		if reqData.ContentType == "VIDEO" && strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required for VIDEO lessons!"
		}
		if reqData.ContentType == "TEXT" && strings.TrimSpace(reqData.TextContent) == "" {
			errors["text_content"] = "Text content is required for TEXT lessons!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func AddResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			FileURL     string `json:"file_url"`
			FileType    string `json:"file_type"`
			CoinCost    uint   `json:"coin_cost"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.FileType = strings.ToUpper(strings.TrimSpace(reqData.FileType))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.FileURL) == "" {
			errors["file_url"] = "File URL is required!"
		}
		if reqData.FileType == "" {
			reqData.FileType = "PDF"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}
