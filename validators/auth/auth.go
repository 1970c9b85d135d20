package authValidator

import (
	"strings"

	"upskillr/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name" validate:"required,min=2,max=100"`
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required,min=8"`
			Role     string `json:"role" validate:"omitempty,oneof=LEARNER INSTRUCTOR"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name must be between 2 and 100 characters!"
				case "Email":
					errors["email"] = "A valid email address is required!"
				case "Password":
					errors["password"] = "Password must be at least 8 characters long!"
				case "Role":
					errors["role"] = "Role must be LEARNER or INSTRUCTOR!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}
