package playerValidator

import (
	"strings"

	"lmsadmin/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route param and stashes it.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// AnswerPayload is one recorded quiz answer.
type AnswerPayload struct {
	QuestionID string `json:"questionId" validate:"required"`
	OptionID   string `json:"optionId" validate:"required"`
}

// Answer validates a quiz answer submission
func Answer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AnswerPayload
		if err := c.BodyParser(&req); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		req.QuestionID = strings.TrimSpace(req.QuestionID)
		req.OptionID = strings.TrimSpace(req.OptionID)

		if err := validator.New().Struct(req); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"answer": "Both questionId and optionId are required!"})
		}

		c.Locals("validatedAnswer", &req)
		return c.Next()
	}
}
