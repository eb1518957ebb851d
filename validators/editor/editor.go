package editorValidator

import (
	"encoding/json"
	"strconv"
	"strings"

	"lmsadmin/draft"
	"lmsadmin/middleware"
	courseModels "lmsadmin/models/course"

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

// StepParam validates the :step route param against the editor's tabs.
func StepParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		step := draft.Step(strings.TrimSpace(c.Params("step")))
		if !draft.ValidStep(step) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown editor tab!", nil)
		}

		c.Locals("step", step)
		return c.Next()
	}
}

// FieldUpdate validates a single top-level draft field update
func FieldUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Field string          `json:"field"`
			Value json.RawMessage `json:"value"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Field = strings.TrimSpace(reqData.Field)
		if reqData.Field == "" {
			errors["field"] = "Field name is required!"
		}
		if len(reqData.Value) == 0 {
			errors["value"] = "Field value is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFieldUpdate", reqData)
		return c.Next()
	}
}

// ModulePayload validates a module create/update request
func ModulePayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Status      string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Status = strings.TrimSpace(reqData.Status)

		if reqData.Title == "" {
			errors["title"] = "Module title is required!"
		}

		if reqData.Status != "" && reqData.Status != courseModels.StatusUnlocked && reqData.Status != courseModels.StatusLocked {
			errors["status"] = "Status must be unlocked or locked!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// LessonPayload validates a lesson create/update request. The quiz check
// mirrors the disabled add button in the UI: a quiz lesson without a
// resolved quiz reference never reaches the draft, even when the affordance
// is bypassed.
func LessonPayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(draft.LessonInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Lesson title is required!"
		}

		if !reqData.Type.Valid() {
			errors["type"] = "Unknown lesson type!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if reqData.Type == courseModels.LessonQuiz && (reqData.Quiz == nil || reqData.Quiz.ID == "") {
			errors["quiz"] = "Select a quiz before saving a quiz lesson!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// ReorderPayload validates a lesson reorder request
func ReorderPayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			From *int `json:"from"`
			To   *int `json:"to"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.From == nil || *reqData.From < 0 {
			errors["from"] = "A valid source index is required!"
		}
		if reqData.To == nil || *reqData.To < 0 {
			errors["to"] = "A valid target index is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("reorderFrom", *reqData.From)
		c.Locals("reorderTo", *reqData.To)
		return c.Next()
	}
}

// ThumbnailIndex validates the :index route param for thumbnail operations.
func ThumbnailIndex() fiber.Handler {
	return func(c *fiber.Ctx) error {
		indexStr := strings.TrimSpace(c.Params("index"))
		index, err := strconv.Atoi(indexStr)
		if err != nil || index < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid thumbnail index!", nil)
		}

		c.Locals("thumbnailIndex", index)
		return c.Next()
	}
}
