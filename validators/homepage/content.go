package homepageValidator

import (
	"strings"

	"lmsadmin/middleware"
	"lmsadmin/upstream"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// homepagePayload mirrors upstream.HomepageContent with validation tags.
type homepagePayload struct {
	HeroTitle    string           `json:"heroTitle" validate:"required"`
	HeroSubtitle string           `json:"heroSubtitle"`
	Sections     []sectionPayload `json:"sections" validate:"dive"`
}

type sectionPayload struct {
	Title   string `json:"title" validate:"required"`
	Body    string `json:"body"`
	Order   int    `json:"order" validate:"min=0"`
	Visible bool   `json:"visible"`
}

// Content validates a homepage update request
func Content() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req homepagePayload
		if err := c.BodyParser(&req); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		req.HeroTitle = strings.TrimSpace(req.HeroTitle)
		req.HeroSubtitle = strings.TrimSpace(req.HeroSubtitle)

		if err := validator.New().Struct(req); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"content": "Hero title and every section title are required!"})
		}

		content := &upstream.HomepageContent{
			HeroTitle:    req.HeroTitle,
			HeroSubtitle: req.HeroSubtitle,
		}
		for _, s := range req.Sections {
			content.Sections = append(content.Sections, upstream.HomepageSection{
				Title:   strings.TrimSpace(s.Title),
				Body:    s.Body,
				Order:   s.Order,
				Visible: s.Visible,
			})
		}

		c.Locals("validatedHomepage", content)
		return c.Next()
	}
}
