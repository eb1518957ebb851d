package controllers

import (
	"errors"
	"log"

	"lmsadmin/middleware"
	"lmsadmin/upstream"

	"github.com/gofiber/fiber/v2"
)

// HomepageController edits the public homepage document through the
// upstream API. Admin only.
type HomepageController struct {
	Api *upstream.Client
}

// GetContent fetches the homepage document for editing.
func (ctrl *HomepageController) GetContent(c *fiber.Ctx) error {
	token := middleware.TokenFromCtx(c)

	content, err := ctrl.Api.GetHomepageContent(token)
	if err != nil {
		return homepageErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Homepage content fetched successfully!", content)
}

// UpdateContent saves the homepage document.
func (ctrl *HomepageController) UpdateContent(c *fiber.Ctx) error {
	token := middleware.TokenFromCtx(c)

	reqData, ok := c.Locals("validatedHomepage").(*upstream.HomepageContent)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Api.UpdateHomepageContent(token, reqData); err != nil {
		return homepageErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Homepage content updated successfully!", reqData)
}

func homepageErrorResponse(c *fiber.Ctx, err error) error {
	var fieldErrs upstream.FieldErrors
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again!", nil)
	case errors.Is(err, upstream.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin only!", nil)
	case errors.As(err, &fieldErrs):
		return middleware.ValidationErrorResponse(c, fieldErrs)
	}
	log.Printf("Upstream call failed: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reach the LMS API!", nil)
}
