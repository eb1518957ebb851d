package controllers

import (
	"errors"

	"lmsadmin/config"
	"lmsadmin/draft"
	"lmsadmin/middleware"
	courseModels "lmsadmin/models/course"
	"lmsadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// Media tab handlers. Images land in the draft as data-URI payloads; the
// upstream API receives them embedded in the course document on submit.

// UploadThumbnail stages a new thumbnail, refusing the add once four
// thumbnails are active
func (ctrl *EditorController) UploadThumbnail(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}

	file, fileErr := c.FormFile("image")
	if fileErr != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "An image file is required!", nil)
	}

	payload, readErr := utils.ReadImageUpload(file)
	if readErr != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"image": readErr.Error()})
	}

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.StageThumbnail(d, payload, config.AppConfig.MaxThumbnails)
	}); updateErr != nil {
		return mediaErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thumbnail staged successfully!", ctrl.draftView(e, sess))
}

// RemoveThumbnail removes a thumbnail; persisted images stay restorable
// until submit, staged ones are dropped outright
func (ctrl *EditorController) RemoveThumbnail(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	index := c.Locals("thumbnailIndex").(int)

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.RemoveThumbnail(d, index)
	}); updateErr != nil {
		return mediaErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail removed!", ctrl.draftView(e, sess))
}

// RestoreThumbnail undoes the removal of a persisted thumbnail
func (ctrl *EditorController) RestoreThumbnail(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	index := c.Locals("thumbnailIndex").(int)

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.RestoreThumbnail(d, index)
	}); updateErr != nil {
		return mediaErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail restored!", ctrl.draftView(e, sess))
}

// UploadBanner stages the banner image, replacing any staged one
func (ctrl *EditorController) UploadBanner(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}

	file, fileErr := c.FormFile("image")
	if fileErr != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "An image file is required!", nil)
	}

	payload, readErr := utils.ReadImageUpload(file)
	if readErr != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"image": readErr.Error()})
	}

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		draft.SetBanner(d, payload)
		return nil
	}); updateErr != nil {
		return mediaErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Banner staged successfully!", ctrl.draftView(e, sess))
}

// RemoveBanner removes the banner image
func (ctrl *EditorController) RemoveBanner(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.RemoveBanner(d)
	}); updateErr != nil {
		return mediaErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Banner removed!", ctrl.draftView(e, sess))
}

// RestoreBanner undoes the removal of a persisted banner
func (ctrl *EditorController) RestoreBanner(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.RestoreBanner(d)
	}); updateErr != nil {
		return mediaErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Banner restored!", ctrl.draftView(e, sess))
}

func mediaErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, draft.ErrImageNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Image not found!", nil)
	case errors.Is(err, draft.ErrThumbnailCap):
		return middleware.ValidationErrorResponse(c, map[string]string{"thumbnails": err.Error()})
	}
	return middleware.ValidationErrorResponse(c, map[string]string{"media": err.Error()})
}
