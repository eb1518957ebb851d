package controllers

import (
	"errors"
	"strings"

	"lmsadmin/draft"
	"lmsadmin/middleware"
	courseModels "lmsadmin/models/course"

	"github.com/gofiber/fiber/v2"
)

// Content tab handlers. Every mutation runs under the entry lock and ends
// with the aggregates recomputed, so the parent draft is always current;
// there is no separate save step inside the tab.

// AddModule appends a new module to the draft
func (ctrl *EditorController) AddModule(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var added courseModels.Module
	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		var opErr error
		added, opErr = draft.AddModule(d, reqData.Title, reqData.Description)
		return opErr
	}); updateErr != nil {
		return contentErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module added successfully!", fiber.Map{
		"module": added,
		"editor": ctrl.draftView(e, sess),
	})
}

// UpdateModule edits a module's title, description and status
func (ctrl *EditorController) UpdateModule(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	moduleID := strings.TrimSpace(c.Params("module_id"))

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.UpdateModule(d, moduleID, reqData.Title, reqData.Description, reqData.Status)
	}); updateErr != nil {
		return contentErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", ctrl.draftView(e, sess))
}

// DeleteModule removes a module from the draft
func (ctrl *EditorController) DeleteModule(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	moduleID := strings.TrimSpace(c.Params("module_id"))

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.DeleteModule(d, moduleID)
	}); updateErr != nil {
		return contentErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", ctrl.draftView(e, sess))
}

// AddLesson appends a lesson to a module
func (ctrl *EditorController) AddLesson(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	moduleID := strings.TrimSpace(c.Params("module_id"))

	reqData, ok := c.Locals("validatedLesson").(*draft.LessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var added courseModels.Lesson
	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		var opErr error
		added, opErr = draft.AddLesson(d, moduleID, *reqData)
		return opErr
	}); updateErr != nil {
		return contentErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", fiber.Map{
		"lesson": added,
		"editor": ctrl.draftView(e, sess),
	})
}

// UpdateLesson edits a lesson in place; switching its type strips the fields
// of the previous type
func (ctrl *EditorController) UpdateLesson(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	moduleID := strings.TrimSpace(c.Params("module_id"))
	lessonID := strings.TrimSpace(c.Params("lesson_id"))

	reqData, ok := c.Locals("validatedLesson").(*draft.LessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.UpdateLesson(d, moduleID, lessonID, *reqData)
	}); updateErr != nil {
		return contentErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", ctrl.draftView(e, sess))
}

// DeleteLesson removes a lesson from its module
func (ctrl *EditorController) DeleteLesson(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	moduleID := strings.TrimSpace(c.Params("module_id"))
	lessonID := strings.TrimSpace(c.Params("lesson_id"))

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.DeleteLesson(d, moduleID, lessonID)
	}); updateErr != nil {
		return contentErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", ctrl.draftView(e, sess))
}

// ReorderLesson moves a lesson within its module and renumbers the whole
// module back to a contiguous 1..N sequence
func (ctrl *EditorController) ReorderLesson(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	moduleID := strings.TrimSpace(c.Params("module_id"))
	from := c.Locals("reorderFrom").(int)
	to := c.Locals("reorderTo").(int)

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.ReorderLesson(d, moduleID, from, to)
	}); updateErr != nil {
		return contentErrorResponse(c, updateErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson reordered successfully!", ctrl.draftView(e, sess))
}

// contentErrorResponse maps content op failures: missing entities are 404,
// everything else is a validation failure shown inline.
func contentErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, draft.ErrModuleNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	case errors.Is(err, draft.ErrLessonNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}
	return middleware.ValidationErrorResponse(c, map[string]string{"content": err.Error()})
}
