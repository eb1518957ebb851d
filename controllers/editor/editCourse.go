package controllers

import (
	"encoding/json"
	"errors"
	"log"

	"lmsadmin/draft"
	"lmsadmin/middleware"
	"lmsadmin/models"
	courseModels "lmsadmin/models/course"
	"lmsadmin/upstream"

	"github.com/gofiber/fiber/v2"
)

// EditorController mediates between the five editing tabs and the remote
// LMS API. It owns the in-memory draft sessions.
type EditorController struct {
	Api    *upstream.Client
	Drafts *draft.Store
}

// draftView is what every editor endpoint returns: the current draft plus
// the stepper state, so the client never needs a second fetch.
func (ctrl *EditorController) draftView(e *draft.Entry, sess models.Session) fiber.Map {
	snap := e.Snapshot()
	completed := e.CompletedSteps()

	steps := make([]fiber.Map, 0, len(draft.StepOrder))
	for _, step := range draft.StepOrder {
		steps = append(steps, fiber.Map{
			"step":      step,
			"valid":     draft.IsStepValid(&snap, step, sess),
			"completed": completed[step],
		})
	}

	return fiber.Map{
		"draft": snap,
		"steps": steps,
	}
}

// OpenCourse fetches the course with its category, instructor and quiz
// catalogs, resolves quiz-type lessons into display-ready references and
// seeds the editing draft.
func (ctrl *EditorController) OpenCourse(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	token := middleware.TokenFromCtx(c)
	courseID := c.Locals("courseID").(string)

	doc, err := ctrl.Api.GetCourse(token, courseID)
	if err != nil {
		return upstreamErrorResponse(c, err)
	}

	// An instructor may only open their own course.
	if sess.IsInstructor() && doc.Instructor != "" && doc.Instructor != sess.UserID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own courses!", nil)
	}

	categories, err := ctrl.Api.ListCategories(token)
	if err != nil {
		return upstreamErrorResponse(c, err)
	}
	instructors, err := ctrl.Api.ListInstructors(token)
	if err != nil {
		return upstreamErrorResponse(c, err)
	}
	quizzes, err := ctrl.Api.ListQuizzes(token)
	if err != nil {
		return upstreamErrorResponse(c, err)
	}

	labels := draft.Labels{
		Categories:  make(map[string]string, len(categories)),
		Instructors: make(map[string]string, len(instructors)),
		Quizzes:     make(map[string]string, len(quizzes)),
	}
	for _, cat := range categories {
		labels.Categories[cat.ID] = cat.Name
	}
	for _, ins := range instructors {
		labels.Instructors[ins.ID] = ins.Name
	}
	for _, q := range quizzes {
		labels.Quizzes[q.ID] = q.Title
	}

	d := draft.FromWire(doc, labels.Categories, labels.Instructors, labels.Quizzes)

	// Instructors are auto-assigned as their own course's instructor.
	if sess.IsInstructor() && (d.Instructor == nil || d.Instructor.ID == "") {
		d.Instructor = &courseModels.Reference{ID: sess.UserID, Label: sess.Name}
	}

	e := ctrl.Drafts.Put(draft.Key(courseID, sess.UserID), d, labels)
	log.Printf("Editing session opened for course %s by %s", courseID, sess.UserID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course loaded successfully!", fiber.Map{
		"editor":      ctrl.draftView(e, sess),
		"categories":  categories,
		"instructors": instructors,
		"quizzes":     quizzes,
	})
}

// GetDraft returns the live draft and stepper state.
func (ctrl *EditorController) GetDraft(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft fetched successfully!", ctrl.draftView(e, sess))
}

// UpdateDraftField merges one top-level field into the draft. A modules
// update recomputes the derived aggregates in the same step.
func (ctrl *EditorController) UpdateDraftField(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedFieldUpdate").(*struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if updateErr := e.Update(func(d *courseModels.CourseDraft) error {
		return draft.UpdateField(d, reqData.Field, reqData.Value)
	}); updateErr != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{reqData.Field: updateErr.Error()})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft updated successfully!", ctrl.draftView(e, sess))
}

// DiscardDraft drops the editing session without submitting.
func (ctrl *EditorController) DiscardDraft(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	ctrl.Drafts.Delete(draft.Key(courseID, sess.UserID))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft discarded!", nil)
}

// entry resolves the editing session for the request, or responds with the
// appropriate error.
func (ctrl *EditorController) entry(c *fiber.Ctx) (*draft.Entry, models.Session, error) {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return nil, models.Session{}, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	e, ok := ctrl.Drafts.Get(draft.Key(courseID, sess.UserID))
	if !ok {
		return nil, models.Session{}, middleware.JsonResponse(c, fiber.StatusNotFound, false, "No editing session for this course. Open it first!", nil)
	}
	return e, sess, nil
}

// upstreamErrorResponse maps upstream client errors onto the response
// taxonomy: 401 sends the client back to login, 403/404 send it away with a
// notice, field errors land in the same shape client-side validation uses.
func upstreamErrorResponse(c *fiber.Ctx, err error) error {
	var fieldErrs upstream.FieldErrors
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again!", nil)
	case errors.Is(err, upstream.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this course!", nil)
	case errors.Is(err, upstream.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.As(err, &fieldErrs):
		return middleware.ValidationErrorResponse(c, fieldErrs)
	}
	log.Printf("Upstream call failed: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reach the LMS API!", nil)
}
