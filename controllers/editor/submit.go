package controllers

import (
	"log"

	"lmsadmin/draft"
	"lmsadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitTab runs the active tab's validation, normalizes the draft into the
// wire document and PUTs the whole document upstream. Each tab's Update
// sends the entire draft, not just its own slice; partial-tab editing still
// performs a whole-document save. On success the tab is marked completed and
// the draft adopts the server's response (fresh ids for entities created
// client-side). On failure the in-memory draft is untouched.
func (ctrl *EditorController) SubmitTab(c *fiber.Ctx) error {
	e, sess, err := ctrl.entry(c)
	if err != nil {
		return err
	}
	token := middleware.TokenFromCtx(c)
	step := c.Locals("step").(draft.Step)

	snap := e.Snapshot()

	// Only the fields relevant to the submitted tab gate the save.
	if !draft.IsStepValid(&snap, step, sess) {
		return middleware.ValidationErrorResponse(c, draft.StepErrors(&snap, step, sess))
	}

	doc := draft.BuildWireDocument(&snap)

	updated, upErr := ctrl.Api.UpdateCourse(token, snap.ID, doc)
	if upErr != nil {
		return upstreamErrorResponse(c, upErr)
	}

	// Adopt the persisted document so client-minted entities pick up their
	// server-issued ids.
	labels := e.Labels()
	e.ReplaceDraft(draft.FromWire(updated, labels.Categories, labels.Instructors, labels.Quizzes))
	e.MarkCompleted(step)
	log.Printf("Course %s: %s tab saved by %s", snap.ID, step, sess.UserID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", ctrl.draftView(e, sess))
}
