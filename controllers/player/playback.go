package controllers

import (
	"errors"
	"log"
	"strings"

	"lmsadmin/middleware"
	"lmsadmin/models"
	courseModels "lmsadmin/models/course"
	"lmsadmin/playback"
	"lmsadmin/upstream"

	"github.com/gofiber/fiber/v2"
)

// PlayerController drives the student-facing course playback: the syllabus
// tree, the video/quiz viewer and progress persistence.
type PlayerController struct {
	Api     *upstream.Client
	Players *playback.Store
}

// OpenCourse returns the course's module/lesson tree together with the
// student's playback state.
func (ctrl *PlayerController) OpenCourse(c *fiber.Ctx) error {
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

	playerSession := ctrl.Players.GetOrCreate(playback.Key(courseID, sess.UserID), courseID, sess.UserID)

	if progress, progErr := ctrl.Api.GetCourseProgress(token, courseID); progErr == nil {
		playerSession.SetProgress(progress.Progress)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  doc,
		"lessons": playback.Flatten(doc),
		"player":  playerSession.Render(),
	})
}

// ToggleModule opens a module in the syllabus; only one module stays
// expanded at a time.
func (ctrl *PlayerController) ToggleModule(c *fiber.Ctx) error {
	_, playerSession, err := ctrl.session(c)
	if err != nil {
		return err
	}
	moduleID := strings.TrimSpace(c.Params("module_id"))
	if moduleID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
	}

	playerSession.ToggleModule(moduleID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module toggled!", playerSession.Render())
}

// SelectLesson makes a lesson active. Video lessons populate the player and
// reset any quiz state; quiz lessons fetch the quiz content and switch the
// active tab to the quiz view.
func (ctrl *PlayerController) SelectLesson(c *fiber.Ctx) error {
	sess, playerSession, err := ctrl.session(c)
	if err != nil {
		return err
	}
	token := middleware.TokenFromCtx(c)
	courseID := c.Locals("courseID").(string)
	lessonID := strings.TrimSpace(c.Params("lesson_id"))

	doc, upErr := ctrl.Api.GetCourse(token, courseID)
	if upErr != nil {
		return upstreamErrorResponse(c, upErr)
	}

	flat, found := playback.FindLesson(doc, lessonID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if flat.Lesson.Type == courseModels.LessonQuiz {
		quiz, quizErr := ctrl.resolveQuiz(token, flat.Lesson)
		if quizErr != nil {
			return upstreamErrorResponse(c, quizErr)
		}
		playerSession.SelectQuizLesson(lessonID)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz lesson selected!", fiber.Map{
			"lesson": flat,
			"quiz":   quiz,
			"player": playerSession.Render(),
		})
	}

	playerSession.SelectVideoLesson(lessonID)
	log.Printf("Student %s selected lesson %s in course %s", sess.UserID, lessonID, courseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson selected!", fiber.Map{
		"lesson": flat,
		"player": playerSession.Render(),
	})
}

// CompleteLesson persists the completion, adopts the server's progress
// percentage and auto-advances to the next lesson in document order.
func (ctrl *PlayerController) CompleteLesson(c *fiber.Ctx) error {
	sess, playerSession, err := ctrl.session(c)
	if err != nil {
		return err
	}
	token := middleware.TokenFromCtx(c)
	courseID := c.Locals("courseID").(string)
	lessonID := strings.TrimSpace(c.Params("lesson_id"))

	result, upErr := ctrl.Api.CompleteLesson(token, courseID, lessonID)
	if upErr != nil {
		return upstreamErrorResponse(c, upErr)
	}
	playerSession.SetProgress(result.Progress)

	doc, upErr := ctrl.Api.GetCourse(token, courseID)
	if upErr != nil {
		return upstreamErrorResponse(c, upErr)
	}

	next, hasNext := ctrl.advance(playerSession, doc, lessonID)
	log.Printf("Student %s completed lesson %s in course %s (progress %.1f%%)", sess.UserID, lessonID, courseID, result.Progress)

	data := fiber.Map{
		"progress": result.Progress,
		"player":   playerSession.Render(),
	}
	if hasNext {
		data["nextLesson"] = next
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", data)
}

// advance moves the playback state to the lesson following lessonID,
// expanding its module. Returns the next lesson when there is one.
func (ctrl *PlayerController) advance(playerSession *playback.Session, doc *courseModels.WireCourse, lessonID string) (playback.FlatLesson, bool) {
	next, ok := playback.NextLesson(doc, lessonID)
	if !ok {
		return playback.FlatLesson{}, false
	}
	playerSession.ExpandModule(next.ModuleID)
	if next.Lesson.Type == courseModels.LessonQuiz {
		playerSession.SelectQuizLesson(next.Lesson.ID)
	} else {
		playerSession.SelectVideoLesson(next.Lesson.ID)
	}
	return next, true
}

// resolveQuiz fetches the quiz for a lesson, falling back to the course's
// default quiz list when the lesson has no direct reference.
func (ctrl *PlayerController) resolveQuiz(token string, lesson courseModels.WireLesson) (*upstream.Quiz, error) {
	quizID := lesson.QuizID
	if quizID == "" {
		summaries, err := ctrl.Api.ListQuizzes(token)
		if err != nil {
			return nil, err
		}
		if len(summaries) == 0 {
			return nil, upstream.ErrNotFound
		}
		quizID = summaries[0].ID
	}
	return ctrl.Api.GetQuiz(token, quizID)
}

// session resolves the playback session for the request.
func (ctrl *PlayerController) session(c *fiber.Ctx) (models.Session, *playback.Session, error) {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return models.Session{}, nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)
	playerSession := ctrl.Players.GetOrCreate(playback.Key(courseID, sess.UserID), courseID, sess.UserID)
	return sess, playerSession, nil
}

// upstreamErrorResponse maps upstream client errors onto response codes.
func upstreamErrorResponse(c *fiber.Ctx, err error) error {
	var fieldErrs upstream.FieldErrors
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again!", nil)
	case errors.Is(err, upstream.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	case errors.Is(err, upstream.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.As(err, &fieldErrs):
		return middleware.ValidationErrorResponse(c, fieldErrs)
	}
	log.Printf("Upstream call failed: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reach the LMS API!", nil)
}
