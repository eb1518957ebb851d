package controllers

import (
	"log"
	"strings"
	"time"

	"lmsadmin/config"
	"lmsadmin/middleware"
	courseModels "lmsadmin/models/course"
	"lmsadmin/playback"
	playerValidator "lmsadmin/validators/player"

	"github.com/gofiber/fiber/v2"
)

// Quiz attempt flow: NotStarted → Started (countdown) → Submitted. The
// countdown is the only recurring background operation; when it reaches zero
// the attempt is submitted with whatever answers exist.

// StartAttempt requests a server-issued attempt and starts the countdown.
func (ctrl *PlayerController) StartAttempt(c *fiber.Ctx) error {
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
	if flat.Lesson.Type != courseModels.LessonQuiz {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson is not a quiz!", nil)
	}

	quiz, quizErr := ctrl.resolveQuiz(token, flat.Lesson)
	if quizErr != nil {
		return upstreamErrorResponse(c, quizErr)
	}

	start, startErr := ctrl.Api.StartQuizAttempt(token, quiz.ID)
	if startErr != nil {
		return upstreamErrorResponse(c, startErr)
	}

	timeLimit := start.TimeLimitSeconds
	if timeLimit <= 0 {
		timeLimit = config.AppConfig.DefaultQuizLimit
	}

	questionIDs := make([]string, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questionIDs[i] = q.ID
	}

	quizID := quiz.ID
	attemptID := start.AttemptID
	attempt := playback.StartAttempt(attemptID, quizID, lessonID, time.Duration(timeLimit)*time.Second, questionIDs,
		func(a *playback.Attempt, answers map[string]string) {
			// Countdown hit zero: submit the partial answers.
			if _, submitErr := ctrl.Api.SubmitQuizAttempt(token, quizID, attemptID, answers); submitErr != nil {
				log.Printf("Auto-submit of attempt %s failed: %v", attemptID, submitErr)
				return
			}
			log.Printf("Attempt %s auto-submitted at timeout with %d answers", attemptID, len(answers))
		})
	playerSession.SelectQuizLesson(lessonID)
	playerSession.SetAttempt(attempt)

	log.Printf("Student %s started attempt %s on quiz %s", sess.UserID, attemptID, quizID)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt started!", fiber.Map{
		"attemptId":        attemptID,
		"timeLimitSeconds": timeLimit,
		"quiz":             quiz,
		"player":           playerSession.Render(),
	})
}

// RecordAnswer stores the selected option for one question of the running
// attempt.
func (ctrl *PlayerController) RecordAnswer(c *fiber.Ctx) error {
	_, playerSession, err := ctrl.session(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedAnswer").(*playerValidator.AnswerPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	attempt := playerSession.Attempt()
	if attempt == nil || attempt.State() != playback.AttemptStarted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "No running attempt!", nil)
	}

	if answerErr := attempt.RecordAnswer(reqData.QuestionID, reqData.OptionID); answerErr != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"answer": answerErr.Error()})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer recorded!", playerSession.Render())
}

// SubmitAttempt submits a manual attempt. Every question must have an
// answer; the timeout path has no such requirement. A passing result
// completes the lesson and advances playback.
func (ctrl *PlayerController) SubmitAttempt(c *fiber.Ctx) error {
	sess, playerSession, err := ctrl.session(c)
	if err != nil {
		return err
	}
	token := middleware.TokenFromCtx(c)
	courseID := c.Locals("courseID").(string)

	attempt := playerSession.Attempt()
	if attempt == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "No running attempt!", nil)
	}
	if attempt.State() != playback.AttemptStarted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Attempt was already submitted!", nil)
	}
	if !attempt.CanSubmit() {
		return middleware.ValidationErrorResponse(c, map[string]string{"answers": "Every question needs an answer before submitting!"})
	}

	answers, ok := attempt.Conclude()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Attempt was already submitted!", nil)
	}

	result, upErr := ctrl.Api.SubmitQuizAttempt(token, attempt.QuizID, attempt.ID, answers)
	if upErr != nil {
		return upstreamErrorResponse(c, upErr)
	}

	data := fiber.Map{
		"result": result,
		"player": playerSession.Render(),
	}

	// Passing the quiz completes the lesson automatically.
	if result.Passed {
		completion, completeErr := ctrl.Api.CompleteLesson(token, courseID, attempt.LessonID)
		if completeErr != nil {
			log.Printf("Lesson completion after passed quiz failed: %v", completeErr)
		} else {
			playerSession.SetProgress(completion.Progress)
			data["progress"] = completion.Progress
			if doc, docErr := ctrl.Api.GetCourse(token, courseID); docErr == nil {
				if next, hasNext := ctrl.advance(playerSession, doc, attempt.LessonID); hasNext {
					data["nextLesson"] = next
				}
			}
			data["player"] = playerSession.Render()
		}
	}

	log.Printf("Student %s submitted attempt %s (score %d/%d, passed=%v)", sess.UserID, attempt.ID, result.Score, result.MaxScore, result.Passed)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt submitted!", data)
}
