package playerRoutes

import (
	controllers "lmsadmin/controllers/player"
	"lmsadmin/middleware"
	"lmsadmin/models"
	validators "lmsadmin/validators/player"

	"github.com/gofiber/fiber/v2"
)

// SetupPlayerRoutes sets up the student playback and quiz attempt routes.
func SetupPlayerRoutes(app *fiber.App, ctrl *controllers.PlayerController) {
	playerGroup := app.Group("/player/course", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent))

	// Syllabus and lesson selection
	playerGroup.Get("/:id", validators.CourseID(), ctrl.OpenCourse)
	playerGroup.Post("/:id/module/:module_id/toggle", validators.CourseID(), ctrl.ToggleModule)
	playerGroup.Post("/:id/lesson/:lesson_id/select", validators.CourseID(), ctrl.SelectLesson)
	playerGroup.Post("/:id/lesson/:lesson_id/complete", validators.CourseID(), ctrl.CompleteLesson)

	// Quiz attempts
	playerGroup.Post("/:id/lesson/:lesson_id/attempt", validators.CourseID(), ctrl.StartAttempt)
	playerGroup.Post("/:id/attempt/answer", validators.CourseID(), validators.Answer(), ctrl.RecordAnswer)
	playerGroup.Post("/:id/attempt/submit", validators.CourseID(), ctrl.SubmitAttempt)
}
