package editorRoutes

import (
	controllers "lmsadmin/controllers/editor"
	"lmsadmin/middleware"
	"lmsadmin/models"
	validators "lmsadmin/validators/editor"

	"github.com/gofiber/fiber/v2"
)

// SetupEditorRoutes sets up all course editor routes. The editor is for
// admins and instructors; ownership is enforced when the course is opened.
func SetupEditorRoutes(app *fiber.App, ctrl *controllers.EditorController) {
	editorGroup := app.Group("/editor/course", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor))

	// Draft lifecycle
	editorGroup.Post("/:id/open", validators.CourseID(), ctrl.OpenCourse)
	editorGroup.Get("/:id/draft", validators.CourseID(), ctrl.GetDraft)
	editorGroup.Patch("/:id/draft", validators.CourseID(), validators.FieldUpdate(), ctrl.UpdateDraftField)
	editorGroup.Delete("/:id/draft", validators.CourseID(), ctrl.DiscardDraft)
	editorGroup.Post("/:id/submit/:step", validators.CourseID(), validators.StepParam(), ctrl.SubmitTab)

	// Content tab: module and lesson CRUD plus reorder
	editorGroup.Post("/:id/module", validators.CourseID(), validators.ModulePayload(), ctrl.AddModule)
	editorGroup.Put("/:id/module/:module_id", validators.CourseID(), validators.ModulePayload(), ctrl.UpdateModule)
	editorGroup.Delete("/:id/module/:module_id", validators.CourseID(), ctrl.DeleteModule)
	editorGroup.Post("/:id/module/:module_id/lesson", validators.CourseID(), validators.LessonPayload(), ctrl.AddLesson)
	editorGroup.Put("/:id/module/:module_id/lesson/:lesson_id", validators.CourseID(), validators.LessonPayload(), ctrl.UpdateLesson)
	editorGroup.Delete("/:id/module/:module_id/lesson/:lesson_id", validators.CourseID(), ctrl.DeleteLesson)
	editorGroup.Post("/:id/module/:module_id/reorder", validators.CourseID(), validators.ReorderPayload(), ctrl.ReorderLesson)

	// Media tab: banner and thumbnails
	editorGroup.Post("/:id/thumbnail", validators.CourseID(), ctrl.UploadThumbnail)
	editorGroup.Delete("/:id/thumbnail/:index", validators.CourseID(), validators.ThumbnailIndex(), ctrl.RemoveThumbnail)
	editorGroup.Post("/:id/thumbnail/:index/restore", validators.CourseID(), validators.ThumbnailIndex(), ctrl.RestoreThumbnail)
	editorGroup.Post("/:id/banner", validators.CourseID(), ctrl.UploadBanner)
	editorGroup.Delete("/:id/banner", validators.CourseID(), ctrl.RemoveBanner)
	editorGroup.Post("/:id/banner/restore", validators.CourseID(), ctrl.RestoreBanner)
}
