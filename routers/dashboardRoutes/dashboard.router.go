package dashboardRoutes

import (
	controllers "lmsadmin/controllers/dashboard"
	"lmsadmin/middleware"
	"lmsadmin/models"
	editorValidators "lmsadmin/validators/editor"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the read-only per-role dashboards.
func SetupDashboardRoutes(app *fiber.App, ctrl *controllers.DashboardController) {
	dashGroup := app.Group("/dashboard", middleware.JWTMiddleware)

	dashGroup.Get("/admin", middleware.RequireRole(models.RoleAdmin), ctrl.AdminDashboard)
	dashGroup.Get("/instructor", middleware.RequireRole(models.RoleInstructor), ctrl.InstructorDashboard)
	dashGroup.Get("/instructor/course/:id/enrollments", middleware.RequireRole(models.RoleAdmin, models.RoleInstructor), editorValidators.CourseID(), ctrl.CourseEnrollments)
	dashGroup.Get("/student", middleware.RequireRole(models.RoleStudent), ctrl.StudentDashboard)
}
