package homepageRoutes

import (
	controllers "lmsadmin/controllers/homepage"
	"lmsadmin/middleware"
	"lmsadmin/models"
	validators "lmsadmin/validators/homepage"

	"github.com/gofiber/fiber/v2"
)

// SetupHomepageRoutes sets up the homepage content editor routes.
func SetupHomepageRoutes(app *fiber.App, ctrl *controllers.HomepageController) {
	homeGroup := app.Group("/admin/homepage", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	homeGroup.Get("/content", ctrl.GetContent)
	homeGroup.Put("/content", validators.Content(), ctrl.UpdateContent)
}
