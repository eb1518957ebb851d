package main

import (
	"log"
	"time"

	"lmsadmin/config"
	dashboardControllers "lmsadmin/controllers/dashboard"
	editorControllers "lmsadmin/controllers/editor"
	homepageControllers "lmsadmin/controllers/homepage"
	playerControllers "lmsadmin/controllers/player"
	"lmsadmin/draft"
	"lmsadmin/playback"
	dashboardRoutes "lmsadmin/routers/dashboardRoutes"
	editorRoutes "lmsadmin/routers/editorRoutes"
	homepageRoutes "lmsadmin/routers/homepageRoutes"
	playerRoutes "lmsadmin/routers/playerRoutes"
	"lmsadmin/upstream"
	"lmsadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	api := upstream.NewClient(config.AppConfig.LmsApiURL, time.Duration(config.AppConfig.LmsApiTimeout)*time.Second)
	drafts := draft.NewStore()
	players := playback.NewStore()

	app := fiber.New(fiber.Config{
		BodyLimit: (config.AppConfig.MaxImageSizeMB + 1) << 20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	editorRoutes.SetupEditorRoutes(app, &editorControllers.EditorController{Api: api, Drafts: drafts})
	playerRoutes.SetupPlayerRoutes(app, &playerControllers.PlayerController{Api: api, Players: players})
	dashboardRoutes.SetupDashboardRoutes(app, &dashboardControllers.DashboardController{Api: api})
	homepageRoutes.SetupHomepageRoutes(app, &homepageControllers.HomepageController{Api: api})

	sweeper := utils.InitializeSessionSweeper(drafts, players)
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
