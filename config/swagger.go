package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// AddSwaggerRoutes serves the generated API docs under /swagger.
func AddSwaggerRoutes(app *fiber.App) {
	app.Get("/swagger/*", swagger.New(swagger.Config{
		Title:        "Zero Todos API",
		DeepLinking:  true,
		DocExpansion: "list",
	}))
}
