package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/zero-todos/handlers"
	"github.com/jalexanderII/zero-todos/metrics"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler, tokens TokenParser, db handlers.Pinger) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hello, World!",
		})
	})

	app.Get("/health", handlers.HandleHealthCheck)
	app.Get("/health/ready", handlers.HandleReadiness(db))
	app.Get("/metrics", metrics.Handler())

	requireUser := RequireUser(tokens, h.L)

	todos := app.Group("/todos", requireUser)
	todos.Get("/", handlers.ListTodos(h))
	todos.Get("/stats", handlers.TodoStats(h))
	todos.Get("/calendar", handlers.TodoCalendar(h))
	todos.Post("/", handlers.CreateTodo(h))
	todos.Put("/:todoId", handlers.UpdateTodo(h))
	todos.Delete("/:todoId", handlers.DeleteTodo(h))

	users := app.Group("/users", requireUser)
	users.Get("/me", handlers.GetCurrentUser(h))
}
