package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is anything whose connectivity can be checked, such as the Mongo handle.
type Pinger interface {
	Ping(ctx context.Context) error
}

// @Summary Show the status of server.
// @Description get the status of server.
// @Tags health
// @Accept */*
// @Produce plain
// @Success 200 "OK"
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// @Summary Show whether the server can reach its database.
// @Description ping the database with a 5 second timeout.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/ready [get]
func HandleReadiness(db Pinger) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return FiberJsonResponse(c, fiber.StatusServiceUnavailable, "error", "database unreachable", fiber.Map{"database": err.Error()})
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "ready", fiber.Map{"database": "healthy"})
	}
}
