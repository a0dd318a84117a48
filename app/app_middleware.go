package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jalexanderII/zero-todos/config"
	"github.com/jalexanderII/zero-todos/metrics"
)

// FiberMiddleware provides Fiber's built-in middlewares.
// See: https://docs.gofiber.io/api/middleware
// A nil storage keeps the rate limiter counters in memory.
func FiberMiddleware(a *fiber.App, cfg config.RateLimitConfig, storage fiber.Storage) {
	a.Use(
		// recover from panic
		recover.New(),
		// tag every request
		requestid.New(requestid.Config{Generator: uuid.NewString}),
		// Add simple logger.
		logger.New(logger.Config{
			Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency} ${locals:requestid}\n",
		}),
		// Add CORS to each route.
		cors.New(),
		// count requests, rate limited ones included
		metrics.Middleware(),
		// add rate limiter
		limiter.New(limiter.Config{
			Max:               cfg.Max,
			Expiration:        cfg.Expiration,
			LimiterMiddleware: limiter.SlidingWindow{},
			Storage:           storage,
		}),
	)
}
