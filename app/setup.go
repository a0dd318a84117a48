package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/zero-todos/auth"
	"github.com/jalexanderII/zero-todos/config"
	"github.com/jalexanderII/zero-todos/database"
	_ "github.com/jalexanderII/zero-todos/docs"
	"github.com/jalexanderII/zero-todos/handlers"
	"github.com/jalexanderII/zero-todos/router"
	"github.com/jalexanderII/zero-todos/todos"
)

// SetupAndRunApp handle app and database start and graceful shutdown
func SetupAndRunApp(cfg *config.Config) error {
	l := NewLogger(cfg.Logger)

	// start database
	db, err := database.StartMongoDB(cfg.Mongo)
	if err != nil {
		return err
	}

	// defer closing database
	defer func() {
		ctx, cancel := database.NewDBContext(cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := db.CloseMongoDB(ctx); err != nil {
			l.WithError(err).Error("[MongoDB] disconnect failed")
		}
	}()

	todoColl := db.Collection(cfg.Mongo.TodoCollection)
	indexCtx, cancel := database.NewDBContext(cfg.Mongo.ConnectTimeout)
	defer cancel()
	if err = database.EnsureTodoIndexes(indexCtx, todoColl); err != nil {
		l.WithError(err).Warn("[MongoDB] could not ensure todo indexes")
	}

	var storage fiber.Storage
	if cfg.Redis.URL != "" {
		rdb, err := database.StartRedis(cfg.Redis.URL)
		if err != nil {
			l.WithError(err).Warn("[Redis] unavailable, rate limiting in memory")
		} else {
			rs := database.NewRedisStorage(rdb, "ratelimit:")
			defer rs.Close()
			storage = rs
		}
	}

	tokens, err := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		return err
	}

	// create app
	app := NewFiberApp(cfg)

	// attach middleware
	FiberMiddleware(app, cfg.RateLimit, storage)

	// setup routes
	facade := todos.NewFacade(todos.NewMongoStore(todoColl), l)
	router.SetupRoutes(app, handlers.NewHandler(facade, l), tokens, db)

	// attach swagger
	config.AddSwaggerRoutes(app)

	return StartServerWithGracefulShutdown(app, cfg.Address(), cfg.HTTP.ShutdownTimeout, l)
}

func NewFiberApp(cfg *config.Config) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	})
}
