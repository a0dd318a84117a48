package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// StartServerWithGracefulShutdown function for starting server with a graceful shutdown.
// It returns the listen error when the server could not start.
func StartServerWithGracefulShutdown(a *fiber.App, addr string, timeout time.Duration, l *logrus.Logger) error {
	// Create a channel for idle connections.
	idleConnsClosed := make(chan struct{})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM) // Catch OS signals.
		<-sigint

		// Received an interrupt signal, shutdown.
		if err := a.ShutdownWithTimeout(timeout); err != nil {
			// Error from closing listeners, or context timeout:
			l.Errorf("Oops... Server is not shutting down! Reason: %v", err)
		}

		close(idleConnsClosed)
	}()

	// Run server.
	l.Infof("listening on %s", addr)
	if err := a.Listen(addr); err != nil {
		l.Errorf("Oops... Server is not running! Reason: %v", err)
		return err
	}
	<-idleConnsClosed
	return nil
}
