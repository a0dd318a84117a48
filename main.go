package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jalexanderII/zero-todos/app"
	"github.com/jalexanderII/zero-todos/auth"
	"github.com/jalexanderII/zero-todos/config"
	"github.com/jalexanderII/zero-todos/models"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var rootCmd = &cobra.Command{
	Use:          "zero-todos",
	Short:        "Todo list backend API",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for local testing",
	RunE:  runToken,
}

var (
	tokenUserID string
	tokenName   string
	tokenEmail  string
	tokenTTL    time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "user id (hex ObjectID); a new one is generated when empty")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email address")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to JWT_TTL)")

	rootCmd.AddCommand(serveCmd, tokenCmd)
}

// @title Zero Todos Backend API
// @version 0.1
// @description Todo list backend: todos CRUD, stats and calendar views.
// @contact.name Joel Alexander
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return app.SetupAndRunApp(cfg)
}

func runToken(cmd *cobra.Command, args []string) error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	id := primitive.NewObjectID()
	if tokenUserID != "" {
		parsed, err := primitive.ObjectIDFromHex(tokenUserID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
		id = parsed
	}

	ttl := tokenTTL
	if ttl <= 0 {
		ttl, _ = time.ParseDuration(config.GetEnv("JWT_TTL", "24h"))
	}
	tokens, err := auth.NewTokens(os.Getenv("JWT_SECRET"), config.GetEnv("JWT_ISSUER", "zero-todos"), ttl)
	if err != nil {
		return err
	}

	token, err := tokens.Sign(models.User{ID: id, Name: tokenName, Email: tokenEmail})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
