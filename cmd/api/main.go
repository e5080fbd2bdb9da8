package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gocode/elearning/internal/bootstrap"
	"github.com/gocode/elearning/internal/pkg/logger" // Still needed for initial error logging
	"github.com/gocode/elearning/internal/server"
)

// @title E-Learning API
// @version 1.0
// @description Course catalog, enrollment workflow and lesson progress tracking for instructors and students.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, in the form "Bearer <token>"

func main() {
	app := &cli.App{
		Name:  "elearning-api",
		Usage: "serve the e-learning HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the YAML configuration file",
				Value:   bootstrap.DefaultConfigPath,
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

func serve(c *cli.Context) error {
	// Error details are logged within NewServer's setup functions
	srv, err := server.NewServer(c.String("config"))
	if err != nil {
		return err
	}

	// Run blocks until shutdown signal
	return srv.Run()
}
