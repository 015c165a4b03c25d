// Command server runs the verse-card API: verse suggestions, card
// generation with tiered image fallbacks, the gallery and the verse of the
// day.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/palavradiaria/palavra-api/internal/config"
	"github.com/palavradiaria/palavra-api/internal/platform/logger"
)

func main() {
	// A local .env is a development convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		fmt.Println("loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.Server)

	app, err := newApplication(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}

	slog.Info("server shut down cleanly")
}
