package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/palavradiaria/palavra-api/internal/config"
	"github.com/palavradiaria/palavra-api/internal/platform/gemini"
	"github.com/palavradiaria/palavra-api/internal/platform/localstore"
	"github.com/palavradiaria/palavra-api/internal/platform/postgres"
	"github.com/palavradiaria/palavra-api/internal/platform/stock"
	"github.com/palavradiaria/palavra-api/internal/service"
	"github.com/palavradiaria/palavra-api/internal/store"
)

// application owns every long-lived dependency and the wired services.
type application struct {
	cfg    *config.Config
	logger *slog.Logger

	db *sql.DB // nil for the file driver

	suggestions *service.SuggestionService
	cards       *service.CardService
	votd        *service.VerseOfDayService
}

// newApplication wires the whole object graph from configuration.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{cfg: cfg, logger: logger}

	gallery, votdCache, err := app.openStores(ctx)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	var pexels *stock.PexelsClient
	var pexelsProvider, pixabayProvider stock.Provider
	if cfg.Stock.PexelsAPIKey != "" {
		pexels, err = stock.NewPexelsClient(cfg.Stock.PexelsAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create pexels client: %w", err)
		}
		pexelsProvider = pexels
	} else {
		logger.Warn("pexels API key not configured, provider disabled")
	}
	if cfg.Stock.PixabayAPIKey != "" {
		pixabay, err := stock.NewPixabayClient(cfg.Stock.PixabayAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create pixabay client: %w", err)
		}
		pixabayProvider = pixabay
	} else {
		logger.Warn("pixabay API key not configured, provider disabled")
	}

	images := service.NewImageService(generator, pexelsProvider, pixabayProvider, logger)

	app.suggestions = service.NewSuggestionService(generator, logger)
	app.cards = service.NewCardService(generator, images, gallery, logger)

	// The typed nil matters: a nil *PexelsClient inside a non-nil interface
	// would dodge the service's nil check.
	var votdSearch service.QueryFetcher
	if pexels != nil {
		votdSearch = pexels
	}
	app.votd = service.NewVerseOfDayService(generator, images, votdCache, votdSearch, logger)

	return app, nil
}

// openStores opens the persistence backend selected by storage.driver.
func (app *application) openStores(ctx context.Context) (store.GalleryStore, store.VerseOfDayStore, error) {
	switch app.cfg.Storage.Driver {
	case "postgres":
		db, err := openDatabase(ctx, app.cfg.Storage.DatabaseURL, app.logger)
		if err != nil {
			return nil, nil, err
		}
		app.db = db
		pg := postgres.NewStore(db, app.logger)
		return pg, pg, nil

	default:
		local, err := localstore.New(app.cfg.Storage.FilePath, app.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return local, local, nil
	}
}

// Close releases held resources.
func (app *application) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn("failed to close database", "error", err)
		}
	}
}
