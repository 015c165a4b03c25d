package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/palavradiaria/palavra-api/internal/api"
	"github.com/palavradiaria/palavra-api/internal/api/middleware"
)

// newRouter builds the HTTP routing tree.
func (app *application) newRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.TraceHeader},
		ExposedHeaders:   []string{middleware.TraceHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	suggestionHandler := api.NewSuggestionHandler(app.suggestions, app.logger)
	cardHandler := api.NewCardHandler(app.cards, app.logger)
	votdHandler := api.NewVerseOfDayHandler(app.votd, app.logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/suggestions", suggestionHandler.Suggest)
		r.Get("/verses/random", suggestionHandler.Random)

		r.Post("/cards", cardHandler.Create)
		r.Get("/cards", cardHandler.List)
		r.Route("/cards/{id}", func(r chi.Router) {
			r.Delete("/", cardHandler.Delete)
			r.Patch("/favorite", cardHandler.SetFavorite)
			r.Post("/image", cardHandler.RegenerateImage)
			r.Get("/caption", cardHandler.Caption)
		})

		r.Get("/verse-of-the-day", votdHandler.Today)
		r.Post("/verse-of-the-day/refresh", votdHandler.Refresh)
	})

	return r
}
