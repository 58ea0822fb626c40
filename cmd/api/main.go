package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/warikango/warikan/internal/bill"
	"github.com/warikango/warikan/internal/config"
	"github.com/warikango/warikan/pkg/logging"
	mw "github.com/warikango/warikan/pkg/middleware"
)

// @title           Warikan API
// @version         1.0
// @description     Bill splitting service. Computes per-person payments rounded to ten cents that sum exactly to the rounded bill total.
// @BasePath        /api/v1
func main() {
	// Load .env file before logging setup so LOG_LEVEL applies
	loadErr := godotenv.Load()
	logging.Setup()
	if loadErr != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	billService := bill.NewService()
	billHandler := bill.NewHandler(billService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.APIKey(cfg.APIKey))
		r.Mount("/bills", billHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
