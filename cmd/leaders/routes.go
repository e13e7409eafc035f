package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getdashboard "github.com/jenyar623-ui/ascorp-leaders/http-server/dashboard/get"
	"github.com/jenyar623-ui/ascorp-leaders/http-server/dashboard/rebuild"
	"github.com/jenyar623-ui/ascorp-leaders/internal/config"
	"github.com/jenyar623-ui/ascorp-leaders/internal/middleware/auth"
	"github.com/jenyar623-ui/ascorp-leaders/internal/service/dashboard"
)

func routes(cfg config.Config, log *slog.Logger, builder *dashboard.Builder) *chi.Mux {
	router := chi.NewRouter()

	// Дашборд читают с разных внутренних адресов
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})
	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/data", getdashboard.GetData(log, builder))
	router.Get("/api/status", getdashboard.GetStatus(log, builder))

	// Принудительная пересборка — только с паролем из конфига
	if cfg.AdminLogin != "" {
		router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).
			Post("/api/rebuild", rebuild.RebuildNow(log, builder))
	}

	// Страница дашборда
	router.Get("/", getdashboard.GetPage(log, builder))

	return router
}
