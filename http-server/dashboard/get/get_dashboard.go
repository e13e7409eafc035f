package get

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/render"

	"github.com/jenyar623-ui/ascorp-leaders/internal/service/dashboard"
)

type DashboardService interface {
	Status() dashboard.Status
	JSONPath() string
	HTMLPath() string
}

// GetStatus отдает итог последней сборки.
func GetStatus(log *slog.Logger, svc DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, svc.Status())
	}
}

// GetData отдает собранный JSON-документ как есть, без пересериализации.
func GetData(log *slog.Logger, svc DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.get.GetData"

		raw, err := os.ReadFile(svc.JSONPath())
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("данные еще не собраны")
			http.Error(w, "данные еще не собраны", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(raw)
	}
}

// GetPage отдает собранную страницу дашборда.
func GetPage(log *slog.Logger, svc DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.get.GetPage"

		if _, err := os.Stat(svc.HTMLPath()); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("страница еще не собрана")
			http.Error(w, "страница еще не собрана", http.StatusServiceUnavailable)
			return
		}
		http.ServeFile(w, r, svc.HTMLPath())
	}
}
