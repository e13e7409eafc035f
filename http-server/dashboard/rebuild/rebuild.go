package rebuild

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Rebuilder interface {
	Build(ctx context.Context) error
}

// RebuildNow принудительно пересобирает дашборд, не дожидаясь
// наблюдателя. Сборка синхронная и дорабатывает до конца.
func RebuildNow(log *slog.Logger, svc Rebuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.rebuild.RebuildNow"

		if err := svc.Build(r.Context()); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("принудительная сборка не удалась")
			http.Error(w, "сборка не удалась", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
