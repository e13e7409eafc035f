package dashboard

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Watcher пересобирает дашборд при изменении исходных книг.
// Проверка — по времени модификации файлов с заданным интервалом.
type Watcher struct {
	log      *slog.Logger
	builder  *Builder
	interval time.Duration
	mtimes   map[string]time.Time
}

// NewWatcher создает наблюдатель за исходными файлами сборщика.
func NewWatcher(log *slog.Logger, builder *Builder, interval time.Duration) *Watcher {
	return &Watcher{
		log:      log,
		builder:  builder,
		interval: interval,
		mtimes:   make(map[string]time.Time),
	}
}

// Run делает первую сборку и крутит цикл проверки до отмены контекста.
// Ошибка одной сборки логируется и не останавливает цикл; сборка всегда
// дорабатывает до конца, отмена срабатывает между циклами.
func (w *Watcher) Run(ctx context.Context) error {
	files := w.builder.SourceFiles()
	w.log.Info("наблюдение запущено",
		slog.Int("files", len(files)),
		slog.Duration("interval", w.interval))

	if err := w.builder.Build(ctx); err != nil {
		w.log.Error("сборка не удалась", slog.String("error", err.Error()))
	}
	w.snapshot(files)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !w.changed(files) {
				continue
			}
			w.log.Info("обнаружено изменение исходных файлов")
			if err := w.builder.Build(ctx); err != nil {
				w.log.Error("сборка не удалась", slog.String("error", err.Error()))
			}
		}
	}
}

// snapshot запоминает текущие времена модификации.
func (w *Watcher) snapshot(files []string) {
	for _, f := range files {
		if info, err := os.Stat(f); err == nil {
			w.mtimes[f] = info.ModTime()
		}
	}
}

// changed проверяет файлы и обновляет запомненные времена.
// Недоступный файл (например, в момент синхронизации) пропускается.
func (w *Watcher) changed(files []string) bool {
	changed := false
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if !info.ModTime().Equal(w.mtimes[f]) {
			changed = true
			w.mtimes[f] = info.ModTime()
		}
	}
	return changed
}
