// Package workbook читает книги Excel через временную копию файла.
// Исходники лежат в синхронизируемой папке (OneDrive) и могут быть
// открыты в Excel, поэтому читать их напрямую нельзя.
package workbook

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jenyar623-ui/ascorp-leaders/internal/parser"
)

// Workbook — полностью вычитанная в память книга: все листы как сетки
// значений. После Open файл больше не нужен.
type Workbook struct {
	sheets map[string]parser.Grid
	names  []string
}

// Open копирует файл во временное место, открывает копию и вычитывает
// все листы. При неудаче повторяет попытку retries раз с паузой delay.
// Временный файл удаляется при любом исходе.
func Open(log *slog.Logger, path string, retries int, delay time.Duration) (*Workbook, error) {
	const op = "workbook.Open"

	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		wb, err := loadOnce(path)
		if err == nil {
			return wb, nil
		}
		lastErr = err
		if attempt < retries {
			log.Warn("не удалось открыть книгу, повтор",
				slog.String("path", path),
				slog.Int("attempt", attempt),
				slog.Int("retries", retries),
				slog.String("error", err.Error()))
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("%s: %s: %w", op, path, lastErr)
}

func loadOnce(path string) (*Workbook, error) {
	tmp, err := os.CreateTemp("", "leaders-*.xlsx")
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	src, err := os.Open(path)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("open source: %w", err)
	}
	_, err = io.Copy(tmp, src)
	src.Close()
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("copy to temp: %w", err)
	}

	f, err := excelize.OpenFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{sheets: make(map[string]parser.Grid)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		wb.sheets[name] = parser.Grid(rows)
		wb.names = append(wb.names, name)
	}
	return wb, nil
}

// Sheet отдает лист по имени: сначала точное совпадение, затем без
// учета регистра и пробелов по краям.
func (w *Workbook) Sheet(name string) (parser.Grid, bool) {
	if g, ok := w.sheets[name]; ok {
		return g, true
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, n := range w.names {
		if strings.ToLower(strings.TrimSpace(n)) == want {
			return w.sheets[n], true
		}
	}
	return nil, false
}

// SheetNames возвращает имена листов в порядке книги.
func (w *Workbook) SheetNames() []string {
	return w.names
}
