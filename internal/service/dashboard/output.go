package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jenyar623-ui/ascorp-leaders/internal/config"
)

// writeFileAtomic пишет файл через временное имя с переименованием:
// читатель всегда видит либо старую, либо новую версию целиком.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".leaders-out-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0644)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// WriteJSON пишет документ компактным JSON в UTF-8 без экранирования:
// файл читают люди и страница, а не только машины.
func WriteJSON(path string, data *Data) error {
	const op = "dashboard.WriteJSON"

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Скелет страницы. Фрагменты css/body/js ведутся отдельно от сборщика,
// документ данных вставляется в константу D.
const htmlSkeleton = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta http-equiv="refresh" content="60">
<title>Информационная панель</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<style>
%s
</style>
</head>
%s
<script>
const D = %s;
%s
</script>
</html>`

// BuildHTML склеивает страницу из фрагментов и собранного JSON.
func BuildHTML(cfg config.Config) error {
	const op = "dashboard.BuildHTML"

	parts := make([]string, 0, 4)
	for _, p := range []string{cfg.CSSFragment, cfg.BodyFragment, cfg.JSONOutput, cfg.JSFragment} {
		raw, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		parts = append(parts, string(raw))
	}

	html := fmt.Sprintf(htmlSkeleton, parts[0], parts[1], parts[2], parts[3])
	if err := writeFileAtomic(cfg.HTMLOutput, []byte(html)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CopyShared копирует собранную страницу в общую папку дашбордов.
func CopyShared(cfg config.Config) error {
	const op = "dashboard.CopyShared"

	if err := os.MkdirAll(cfg.SharedDir, 0755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	src, err := os.Open(cfg.HTMLOutput)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(cfg.SharedDir, cfg.SharedName))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
