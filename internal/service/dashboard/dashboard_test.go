package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenyar623-ui/ascorp-leaders/internal/config"
	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBuilder(cfg config.Config) *Builder {
	return NewBuilder(testLogger(), cfg)
}

func TestAssemble(t *testing.T) {
	b := testBuilder(config.Config{})

	daily := []report.DailyRecord{
		{Employee: "Иванов", Subgroup: "Гамма-1", Group: "Гамма", Date: "2025-11-03", Month: "ноябрь 2025", Hours: 8},
		{Employee: "Иванов", Subgroup: "Гамма-1", Group: "Гамма", Date: "2025-12-01", Month: "декабрь 2025", Hours: 8},
	}
	hours := []report.ClientHours{
		{Client: "Самми Агро", Month: "ноябрь", MonthLabel: "ноябрь 2025", Team: "Альфа"},
	}
	tickets := []report.ClientTickets{
		{Client: "Новый Клиент", Month: "январь", MonthLabel: "январь 2026"},
	}

	data := b.assemble(daily, hours, tickets, nil, nil)

	assert.Equal(t, []string{"ноябрь 2025", "декабрь 2025"}, data.MonthsOps)
	// порядковый номер месяца проставлен в дневные записи
	assert.Equal(t, 1, data.Daily[0].MonthOrder)
	assert.Equal(t, 2, data.Daily[1].MonthOrder)

	// клиентский календарь — только месяцы листа часов
	assert.Equal(t, []string{"ноябрь 2025"}, data.MonthsCl)
	// месяц вне канона допустим, порядок 0
	assert.Equal(t, 0, data.ClTickets[0].MonthOrder)

	// клиенты — объединение по всем наборам
	assert.Equal(t, []string{"Новый Клиент", "Самми Агро"}, data.Clients)
	assert.Equal(t, []string{"Альфа"}, data.TeamsCl)

	// рабочие дни для месяцев обоих календарей; месяц только из листа
	// заявок в объединение не входит
	assert.Equal(t, 19, data.ProdCalendar["ноябрь 2025"])
	assert.Equal(t, 22, data.ProdCalendar["декабрь 2025"])
	_, ok := data.ProdCalendar["январь 2026"]
	assert.False(t, ok)

	// пустые наборы — массивы, не null
	assert.NotNil(t, data.ClSLA)
	assert.NotNil(t, data.ClMass)

	require.Len(t, data.EmpMonthly, 2)
	require.Len(t, data.SgMonthly, 2)
}

func TestWriteJSON_CompactNoEscaping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data := &Data{
		MonthsOps: []string{"ноябрь 2025"},
		Clients:   []string{"ООО <Тест>"},
	}
	require.NoError(t, WriteJSON(path, data))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(raw)
	assert.Contains(t, s, `"ноябрь 2025"`)     // UTF-8 без \u-последовательностей
	assert.Contains(t, s, `"ООО <Тест>"`)      // без HTML-экранирования
	assert.NotContains(t, s, "\n  ")           // компактно, без отступов
	assert.Contains(t, s, `"months_ops"`)
}

func TestWriteJSON_ConcurrentWritesLeaveValidFile(t *testing.T) {
	// watcher и ручной пересбор могут писать один файл; читатель в любой
	// момент должен видеть целый документ одной из версий
	path := filepath.Join(t.TempDir(), "data.json")
	small := &Data{Clients: []string{"Ceva"}}
	big := &Data{Clients: []string{"Ceva"}, MonthsOps: make([]string, 200)}
	for i := range big.MonthsOps {
		big.MonthsOps[i] = "ноябрь 2025"
	}

	for i := 0; i < 50; i++ {
		var wg sync.WaitGroup
		for _, d := range []*Data{small, big} {
			wg.Add(1)
			go func(d *Data) {
				defer wg.Done()
				assert.NoError(t, WriteJSON(path, d))
			}(d)
		}
		wg.Wait()

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var got Data
		require.NoError(t, json.Unmarshal(raw, &got), "итерация %d: файл побит", i)
		// ровно одна из двух версий, не смесь
		assert.Contains(t, []int{len(small.MonthsOps), len(big.MonthsOps)}, len(got.MonthsOps))
	}
}

func TestBuild_Serialized(t *testing.T) {
	// пока идет одна сборка, вторая ждет, а не пишет файлы поверх
	dir := t.TempDir()
	b := testBuilder(config.Config{
		OpsWorkbook:    filepath.Join(dir, "нет.xlsx"),
		ClientWorkbook: filepath.Join(dir, "нет.xlsx"),
	})

	b.buildMu.Lock()
	done := make(chan error, 1)
	go func() { done <- b.Build(context.Background()) }()

	select {
	case <-done:
		t.Fatal("сборка стартовала, не дождавшись предыдущей")
	case <-time.After(50 * time.Millisecond):
	}

	b.buildMu.Unlock()
	assert.Error(t, <-done) // книг нет, сборка падает уже после захвата
}

func TestBuildHTML(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		CSSFragment:  filepath.Join(dir, "css.txt"),
		BodyFragment: filepath.Join(dir, "body.txt"),
		JSFragment:   filepath.Join(dir, "js.txt"),
		JSONOutput:   filepath.Join(dir, "data.json"),
		HTMLOutput:   filepath.Join(dir, "dash.html"),
	}
	require.NoError(t, os.WriteFile(cfg.CSSFragment, []byte(".x{color:red}"), 0644))
	require.NoError(t, os.WriteFile(cfg.BodyFragment, []byte("<body>панель</body>"), 0644))
	require.NoError(t, os.WriteFile(cfg.JSFragment, []byte("render(D);"), 0644))
	require.NoError(t, os.WriteFile(cfg.JSONOutput, []byte(`{"daily":[]}`), 0644))

	require.NoError(t, BuildHTML(cfg))

	raw, err := os.ReadFile(cfg.HTMLOutput)
	require.NoError(t, err)
	html := string(raw)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, ".x{color:red}")
	assert.Contains(t, html, "<body>панель</body>")
	assert.Contains(t, html, `const D = {"daily":[]}`)
	assert.Contains(t, html, "render(D);")
}

func TestCopyShared(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		HTMLOutput: filepath.Join(dir, "dash.html"),
		SharedDir:  filepath.Join(dir, "shared", "nested"),
		SharedName: "dashboard.html",
	}
	require.NoError(t, os.WriteFile(cfg.HTMLOutput, []byte("<html></html>"), 0644))

	require.NoError(t, CopyShared(cfg))

	raw, err := os.ReadFile(filepath.Join(cfg.SharedDir, cfg.SharedName))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(raw))
}

func TestWatcherChanged(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ops.xlsx")
	require.NoError(t, os.WriteFile(src, []byte("v1"), 0644))

	w := NewWatcher(testLogger(), testBuilder(config.Config{OpsWorkbook: src}), time.Second)
	files := []string{src}
	w.snapshot(files)
	assert.False(t, w.changed(files))

	// сдвигаем mtime, содержимое не важно
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(src, later, later))
	assert.True(t, w.changed(files))
	// время запомнено, повторная проверка спокойна
	assert.False(t, w.changed(files))
}
