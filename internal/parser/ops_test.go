package parser

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func alphaConfig() report.SheetConfig {
	return report.SheetConfig{
		Sheet:     "альфа-1",
		Subgroups: []string{"Альфа-1"},
		Group:     "Альфа",
	}
}

func TestParseSheet_TwoDates(t *testing.T) {
	g := Grid{
		{"Сотрудники", "Решенные заявки", "Решенные задачи", "Решенные заявки", "Решенные задачи"},
		{},
		{"", "03.11.2025", "", "04.11.2025"},
		{},
		{"Иванов И.И.", "5", "2", "7", "1"},
	}
	records := NewOpsParser(testLogger()).ParseSheet(g, alphaConfig())
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, "Иванов И.И.", r.Employee)
	assert.Equal(t, "Альфа-1", r.Subgroup)
	assert.Equal(t, "Альфа", r.Group)
	assert.Equal(t, "2025-11-03", r.Date)
	assert.Equal(t, "ноябрь 2025", r.Month)
	assert.Equal(t, 5, r.Tickets)
	assert.Equal(t, 2, r.Tasks)
	// полей нет в двухколоночной раскладке — нули
	assert.Equal(t, 0, r.RegTickets)
	assert.Equal(t, 0, r.RegTasks)
	assert.Equal(t, 0.0, r.Hours)

	assert.Equal(t, "2025-11-04", records[1].Date)
	assert.Equal(t, 7, records[1].Tickets)
}

func TestParseSheet_TwoBlocksSameEmployee(t *testing.T) {
	// два блока с двухколоночной раскладкой и по одной дате: ровно две
	// записи на сотрудника, tk_r, ts_r и тзт нулевые
	g := Grid{
		{"Сотрудники", "Решенные заявки", "Решенные задачи"},
		{},
		{"", "03.11.2025"},
		{},
		{"Иванов И.И.", "5", "2"},
		{"Сотрудники", "Решенные заявки", "Решенные задачи"},
		{},
		{"", "01.12.2025"},
		{},
		{"Иванов И.И.", "3", "4"},
	}
	records := NewOpsParser(testLogger()).ParseSheet(g, alphaConfig())
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "Иванов И.И.", r.Employee)
		assert.Equal(t, 0, r.RegTickets)
		assert.Equal(t, 0, r.RegTasks)
		assert.Equal(t, 0.0, r.Hours)
	}
	assert.Equal(t, "ноябрь 2025", records[0].Month)
	assert.Equal(t, "декабрь 2025", records[1].Month)
}

func TestParseSheet_HoursRoundedTo2(t *testing.T) {
	g := Grid{
		{"Сотрудники", "Решенные заявки", "тзт"},
		{},
		{"", "03.11.2025"},
		{},
		{"Иванов И.И.", "5", "7.12345"},
	}
	records := NewOpsParser(testLogger()).ParseSheet(g, alphaConfig())
	require.Len(t, records, 1)
	assert.Equal(t, 7.12, records[0].Hours)
}

func TestParseSheet_SiteVisitsProxyRegTasks(t *testing.T) {
	// выезды дублируются в рег. задачи, когда своей колонки рег. задач нет
	g := Grid{
		{"Сотрудники", "Решенные заявки", "Выезды", "тзт"},
		{},
		{"", "03.11.2025"},
		{},
		{"Иванов И.И.", "5", "3", "8"},
	}
	records := NewOpsParser(testLogger()).ParseSheet(g, alphaConfig())
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].SiteVisits)
	assert.Equal(t, 3, records[0].RegTasks)
}

func TestParseSheet_SiteVisitsWithDedicatedRegTasks(t *testing.T) {
	g := Grid{
		{"Сотрудники", "Решенные заявки", "Решенные рег.задачи", "Выезды", "тзт"},
		{},
		{"", "03.11.2025"},
		{},
		{"Иванов И.И.", "5", "2", "3", "8"},
	}
	records := NewOpsParser(testLogger()).ParseSheet(g, alphaConfig())
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].SiteVisits)
	assert.Equal(t, 2, records[0].RegTasks) // из своей колонки, не из выездов
}

func TestParseSheet_SkipRowsNotEmitted(t *testing.T) {
	g := Grid{
		{"Сотрудники", "Решенные заявки", "Решенные задачи"},
		{},
		{"", "03.11.2025"},
		{},
		{"Иванов И.И.", "5", "2"},
		{"Итого", "5", "2"},
		{"Беклог (2-4)", "9", "9"},
	}
	records := NewOpsParser(testLogger()).ParseSheet(g, alphaConfig())
	require.Len(t, records, 1)
	assert.Equal(t, "Иванов И.И.", records[0].Employee)
}

type fakeSource map[string]Grid

func (f fakeSource) Sheet(name string) (Grid, bool) {
	g, ok := f[name]
	return g, ok
}

func TestParseWorkbook_MissingSheetYieldsZeroRecords(t *testing.T) {
	src := fakeSource{}
	records := NewOpsParser(testLogger()).ParseWorkbook(src, []report.SheetConfig{alphaConfig()})
	assert.Empty(t, records)
}
