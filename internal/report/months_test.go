package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthNumber(t *testing.T) {
	assert.Equal(t, 1, MonthNumber("январь"))
	assert.Equal(t, 12, MonthNumber("Декабрь"))
	assert.Equal(t, 11, MonthNumber("  ноябрь  "))
	assert.Equal(t, 0, MonthNumber("november"))
	assert.Equal(t, 0, MonthNumber(""))
}

func TestMonthLabel(t *testing.T) {
	dt := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "ноябрь 2025", MonthLabel(dt))
}

func TestSortMonthLabels(t *testing.T) {
	labels := []string{"февраль 2026", "ноябрь 2025", "январь 2026", "декабрь 2025"}
	SortMonthLabels(labels)
	assert.Equal(t, []string{"ноябрь 2025", "декабрь 2025", "январь 2026", "февраль 2026"}, labels)
}

func TestCalendarWorkingDays(t *testing.T) {
	cal := ProductionCalendar()
	assert.Equal(t, 19, cal.WorkingDays("ноябрь 2025"))
	assert.Equal(t, DefaultWorkingDays, cal.WorkingDays("март 2030"))
}
