package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Русские названия месяцев в нижнем регистре.
var monthNames = [13]string{
	"", "январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// MonthNumber возвращает номер месяца по русскому названию (без учета
// регистра), 0 если название не распознано.
func MonthNumber(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := 1; i <= 12; i++ {
		if monthNames[i] == name {
			return i
		}
	}
	return 0
}

// MonthLabel форматирует дату как "<месяц> <год>", например "ноябрь 2025".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()], t.Year())
}

// monthSortKey раскладывает метку "месяц год" в (год, номер месяца) для
// хронологической сортировки. Нераспознанные метки уходят в начало.
func monthSortKey(label string) (int, int) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return 0, 0
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0
	}
	return year, MonthNumber(parts[0])
}

// SortMonthLabels сортирует метки месяцев хронологически, на месте.
func SortMonthLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		yi, mi := monthSortKey(labels[i])
		yj, mj := monthSortKey(labels[j])
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
}

// MonthOrderMap нумерует отсортированные метки месяцев с единицы.
func MonthOrderMap(sorted []string) map[string]int {
	m := make(map[string]int, len(sorted))
	for i, label := range sorted {
		m[label] = i + 1
	}
	return m
}
