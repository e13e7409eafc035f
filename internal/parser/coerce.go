package parser

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Отчеты ведутся вручную, поэтому числовые и датные ячейки приводим
// всегда без ошибок: мусор превращается в ноль или в "нет даты".

// SafeFloat приводит значение ячейки к числу; пустое или нечисловое
// значение дает 0.
func SafeFloat(v string) float64 {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// запятая как десятичный разделитель встречается в ручных правках
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return f
	}
	return 0
}

// SafeInt — SafeFloat с округлением до ближайшего целого.
func SafeInt(v string) int {
	return int(math.Round(SafeFloat(v)))
}

const dateLayout = "02.01.2006"

// ParseDate принимает только формат ДД.ММ.ГГГГ; все остальное — не дата.
// Второй результат false используется как структурный признак
// ("эта строка не заголовок дат"), а не как ошибка.
func ParseDate(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
