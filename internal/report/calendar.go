package report

// Производственный календарь: рабочие дни по месяцам.
// Для месяцев вне календаря берется 21 рабочий день.
const DefaultWorkingDays = 21

// Calendar — рабочие дни по меткам месяцев.
type Calendar map[string]int

// WorkingDays возвращает число рабочих дней месяца, либо значение по
// умолчанию, если месяц в календаре отсутствует.
func (c Calendar) WorkingDays(monthLabel string) int {
	if d, ok := c[monthLabel]; ok {
		return d
	}
	return DefaultWorkingDays
}

// ProductionCalendar возвращает производственный календарь РФ на 2025-2026.
func ProductionCalendar() Calendar {
	return Calendar{
		"январь 2025":   17,
		"февраль 2025":  19,
		"март 2025":     20,
		"апрель 2025":   22,
		"май 2025":      17,
		"июнь 2025":     19,
		"июль 2025":     23,
		"август 2025":   21,
		"сентябрь 2025": 22,
		"октябрь 2025":  23,
		"ноябрь 2025":   19,
		"декабрь 2025":  22,
		"январь 2026":   15,
		"февраль 2026":  19,
		"март 2026":     22,
		"апрель 2026":   22,
		"май 2026":      18,
		"июнь 2026":     21,
		"июль 2026":     23,
		"август 2026":   21,
		"сентябрь 2026": 22,
		"октябрь 2026":  22,
		"ноябрь 2026":   20,
		"декабрь 2026":  22,
	}
}
