package report

// DefaultSheetConfig — конфигурация листов операционного отчета.
// Лист гамма-1 содержит четыре подгруппы, разделенные строками "Итого" и
// пустыми строками; остальные листы соответствуют одной подгруппе.
func DefaultSheetConfig() []SheetConfig {
	return []SheetConfig{
		{
			Sheet:     "гамма-1",
			Subgroups: []string{"Гамма-1", "Гамма-1А", "Гамма-1Б", "Гамма-1 Полевые"},
			Group:     "Гамма",
		},
		{Sheet: "альфа-1", Subgroups: []string{"Альфа-1"}, Group: "Альфа"},
		{Sheet: "альфа-2", Subgroups: []string{"Альфа-2"}, Group: "Альфа"},
		{Sheet: "гамма-2", Subgroups: []string{"Гамма-2"}, Group: "Гамма"},
		{Sheet: "дельта", Subgroups: []string{"Дельта"}, Group: "Дельта"},
		{Sheet: "вита", Subgroups: []string{"Вита"}, Group: "Вита"},
		{Sheet: "тета", Subgroups: []string{"Тета"}, Group: "Тета"},
		{Sheet: "дзета", Subgroups: []string{"Дзета"}, Group: "Дзета"},
	}
}

// DefaultSkipLabels — подписи строк, которые не являются сотрудниками:
// итоги, беклоги, повтор шапки. Сравнение без учета регистра.
func DefaultSkipLabels() map[string]struct{} {
	labels := []string{
		"итого", "беклог", "сотрудники",
		"беклог (0-2)", "бектог (2-4)", "беклог (2-4)",
		"беклог (5-10)", "беклог (больше 4)", "беклог (больше 10)",
		"беклог (без проектов)",
	}
	m := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		m[l] = struct{}{}
	}
	return m
}

// DefaultClientAliases — известные расхождения в написании клиентов между
// листами клиентского отчета. Ключи в нижнем регистре.
func DefaultClientAliases() map[string]string {
	return map[string]string{
		"самитагро": "Самми Агро",
		"карабанов": "Карабанов и партнеры",
		"сева":      "Ceva",
		"судьи":     "Мировые судьи",
		"кистоун":   "Кистоун Лоджистикс",
	}
}
