package parser

// Field — вид колонки внутри дневной группы блока.
type Field int

const (
	// FieldNone — подавленная колонка, при чтении строки пропускается.
	FieldNone Field = iota
	FieldTickets
	FieldTasks
	FieldRegTickets
	FieldRegTasks
	FieldHours
	FieldSiteVisits

	// Сырые виды из шапки, разрешаются в resolveLayout.
	fieldRegCombined
	fieldZNI
)

// Layout — упорядоченный список видов колонок одной дневной группы.
// Шаг между датами (stride) равен длине списка.
type Layout []Field

// Stride — число колонок на одну дату.
func (l Layout) Stride() int {
	return len(l)
}

// Has сообщает, есть ли в раскладке колонка данного вида.
func (l Layout) Has(f Field) bool {
	for _, x := range l {
		if x == f {
			return true
		}
	}
	return false
}

// DefaultHeaderMap — таблица "текст шапки → вид колонки". Текст шапки
// нормализуется (trim + нижний регистр). Варьируется между листами и
// месяцами, поэтому вариантов много.
func DefaultHeaderMap() map[string]Field {
	return map[string]Field{
		"решенные заявки":          FieldTickets,
		"решенные задачи":          FieldTasks,
		"решенные рег.заявки":      FieldRegTickets,
		"решенные рег.задачи":      FieldRegTasks,
		"рег. заявки /задачи":      fieldRegCombined,
		"рег.заявки/задачи":        fieldRegCombined,
		"решенные заявки и задачи": fieldRegCombined,
		"решенные заявки/задачи":   fieldRegCombined,
		"решенные заявки/\nзадачи": fieldRegCombined,
		"выезды":                   FieldSiteVisits,
		"решенные зни":             fieldZNI,
		"тзт":                      FieldHours,
	}
}

// defaultLayout — раскладка по умолчанию, когда шапка блока не
// распознана вовсе. Старый формат отчета: четыре счетчика и часы.
func defaultLayout() Layout {
	return Layout{FieldTickets, FieldTasks, FieldRegTickets, FieldRegTasks, FieldHours}
}

// Колонки данных начинаются со второй колонки листа (первая — подписи).
const dataStartCol = 1

// Предохранитель от бесконечно широких листов.
const maxHeaderCols = 200

// DetectLayout определяет раскладку колонок блока по строке шапки.
// Сканирует слева направо от dataStartCol, останавливается на первой
// пустой или нераспознанной ячейке, либо когда вид повторяет первый
// (началась следующая дневная группа). Пустая раскладка заменяется
// раскладкой по умолчанию.
func DetectLayout(g Grid, headerRow int, headers map[string]Field) Layout {
	limit := g.Cols()
	if limit > maxHeaderCols {
		limit = maxHeaderCols
	}

	var fields Layout
	for c := dataStartCol; c < limit; c++ {
		h := normLabel(g.Cell(headerRow, c))
		if h == "" {
			break
		}
		f, ok := headers[h]
		if !ok {
			break
		}
		if len(fields) > 0 && f == fields[0] {
			break
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		fields = defaultLayout()
	}
	return resolveLayout(fields)
}

// resolveLayout разрешает неоднозначные виды по контексту раскладки.
func resolveLayout(fields Layout) Layout {
	hasRegTasks := fields.Has(FieldRegTasks)
	out := make(Layout, len(fields))
	for i, f := range fields {
		switch f {
		case fieldRegCombined:
			// Совмещенная колонка "рег. заявки/задачи" — это сумма,
			// которую не разделить; целиком считается рег. заявками.
			// Рег. задачи берутся только из своей отдельной колонки.
			out[i] = FieldRegTickets
		case fieldZNI:
			// ЗНИ считаются рег. задачами, только если отдельной
			// колонки рег. задач в этом блоке нет; иначе колонка лишняя.
			if hasRegTasks {
				out[i] = FieldNone
			} else {
				out[i] = FieldRegTasks
			}
		default:
			out[i] = f
		}
	}
	return out
}
