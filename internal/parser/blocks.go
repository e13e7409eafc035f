package parser

import (
	"strings"
	"time"
)

// Маркер начала блока в первой колонке листа.
const blockMarker = "Сотрудники"

// Смещения строк внутри блока относительно строки маркера.
const (
	dateRowOffset = 2
	bodyRowOffset = 4
)

// DateColumn — найденная колонка даты внутри блока.
type DateColumn struct {
	Col  int
	Date time.Time
}

// Block — повторяющийся блок записей внутри листа: строка шапки (она же
// строка маркера), строка дат и тело из строк сотрудников.
type Block struct {
	HeaderRow int
	DateRow   int
	BodyStart int
	BodyEnd   int // включительно
	Layout    Layout
	Dates     []DateColumn
}

// FindBlocks находит все валидные блоки листа. Кандидат начинается с
// точного совпадения маркера в колонке A и заканчивается перед следующим
// маркером либо в конце листа. Кандидат отбрасывается, если первая
// ячейка строки дат не парсится как дата (случайное совпадение текста
// маркера) или если дат не нашлось вовсе.
func FindBlocks(g Grid, headers map[string]Field) []Block {
	var starts []int
	for r := 0; r < g.Rows(); r++ {
		if strings.TrimSpace(g.Cell(r, 0)) == blockMarker {
			starts = append(starts, r)
		}
	}

	var blocks []Block
	for i, start := range starts {
		dateRow := start + dateRowOffset
		end := g.Rows() - 1
		if i+1 < len(starts) {
			end = starts[i+1] - 1
		}

		if _, ok := ParseDate(g.Cell(dateRow, dataStartCol)); !ok {
			continue
		}

		layout := DetectLayout(g, start, headers)
		dates := findDateColumns(g, dateRow, layout.Stride())
		if len(dates) == 0 {
			continue
		}

		blocks = append(blocks, Block{
			HeaderRow: start,
			DateRow:   dateRow,
			BodyStart: start + bodyRowOffset,
			BodyEnd:   end,
			Layout:    layout,
			Dates:     dates,
		})
	}
	return blocks
}

// findDateColumns шагает по строке дат с шагом раскладки до края листа.
// Непарсящиеся ячейки пропускаются, а не обрывают поиск: в хвосте листа
// бывают служебные колонки.
func findDateColumns(g Grid, dateRow, stride int) []DateColumn {
	var dates []DateColumn
	for c := dataStartCol; c < g.Cols(); c += stride {
		if dt, ok := ParseDate(g.Cell(dateRow, c)); ok {
			dates = append(dates, DateColumn{Col: c, Date: dt})
		}
	}
	return dates
}
