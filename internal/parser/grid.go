package parser

import "strings"

// Grid — лист книги как прямоугольник строковых значений (как отдает
// excelize GetRows). Строки могут быть разной длины, доступ к ячейкам
// за пределами данных возвращает пустую строку.
type Grid [][]string

// Cell возвращает значение ячейки (строка, колонка с нуля), пустую строку
// за пределами данных.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Rows — число строк листа.
func (g Grid) Rows() int {
	return len(g)
}

// Cols — максимальная ширина листа.
func (g Grid) Cols() int {
	max := 0
	for _, r := range g {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// SheetSource отдает лист по имени; имя ищется без учета регистра.
type SheetSource interface {
	Sheet(name string) (Grid, bool)
}

func normLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
