package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockGrid — минимальный валидный блок: шапка из двух полей, строка дат
// через одну, тело через четыре.
func blockGrid() Grid {
	return Grid{
		{"Сотрудники", "Решенные заявки", "Решенные задачи", "Решенные заявки", "Решенные задачи"},
		{},
		{"", "03.11.2025", "", "04.11.2025"},
		{},
		{"Иванов И.И.", "5", "2", "7", "1"},
		{"Петров П.П.", "3", "0", "2", "4"},
	}
}

func TestFindBlocks_Basic(t *testing.T) {
	blocks := FindBlocks(blockGrid(), DefaultHeaderMap())
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 0, b.HeaderRow)
	assert.Equal(t, 2, b.DateRow)
	assert.Equal(t, 4, b.BodyStart)
	assert.Equal(t, 5, b.BodyEnd)
	assert.Equal(t, 2, b.Layout.Stride())
	require.Len(t, b.Dates, 2)
	assert.Equal(t, 1, b.Dates[0].Col)
	assert.Equal(t, 3, b.Dates[1].Col)
}

func TestFindBlocks_DiscardsUnparseableDate(t *testing.T) {
	// первая ячейка строки дат не парсится — блок целиком отбрасывается,
	// даже при корректном теле
	g := blockGrid()
	g[2][1] = "не дата"
	blocks := FindBlocks(g, DefaultHeaderMap())
	assert.Empty(t, blocks)
}

func TestFindBlocks_SkipsNonDateColumnsWithoutStopping(t *testing.T) {
	// разрыв в строке дат не обрывает поиск колонок
	g := Grid{
		{"Сотрудники", "Решенные заявки", "Решенные задачи", "Решенные заявки", "Решенные задачи", "Решенные заявки", "Решенные задачи"},
		{},
		{"", "03.11.2025", "", "итого", "", "05.11.2025"},
		{},
		{"Иванов И.И.", "1", "1", "1", "1", "1", "1"},
	}
	blocks := FindBlocks(g, DefaultHeaderMap())
	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Dates, 2)
	assert.Equal(t, 1, blocks[0].Dates[0].Col)
	assert.Equal(t, 5, blocks[0].Dates[1].Col)
}

func TestFindBlocks_MultipleBlocks(t *testing.T) {
	g := append(blockGrid(), Grid{
		{"Сотрудники", "Решенные заявки", "Решенные задачи"},
		{},
		{"", "01.12.2025"},
		{},
		{"Иванов И.И.", "4", "4"},
	}...)
	blocks := FindBlocks(g, DefaultHeaderMap())
	require.Len(t, blocks, 2)
	assert.Equal(t, 5, blocks[0].BodyEnd) // до следующего маркера
	assert.Equal(t, 6, blocks[1].HeaderRow)
	assert.Equal(t, 10, blocks[1].BodyEnd)
}

func TestFindBlocks_StrayMarkerWithoutDates(t *testing.T) {
	g := Grid{
		{"Сотрудники"},
		{},
		{"", "просто текст"},
	}
	assert.Empty(t, FindBlocks(g, DefaultHeaderMap()))
}
