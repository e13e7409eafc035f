package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"3,25", 3.25},
		{"abc", 0},
		{"12ч", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SafeFloat(c.in), "вход %q", c.in)
	}
}

func TestSafeInt(t *testing.T) {
	assert.Equal(t, 0, SafeInt(""))
	assert.Equal(t, 3, SafeInt("2.5"))
	assert.Equal(t, 2, SafeInt("2.4"))
	assert.Equal(t, 0, SafeInt("мусор"))
}

func TestParseDate(t *testing.T) {
	dt, ok := ParseDate("03.11.2025")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), dt)

	// все прочие форматы — не дата, структурный признак, не ошибка
	for _, s := range []string{"", "Сотрудники", "2025-11-03", "03/11/2025", "тзт"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, "вход %q", s)
	}
}
