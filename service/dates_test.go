package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuarterLabel(t *testing.T) {
	// Enero (índice 0) es T1 y diciembre (índice 11) es T4
	assert.Equal(t, "T1", QuarterLabel(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "T1", QuarterLabel(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "T2", QuarterLabel(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "T3", QuarterLabel(time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "T4", QuarterLabel(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "T4", QuarterLabel(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)))
}

func TestNombresEnEspanol(t *testing.T) {
	d := time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC) // lunes
	assert.Equal(t, "enero", MonthName(d))
	assert.Equal(t, "lunes", WeekdayName(d))
	assert.Equal(t, "enero 2025", YearMonthLabel(d))

	d = time.Date(2025, time.December, 7, 12, 0, 0, 0, time.UTC) // domingo
	assert.Equal(t, "diciembre", MonthName(d))
	assert.Equal(t, "domingo", WeekdayName(d))
}

func TestFormatosDeFecha(t *testing.T) {
	d := time.Date(2025, time.March, 9, 14, 30, 5, 0, time.UTC)

	assert.Equal(t, "09/03/2025", FormatShortDate(d))
	assert.Equal(t, "14:30:05", FormatTimeOfDay(d))
	assert.Equal(t, "2025-03-09T14:30:05Z", FormatTimestamp(d))
	assert.Equal(t, "9 de marzo, 2025", FormatLongDate(d))
	assert.Equal(t, "09-03-2025_1430", FileTimestamp(d))
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 14, DaysBetween(from, to))
	assert.Equal(t, 0, DaysBetween(from, from))
}
