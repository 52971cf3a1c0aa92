package service

import (
	"fmt"
	"time"
)

// Nombres de meses y días en español para los exportes
var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// MonthName devuelve el nombre del mes en español
func MonthName(t time.Time) string {
	return spanishMonths[int(t.Month())-1]
}

// WeekdayName devuelve el nombre del día de la semana en español
func WeekdayName(t time.Time) string {
	return spanishWeekdays[int(t.Weekday())]
}

// QuarterLabel devuelve el trimestre con el formato T1..T4
func QuarterLabel(t time.Time) string {
	month0 := int(t.Month()) - 1
	return fmt.Sprintf("T%d", (month0+3)/3)
}

// YearMonthLabel devuelve la etiqueta "mes año", por ejemplo "enero 2025"
func YearMonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(t), t.Year())
}

// FormatShortDate devuelve la fecha con formato dd/MM/yyyy
func FormatShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTimeOfDay devuelve la hora con formato HH:mm:ss
func FormatTimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatTimestamp devuelve la fecha y hora completas en formato ISO
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// FormatLongDate devuelve la fecha con formato "2 de enero, 2006"
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s, %d", t.Day(), MonthName(t), t.Year())
}

// FileTimestamp devuelve la marca de tiempo usada en nombres de archivo
func FileTimestamp(t time.Time) string {
	return t.Format("02-01-2006_1504")
}

// DaysBetween devuelve la diferencia en días completos entre dos fechas
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
