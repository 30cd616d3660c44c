package admission

import (
	"strconv"
	"time"
)

// ExpandDates devuelve una etiqueta D-Mon por cada día entre start y end, ambos inclusive.
// Si falta alguna fecha, no parsea o start > end, devuelve una lista vacía (sin error).
func ExpandDates(start, end string) []string {
	from, ok := parseDate(start)
	if !ok {
		return []string{}
	}
	to, ok := parseDate(end)
	if !ok {
		return []string{}
	}
	if from.After(to) {
		return []string{}
	}

	out := make([]string, 0, daysBetween(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, DayLabel(d))
	}
	return out
}

// StayDays es la cantidad de columnas de fecha (0 si el rango no es válido).
func StayDays(start, end string) int {
	from, ok := parseDate(start)
	if !ok {
		return 0
	}
	to, ok := parseDate(end)
	if !ok || from.After(to) {
		return 0
	}
	return daysBetween(from, to) + 1
}

// DayLabel formatea un día como "5-Dec" (sin cero a la izquierda).
func DayLabel(t time.Time) string {
	return strconv.Itoa(t.Day()) + "-" + t.Format("Jan")
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
