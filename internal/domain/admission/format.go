package admission

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	isoDate     = "2006-01-02"
	displayDate = "02-Jan-2006"
)

var cagePrefixRe = regexp.MustCompile(`^([A-Z]+)(\d+)$`)

// FormatName capitaliza cada palabra y colapsa espacios.
// Si el valor ya estaba normalizado y termina en espacio, conserva un espacio final
// para no cortar a quien está tipeando la siguiente palabra.
func FormatName(value string) string {
	if value == "" {
		return ""
	}

	// cases.Caser no es seguro entre goroutines: uno por llamada.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	words := strings.Fields(value)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(string(r)) + lower.String(w[size:])
	}
	joined := strings.Join(words, " ")

	if joined != "" && endsWithSpace(value) && isTypedPrefix(value) {
		return joined + " "
	}
	return joined
}

// FormatMedicine usa el mismo title case que los nombres.
func FormatMedicine(value string) string {
	return FormatName(value)
}

// FormatFileNumber deja solo dígitos.
func FormatFileNumber(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

// FormatCageNo: mayúsculas, solo [A-Z0-9 ] y un espacio entre prefijo y número (IP1 -> IP 1).
func FormatCageNo(value string) string {
	if value == "" {
		return ""
	}
	v := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			return r
		default:
			return -1
		}
	}, strings.ToUpper(value))
	v = strings.TrimSpace(v)
	return cagePrefixRe.ReplaceAllString(v, "$1 $2")
}

// FormatWeight deja un número plano con a lo sumo un separador decimal.
// La coma se acepta como separador y se normaliza a punto.
func FormatWeight(value string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case (r == '.' || r == ',') && !seenDot:
			seenDot = true
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatDisplayDate convierte YYYY-MM-DD a DD-Mon-YYYY. Si no parsea, devuelve el valor tal cual.
func FormatDisplayDate(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format(displayDate)
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(isoDate, value); err == nil {
		return t, true
	}
	// Algunos clientes mandan timestamp completo; nos quedamos con el día.
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

// isTypedPrefix: el valor (sin el espacio final) ya tiene la forma "palabra palabra".
func isTypedPrefix(s string) bool {
	body := strings.TrimRightFunc(s, unicode.IsSpace)
	return body == strings.Join(strings.Fields(body), " ")
}
