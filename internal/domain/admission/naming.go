package admission

import (
	"strings"
	"unicode"
)

const defaultPDFName = "chart.pdf"

// PDFFilename arma el nombre sugerido del PDF a partir del número de ficha.
func PDFFilename(fileNo string) string {
	sanitized := alnum(fileNo)
	if sanitized == "" {
		return defaultPDFName
	}
	return "chart_" + sanitized + ".pdf"
}

// DocumentTitle es el título que el navegador usa como nombre al "guardar como PDF".
func DocumentTitle(fileNo, admissionDate string) string {
	parts := []string{"IP_Chart"}
	if n := alnum(fileNo); n != "" {
		parts = append(parts, n)
	}
	if _, ok := parseDate(admissionDate); ok {
		parts = append(parts, FormatDisplayDate(admissionDate))
	}
	return strings.Join(parts, "_")
}

func alnum(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, s)
}
