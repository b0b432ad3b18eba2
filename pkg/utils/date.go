package utils

import (
	"regexp"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

type datePattern struct {
	re     *regexp.Regexp
	layout string
}

// A ordem importa: formatos com separador antes do compacto YYYYMMDD,
// que casaria com qualquer sequência de 8 dígitos.
var datePatterns = []datePattern{
	{re: regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), layout: "2006-01-02"},
	{re: regexp.MustCompile(`\d{4}/\d{2}/\d{2}`), layout: "2006/01/02"},
	{re: regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), layout: "02-01-2006"},
	{re: regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), layout: "02/01/2006"},
	{re: regexp.MustCompile(`(?:^|\D)(\d{8})(?:\D|$)`), layout: "20060102"},
}

// FindDate procura a primeira data válida dentro de um texto livre
// (nome de arquivo, título de relatório etc.)
func FindDate(text string) (time.Time, bool) {
	for _, p := range datePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			candidate := m[0]
			if len(m) > 1 {
				candidate = m[1]
			}

			if t, err := time.Parse(p.layout, candidate); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}
