package spreadsheet

import (
	"strconv"

	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

// NumericColumns marca as colunas em que toda célula preenchida é numérica
// (e há pelo menos uma). É a inferência de tipo que o Excel de saída usa para
// decidir entre escrever número ou texto.
func NumericColumns(t *Table) []bool {
	numeric := make([]bool, len(t.Headers))
	for c := range t.Headers {
		filled := 0
		ok := true
		for _, row := range t.Rows {
			if row[c] == "" {
				continue
			}
			filled++
			if utils.ParseNumber(row[c]) == nil {
				ok = false
				break
			}
		}
		numeric[c] = ok && filled > 0
	}
	return numeric
}

// TypedRow converte uma linha crua em células, escrevendo como número as colunas numéricas
func TypedRow(values []string, numeric []bool) []Cell {
	out := make([]Cell, len(values))
	for c, v := range values {
		if v == "" {
			continue
		}
		if c < len(numeric) && numeric[c] {
			out[c] = Number(utils.ParseNumber(v))
			continue
		}
		out[c] = Text(v)
	}
	return out
}

func display(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}
