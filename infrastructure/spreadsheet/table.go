package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

// Table é uma planilha carregada em memória: cabeçalho + linhas de texto cru.
// Todas as linhas têm exatamente len(Headers) células.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
	index   map[string]int
}

// NewTable normaliza cabeçalhos (trim, vazios como "Unnamed: N", duplicados
// como "X.1") e completa linhas curtas com células vazias.
func NewTable(name string, headers []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		Headers: DedupeHeaders(headers),
		Rows:    make([][]string, 0, len(rows)),
	}

	for _, row := range rows {
		t.Rows = append(t.Rows, fitRow(row, len(t.Headers)))
	}

	t.reindex()
	return t
}

func fitRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		if _, exists := t.index[h]; !exists {
			t.index[h] = i
		}
	}
}

// DedupeHeaders replica a convenção do pandas para cabeçalhos repetidos
func DedupeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	seen := make(map[string]int, len(headers))

	for i, raw := range headers {
		h := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}

		name := h
		for {
			count, dup := seen[name]
			if !dup {
				break
			}
			seen[name] = count + 1
			name = fmt.Sprintf("%s.%d", h, count+1)
		}

		seen[name] = 0
		out[i] = name
	}

	return out
}

// Len retorna o número de linhas de dados
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index retorna a posição da coluna ou -1
func (t *Table) Index(column string) int {
	if i, ok := t.index[column]; ok {
		return i
	}
	return -1
}

func (t *Table) Has(column string) bool {
	return t.Index(column) >= 0
}

// Missing lista as colunas obrigatórias ausentes, na ordem pedida
func (t *Table) Missing(columns ...string) []string {
	missing := make([]string, 0)
	for _, c := range columns {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Value retorna a célula da linha/coluna, ou "" quando a coluna não existe
func (t *Table) Value(row int, column string) string {
	i := t.Index(column)
	if i < 0 {
		return ""
	}
	return t.Rows[row][i]
}

// Number interpreta a célula com a semântica de to_numeric: inválido vira nil
func (t *Table) Number(row int, column string) *float64 {
	if !t.Has(column) {
		return nil
	}
	return utils.ParseNumber(t.Value(row, column))
}

// Rename troca o nome de uma coluna existente
func (t *Table) Rename(from, to string) {
	i := t.Index(from)
	if i < 0 {
		return
	}
	t.Headers[i] = to
	t.reindex()
}

// AppendColumn adiciona uma coluna ao final; values deve ter uma entrada por linha
func (t *Table) AppendColumn(name string, values []string) {
	t.Headers = append(t.Headers, name)
	for i := range t.Rows {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i] = append(t.Rows[i], v)
	}
	t.reindex()
}

// FindColumn devolve a primeira coluna cujo nome (minúsculo) contém alguma das palavras-chave.
// As colunas são percorridas na ordem da planilha, não na ordem das palavras.
func (t *Table) FindColumn(keywords ...string) string {
	for _, h := range t.Headers {
		low := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(low, strings.ToLower(kw)) {
				return h
			}
		}
	}
	return ""
}

// Filter devolve uma nova tabela só com as linhas aceitas
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := &Table{
		Name:    t.Name,
		Headers: append([]string(nil), t.Headers...),
		Rows:    make([][]string, 0, len(t.Rows)),
	}

	for i, row := range t.Rows {
		if keep(i) {
			out.Rows = append(out.Rows, append([]string(nil), row...))
		}
	}

	out.reindex()
	return out
}
