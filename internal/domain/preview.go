package domain

// TablePreview são as primeiras linhas de uma aba gerada, para exibição antes do download
type TablePreview struct {
	Sheet   string     `json:"sheet"`
	Headers []string   `json:"headers"`
	Rows    int        `json:"rows"`
	Head    [][]string `json:"head"`
}

// PreviewRows é quantas linhas entram na prévia
const PreviewRows = 20

// NewTablePreview corta as linhas em PreviewRows
func NewTablePreview(sheet string, headers []string, rows [][]string) TablePreview {
	head := rows
	if len(head) > PreviewRows {
		head = head[:PreviewRows]
	}

	return TablePreview{
		Sheet:   sheet,
		Headers: headers,
		Rows:    len(rows),
		Head:    head,
	}
}
