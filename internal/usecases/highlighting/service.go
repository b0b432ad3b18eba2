package highlighting

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

// Colunas de KPI exportadas pelo Gerenciador de Anúncios do META
const (
	ColumnCTR       = "CTR (Rasio Klik Tayang Tautan)"
	ColumnCPM       = "CPM (Biaya Per 1.000 Tayangan)"
	ColumnROAS      = "ROAS Pembelian Khusus untuk Item Bersama"
	ColumnFrequency = "Frekuensi"

	// Qualquer coluna cujo nome contém o marcador é uma taxa de adição ao carrinho
	atcMarker = "%ATC"

	SheetKPIHighlight = "KPI Highlight"
	outputFileName    = "kpi_highlight.xlsx"
)

// Limites dos destaques
const (
	CPMAbove       = 15000.0
	CTRBelow       = 0.5
	FrequencyAbove = 3.0
	ROASFrom       = 10.0
)

const (
	fillBad         = "FFC7CE"
	fillGood        = "C6EFCE"
	decimalNumFmt   = "0.##"
	minColumnWidth  = 15
	maxColumnWidth  = 50
	columnWidthPad  = 2
	previewDecimals = 2
)

var decimalColumns = map[string]bool{
	ColumnCTR:       true,
	ColumnCPM:       true,
	ColumnROAS:      true,
	ColumnFrequency: true,
}

var (
	ErrReadWorkbook  = errors.New("error reading workbook")
	ErrEmptySheet    = errors.New("sheet has no header")
	ErrBuildWorkbook = errors.New("error building workbook")
)

// KPIHighlighter define o destaque de KPIs da planilha do META
type KPIHighlighter interface {
	// Highlight formata percentuais e decimais e pinta as células fora da meta
	Highlight(data []byte) (*domain.GeneratedWorkbook, error)
}

type Service struct{}

func NewService() KPIHighlighter {
	return &Service{}
}

func (s *Service) Highlight(data []byte) (*domain.GeneratedWorkbook, error) {
	wb, err := spreadsheet.OpenWorkbook(data)
	if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrUnsupportedFile, err.Error())
	}
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}
	defer wb.Close()

	table, err := wb.ReadFirstSheet()
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}
	if len(table.Headers) == 0 {
		return nil, domain.NewProcessingError(ErrEmptySheet, apiErrors.ErrInvalidFormat, table.Name)
	}

	fillNumericBlanks(table)

	stats := &domain.KPIHighlightStats{
		Rows:            table.Len(),
		Columns:         len(table.Headers),
		HighlightedBad:  make(map[string]int),
		HighlightedGood: make(map[string]int),
	}

	sheet := &spreadsheet.Sheet{
		Name:    SheetKPIHighlight,
		Headers: table.Headers,
		Rows:    make([][]spreadsheet.Cell, table.Len()),
	}

	for r, row := range table.Rows {
		cells := make([]spreadsheet.Cell, len(row))
		for c, raw := range row {
			cells[c] = s.cell(table.Headers[c], raw, stats)
		}
		sheet.Rows[r] = cells
	}
	sheet.AutoWidths(minColumnWidth, columnWidthPad, maxColumnWidth)

	buf, err := spreadsheet.Render(sheet)
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	stats.Preview = domain.TablePreview{
		Sheet:   table.Name,
		Headers: table.Headers,
		Rows:    table.Len(),
		Head:    previewRows(table),
	}

	log.L.WithFields(log.Fields{
		"tool": "meta_kpi_highlight",
		"rows": stats.Rows,
	}).Infof("highlighting: %d rows highlighted", stats.Rows)

	return &domain.GeneratedWorkbook{
		FileName: outputFileName,
		Content:  buf.Bytes(),
		Preview:  stats,
	}, nil
}

// fillNumericBlanks zera as células vazias das colunas numéricas. Coluna
// sem nenhum valor preenchido também conta como numérica.
func fillNumericBlanks(table *spreadsheet.Table) {
	numeric := spreadsheet.NumericColumns(table)
	for c := range table.Headers {
		if !numeric[c] && blankColumn(table, c) {
			numeric[c] = true
		}
	}
	for _, row := range table.Rows {
		for c, v := range row {
			if numeric[c] && strings.TrimSpace(v) == "" {
				row[c] = "0"
			}
		}
	}
}

func blankColumn(table *spreadsheet.Table, c int) bool {
	for _, row := range table.Rows {
		if c < len(row) && strings.TrimSpace(row[c]) != "" {
			return false
		}
	}
	return true
}

// cell escreve números como número (percentual para %ATC, decimal para as colunas de KPI)
// e aplica o destaque pelo valor original. Texto passa sem alteração.
func (s *Service) cell(column, raw string, stats *domain.KPIHighlightStats) spreadsheet.Cell {
	v := utils.ParseNumber(raw)
	if v == nil {
		if raw == "" {
			return spreadsheet.Cell{}
		}
		return spreadsheet.Text(raw)
	}

	value := *v
	style := spreadsheet.Style{}

	switch {
	case strings.Contains(column, atcMarker):
		if value > 1 {
			value /= 100
		}
		style.NumFmt = spreadsheet.NumFmtPercent2
	case decimalColumns[column]:
		style.CustomNumFmt = decimalNumFmt
	}

	switch fill := highlight(column, *v); fill {
	case fillBad:
		style.FillColor = fill
		stats.HighlightedBad[column]++
	case fillGood:
		style.FillColor = fill
		stats.HighlightedGood[column]++
	}

	cell := spreadsheet.Cell{Value: value}
	if style != (spreadsheet.Style{}) {
		cell.Style = &style
	}
	return cell
}

func highlight(column string, v float64) string {
	switch {
	case column == ColumnCPM && v > CPMAbove:
		return fillBad
	case column == ColumnCTR && v < CTRBelow:
		return fillBad
	case column == ColumnFrequency && v > FrequencyAbove:
		return fillBad
	case column == ColumnROAS && v >= ROASFrom:
		return fillGood
	default:
		return ""
	}
}

// previewRows formata as células como a tela de prévia: %ATC em "12.34%", KPIs com duas casas
func previewRows(table *spreadsheet.Table) [][]string {
	limit := table.Len()
	if limit > domain.PreviewRows {
		limit = domain.PreviewRows
	}

	out := make([][]string, limit)
	for r := 0; r < limit; r++ {
		row := make([]string, len(table.Headers))
		for c, raw := range table.Rows[r] {
			row[c] = previewValue(table.Headers[c], raw)
		}
		out[r] = row
	}
	return out
}

func previewValue(column, raw string) string {
	v := utils.ParseNumber(raw)
	if v == nil {
		return raw
	}

	switch {
	case strings.Contains(column, atcMarker):
		value := *v
		if value <= 1 {
			value *= 100
		}
		return fmt.Sprintf("%.*f%%", previewDecimals, value)
	case decimalColumns[column]:
		return fmt.Sprintf("%.*f", previewDecimals, *v)
	default:
		return raw
	}
}
