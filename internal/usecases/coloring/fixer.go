package coloring

import (
	"strings"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
)

const (
	fixedSheetName = "Sheet1"
	fixedFileName  = "campaign_fixed.xlsx"
	fixedColumnPad = 2
)

// FixCampaignSheet evita que o ID da campanha vire notação científica e
// converte "12,5" em 12.5 nas colunas de texto. Uma coluna passa a ser
// numérica quando todas as células preenchidas viram número.
func (s *Service) FixCampaignSheet(data []byte) (*domain.GeneratedWorkbook, error) {
	wb, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	table, err := wb.ReadFirstSheet()
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}
	if len(table.Headers) == 0 {
		return nil, domain.NewProcessingError(ErrEmptySheet, apiErrors.ErrInvalidFormat, table.Name)
	}

	protected := protectedColumn(table)
	before := spreadsheet.NumericColumns(table)

	for c, h := range table.Headers {
		if h == protected || before[c] {
			continue
		}
		for _, row := range table.Rows {
			row[c] = strings.ReplaceAll(row[c], ",", ".")
		}
	}

	numeric := typedColumns(table, protected)
	stats := &domain.FixerStats{
		ProtectedColumn: protected,
		NumericColumns:  make([]string, 0),
		Rows:            table.Len(),
		Columns:         len(table.Headers),
		Preview:         domain.NewTablePreview(table.Name, table.Headers, table.Rows),
	}
	for c, h := range table.Headers {
		if numeric[c] {
			stats.NumericColumns = append(stats.NumericColumns, h)
		}
	}

	rows := make([][]spreadsheet.Cell, table.Len())
	for r, raw := range table.Rows {
		rows[r] = spreadsheet.TypedRow(raw, numeric)
	}

	sheet := &spreadsheet.Sheet{Name: fixedSheetName, Headers: table.Headers, Rows: rows}
	sheet.AutoWidths(0, fixedColumnPad, 0)

	buf, err := spreadsheet.Render(sheet)
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	log.L.WithFields(log.Fields{
		"tool":      "tiktok_excel_fixer",
		"protected": protected,
	}).Infof("coloring: fixed %d rows, %d numeric columns", stats.Rows, len(stats.NumericColumns))

	return &domain.GeneratedWorkbook{
		FileName: fixedFileName,
		Content:  buf.Bytes(),
		Preview:  stats,
	}, nil
}
