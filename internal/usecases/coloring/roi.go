package coloring

import (
	"errors"
	"strings"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

const (
	SheetColored  = "DATA_COLORED"
	SheetOriginal = "DATA_ASLI"

	ComputedBrutoColumn = "__pendapatan_bruto_computed"

	statusNeedsAuthorization = "perlu otorisasi"
	defaultBaseName          = "tiktok"
	timestampLayout          = "20060102_150405"
)

// Palavras-chave das colunas, procuradas em minúsculas dentro do nome da coluna
var (
	costKeywords   = []string{"biaya", "cost"}
	grossKeywords  = []string{"pendapatan kotor", "pendapatan_kotor", "pendapatan", "gmv", "revenue"}
	brutoKeywords  = []string{"pendapatan bruto", "penghasilan bruto", "penghasilan_bruto", "bruto", "gross", "gross revenue"}
	roiKeywords    = []string{"roi"}
	statusKeywords = []string{"status"}
	bonusKeywords  = []string{"bonus", "komisi", "tunjangan", "insentif", "incentive"}
)

// PercentColumns são as taxas do relatório de anúncios do TikTok gravadas como 0.00%
var PercentColumns = []string{
	"Tingkat klik iklan produk",
	"Rasio konversi iklan",
	"Rasio tayang video iklan 2 detik",
	"Rasio tayang video iklan 6 detik",
	"Rasio tayang video iklan 25%",
	"Rasio tayang video iklan 50%",
	"Rasio tayang video iklan 75%",
	"Rasio tayang video iklan 100%",
}

// Cores de preenchimento das linhas
const (
	FillNeedsAuthorization = "98F073"
	FillStatusCell         = "FF7979"
	FillROIHigh            = "00FF00"
	FillROILow             = "FFFF00"

	ROIHighFrom = 10.0
)

// ColorROI pinta as linhas pelo ROI sem alterar os dados. Linhas com custo,
// receita e ROI todos iguais a zero são descartadas da aba colorida.
func (s *Service) ColorROI(data []byte, opts domain.ROIColoringOptions) (*domain.GeneratedWorkbook, error) {
	wb, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet, err := pickSheet(wb, opts.Sheet)
	if err != nil {
		return nil, err
	}

	table, err := wb.ReadSheet(sheet)
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}

	columns, err := resolveROIColumns(table)
	if err != nil {
		return nil, err
	}

	deletionRevenue := columns.GrossRevenue
	if deletionRevenue == "" {
		deletionRevenue = columns.BrutoRevenue
	}

	filtered := table.Filter(func(row int) bool {
		return !allZero(
			utils.ParseNumericLike(table.Value(row, columns.Cost)),
			utils.ParseNumericLike(table.Value(row, deletionRevenue)),
			utils.ParseNumericLike(table.Value(row, columns.ROI)),
		)
	})

	if columns.BrutoComputed {
		filtered.AppendColumn(ComputedBrutoColumn, computedBruto(filtered, columns.GrossRevenue))
	}

	stats := &domain.ROIColoringStats{
		Sheet:       sheet,
		RowsBefore:  table.Len(),
		RowsAfter:   filtered.Len(),
		RowsRemoved: table.Len() - filtered.Len(),
		Columns:     columns,
		Preview:     domain.NewTablePreview(sheet, filtered.Headers, filtered.Rows),
	}

	protected := protectedColumn(table)

	buf, err := spreadsheet.Render(
		coloredSheet(filtered, columns, protected),
		originalSheet(table, protected),
	)
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	log.L.WithFields(log.Fields{
		"tool":  "tiktok_roi_coloring",
		"sheet": sheet,
		"rows":  stats.RowsAfter,
	}).Infof("coloring: %d rows colored, %d removed", stats.RowsAfter, stats.RowsRemoved)

	base := utils.TrimExtension(opts.FileName)
	if base == "" {
		base = defaultBaseName
	}

	return &domain.GeneratedWorkbook{
		FileName: base + "_colored_" + s.now().Format(timestampLayout) + ".xlsx",
		Content:  buf.Bytes(),
		Preview:  stats,
	}, nil
}

func pickSheet(wb *spreadsheet.Workbook, requested string) (string, error) {
	names := wb.SheetNames()
	if requested == "" {
		return names[0], nil
	}

	for _, name := range names {
		if name == requested {
			return name, nil
		}
	}

	return "", domain.NewProcessingError(ErrSheetNotFound, apiErrors.ErrInvalidRequest, requested)
}

// resolveROIColumns localiza as colunas usadas na coloração. A receita efetiva é a
// bruta quando existe; sem ela, a kotor somada às colunas de bônus (se houver).
func resolveROIColumns(table *spreadsheet.Table) (domain.ROIColumns, error) {
	columns := domain.ROIColumns{
		Cost:         table.FindColumn(costKeywords...),
		GrossRevenue: table.FindColumn(grossKeywords...),
		BrutoRevenue: table.FindColumn(brutoKeywords...),
		ROI:          table.FindColumn(roiKeywords...),
		Status:       table.FindColumn(statusKeywords...),
	}

	missing := make([]string, 0)
	if columns.Cost == "" {
		missing = append(missing, "Biaya")
	}
	if columns.GrossRevenue == "" && columns.BrutoRevenue == "" {
		missing = append(missing, "Pendapatan (kolom 'pendapatan kotor' atau 'pendapatan bruto')")
	}
	if columns.ROI == "" {
		missing = append(missing, "ROI")
	}
	if len(missing) > 0 {
		return columns, domain.NewProcessingError(ErrMissingColumns, apiErrors.ErrMissingColumn, strings.Join(missing, ", "))
	}

	switch {
	case columns.BrutoRevenue != "":
		columns.EffectiveRevenue = columns.BrutoRevenue
	case len(bonusColumns(table)) > 0:
		columns.EffectiveRevenue = ComputedBrutoColumn
		columns.BrutoComputed = true
	default:
		columns.EffectiveRevenue = columns.GrossRevenue
	}

	columns.PercentColumns = make([]string, 0, len(PercentColumns))
	for _, c := range PercentColumns {
		if table.Has(c) {
			columns.PercentColumns = append(columns.PercentColumns, c)
		} else {
			columns.MissingPercent = append(columns.MissingPercent, c)
		}
	}

	return columns, nil
}

func bonusColumns(table *spreadsheet.Table) []string {
	out := make([]string, 0)
	for _, h := range table.Headers {
		low := strings.ToLower(h)
		for _, kw := range bonusKeywords {
			if strings.Contains(low, kw) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

// computedBruto soma a receita kotor e os bônus de cada linha; desconhecidos contam como 0
func computedBruto(table *spreadsheet.Table, gross string) []string {
	bonus := bonusColumns(table)
	values := make([]string, table.Len())

	for i := range table.Rows {
		total := utils.ValueOr(utils.ParseNumericLike(table.Value(i, gross)), 0)
		for _, b := range bonus {
			total += utils.ValueOr(utils.ParseNumericLike(table.Value(i, b)), 0)
		}
		values[i] = formatFloat(total)
	}

	return values
}

func allZero(values ...*float64) bool {
	for _, v := range values {
		if v == nil || *v != 0 {
			return false
		}
	}
	return true
}

// rowFills devolve a cor de cada célula da linha ("" = sem cor)
func rowFills(cost, revenue, roi *float64, status string, width, statusIdx int) []string {
	fills := make([]string, width)
	fill := func(color string) []string {
		for i := range fills {
			fills[i] = color
		}
		return fills
	}

	if statusIdx >= 0 && strings.ToLower(strings.TrimSpace(status)) == statusNeedsAuthorization {
		fill(FillNeedsAuthorization)
		fills[statusIdx] = FillStatusCell
		return fills
	}

	if roi == nil {
		return fills
	}

	costPositive := cost != nil && *cost > 0
	revenuePositive := revenue != nil && *revenue > 0
	if !costPositive && !revenuePositive {
		return fills
	}

	switch {
	case *roi == 0:
		return fills
	case *roi >= ROIHighFrom:
		return fill(FillROIHigh)
	default:
		return fill(FillROILow)
	}
}

func coloredSheet(table *spreadsheet.Table, columns domain.ROIColumns, protected string) *spreadsheet.Sheet {
	numeric := typedColumns(table, protected)

	percent := make(map[int]bool, len(columns.PercentColumns))
	for _, c := range columns.PercentColumns {
		percent[table.Index(c)] = true
	}

	statusIdx := table.Index(columns.Status)
	if columns.Status == "" {
		statusIdx = -1
	}

	rows := make([][]spreadsheet.Cell, table.Len())
	for r, raw := range table.Rows {
		fills := rowFills(
			utils.ParseNumericLike(table.Value(r, columns.Cost)),
			utils.ParseNumericLike(table.Value(r, columns.EffectiveRevenue)),
			utils.ParseNumericLike(table.Value(r, columns.ROI)),
			table.Value(r, columns.Status),
			len(raw), statusIdx,
		)

		row := spreadsheet.TypedRow(raw, numeric)
		for c := range row {
			style := spreadsheet.Style{FillColor: fills[c]}
			if percent[c] {
				row[c] = spreadsheet.Number(utils.ParseNumericLike(raw[c]))
				if row[c].Value != nil {
					style.NumFmt = spreadsheet.NumFmtPercent2
				}
			}
			if style != (spreadsheet.Style{}) {
				row[c] = row[c].WithStyle(&style)
			}
		}
		rows[r] = row
	}

	return &spreadsheet.Sheet{
		Name:    SheetColored,
		Headers: table.Headers,
		Rows:    rows,
	}
}

func originalSheet(table *spreadsheet.Table, protected string) *spreadsheet.Sheet {
	numeric := typedColumns(table, protected)
	rows := make([][]spreadsheet.Cell, table.Len())
	for r, raw := range table.Rows {
		rows[r] = spreadsheet.TypedRow(raw, numeric)
	}

	return &spreadsheet.Sheet{
		Name:    SheetOriginal,
		Headers: table.Headers,
		Rows:    rows,
	}
}

func openWorkbook(data []byte) (*spreadsheet.Workbook, error) {
	wb, err := spreadsheet.OpenWorkbook(data)
	if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrUnsupportedFile, err.Error())
	}
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}
	return wb, nil
}
