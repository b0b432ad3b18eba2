package comparing

import (
	"sort"
	"time"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

const (
	SheetDailySummary = "RINGKASAN_HARIAN"
	SheetGaps         = "TANGGAL_KOSONG"
	SheetPivotCost    = "PIVOT_BIAYA"
	SheetPivotRevenue = "PIVOT_PENDAPATAN"
	SheetPivotROI     = "PIVOT_ROI"

	ColumnDate         = "Tanggal"
	ColumnProduct      = "Produk"
	ColumnCost         = "Biaya"
	ColumnRevenue      = "Pendapatan"
	ColumnOrders       = "Pesanan"
	ColumnROI          = "ROI"
	ColumnDeltaCost    = "Δ Biaya"
	ColumnDeltaRevenue = "Δ Pendapatan"

	totalRowLabel = "TOTAL"
	FillGap       = "D9D9D9"
)

var (
	styleHeader = &spreadsheet.Style{Bold: true}
	styleGap    = &spreadsheet.Style{FillColor: FillGap}
	styleTotal  = &spreadsheet.Style{Bold: true}
)

// Compare monta a série contínua entre o primeiro e o último dia em cache.
// Dias sem relatório entram como lacuna e não quebram os deltas, que comparam
// sempre com o último dia presente.
func (s *Service) Compare(cache SnapshotCache) (*domain.GeneratedWorkbook, error) {
	snapshots := cache.Snapshots()
	if len(snapshots) == 0 {
		return nil, domain.NewProcessingError(ErrNoSnapshots, apiErrors.ErrNoSnapshots, "")
	}

	comparison := buildComparison(snapshots)

	sheets := []*spreadsheet.Sheet{
		summarySheet(comparison),
		gapsSheet(comparison),
		pivotSheet(SheetPivotCost, comparison, func(m domain.ProductMetrics) float64 { return m.Cost }),
		pivotSheet(SheetPivotRevenue, comparison, func(m domain.ProductMetrics) float64 { return m.Revenue }),
		pivotSheet(SheetPivotROI, comparison, domain.ProductMetrics.ROI),
	}
	for _, sheet := range sheets {
		sheet.AutoWidths(10, 2, 60)
	}

	buf, err := spreadsheet.Render(sheets...)
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	log.L.WithFields(log.Fields{
		"tool":     "tiktok_daily",
		"days":     len(comparison.Series),
		"gaps":     len(comparison.Gaps),
		"products": len(comparison.Products),
	}).Infof("comparing: comparison built from %s to %s", comparison.Start, comparison.End)

	return &domain.GeneratedWorkbook{
		FileName: "tiktok_harian_" + comparison.Start + "_" + comparison.End + ".xlsx",
		Content:  buf.Bytes(),
		Preview:  comparison,
	}, nil
}

func buildComparison(snapshots []domain.DailySnapshot) *domain.DailyComparison {
	byDate := make(map[string]domain.DailySnapshot, len(snapshots))
	dates := make([]time.Time, 0, len(snapshots))
	for _, snap := range snapshots {
		if _, ok := byDate[snap.DateKey()]; !ok {
			dates = append(dates, snap.Date)
		}
		byDate[snap.DateKey()] = snap
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	first, last := dates[0], dates[len(dates)-1]
	comparison := &domain.DailyComparison{
		Start:    first.Format(time.DateOnly),
		End:      last.Format(time.DateOnly),
		Series:   make([]domain.DailyPoint, 0),
		Gaps:     make([]string, 0),
		Products: make([]string, 0),
		Pivot:    make(map[string]map[string]domain.ProductMetrics),
	}

	var previous *domain.ProductMetrics
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)

		snap, ok := byDate[key]
		if !ok {
			comparison.Series = append(comparison.Series, domain.DailyPoint{Date: key})
			comparison.Gaps = append(comparison.Gaps, key)
			continue
		}

		totals := snap.Totals()
		point := domain.DailyPoint{
			Date:    key,
			Present: true,
			Cost:    totals.Cost,
			Revenue: totals.Revenue,
			Orders:  totals.Orders,
			ROI:     totals.ROI(),
		}
		if previous != nil {
			point.DeltaCost = utils.Float(totals.Cost - previous.Cost)
			point.DeltaRevenue = utils.Float(totals.Revenue - previous.Revenue)
		}
		previous = &totals
		comparison.Series = append(comparison.Series, point)

		for _, p := range snap.Products {
			if _, ok := comparison.Pivot[p.Product]; !ok {
				comparison.Pivot[p.Product] = make(map[string]domain.ProductMetrics)
				comparison.Products = append(comparison.Products, p.Product)
			}
			comparison.Pivot[p.Product][key] = p
		}
	}
	sort.Strings(comparison.Products)

	return comparison
}

func summarySheet(c *domain.DailyComparison) *spreadsheet.Sheet {
	headers := []string{ColumnDate, ColumnCost, ColumnRevenue, ColumnOrders, ColumnROI, ColumnDeltaCost, ColumnDeltaRevenue}

	rows := make([][]spreadsheet.Cell, len(c.Series))
	for i, p := range c.Series {
		if !p.Present {
			row := make([]spreadsheet.Cell, len(headers))
			row[0] = spreadsheet.Text(p.Date)
			rows[i] = spreadsheet.Styled(row, styleGap)
			continue
		}

		rows[i] = []spreadsheet.Cell{
			spreadsheet.Text(p.Date),
			spreadsheet.Number(utils.Float(p.Cost)),
			spreadsheet.Number(utils.Float(p.Revenue)),
			spreadsheet.Number(utils.Float(p.Orders)),
			spreadsheet.Number(utils.Float(p.ROI)),
			spreadsheet.Number(p.DeltaCost),
			spreadsheet.Number(p.DeltaRevenue),
		}
	}

	return &spreadsheet.Sheet{
		Name:        SheetDailySummary,
		Headers:     headers,
		HeaderStyle: styleHeader,
		Rows:        rows,
	}
}

func gapsSheet(c *domain.DailyComparison) *spreadsheet.Sheet {
	rows := make([][]spreadsheet.Cell, len(c.Gaps))
	for i, gap := range c.Gaps {
		rows[i] = []spreadsheet.Cell{spreadsheet.Text(gap)}
	}

	return &spreadsheet.Sheet{
		Name:        SheetGaps,
		Headers:     []string{ColumnDate},
		HeaderStyle: styleHeader,
		Rows:        rows,
	}
}

// pivotSheet: uma linha por produto, uma coluna por dia da série. A linha TOTAL
// usa os totais do dia, então o ROI total é receita ÷ custo do dia e não a soma dos ROIs.
func pivotSheet(name string, c *domain.DailyComparison, value func(domain.ProductMetrics) float64) *spreadsheet.Sheet {
	headers := make([]string, 0, len(c.Series)+1)
	headers = append(headers, ColumnProduct)
	for _, p := range c.Series {
		headers = append(headers, p.Date)
	}

	rows := make([][]spreadsheet.Cell, 0, len(c.Products)+1)
	for _, product := range c.Products {
		row := make([]spreadsheet.Cell, len(headers))
		row[0] = spreadsheet.Text(product)
		for i, p := range c.Series {
			if m, ok := c.Pivot[product][p.Date]; ok {
				row[i+1] = spreadsheet.Number(utils.Float(value(m)))
			}
		}
		rows = append(rows, row)
	}

	total := make([]spreadsheet.Cell, len(headers))
	total[0] = spreadsheet.Text(totalRowLabel)
	for i, p := range c.Series {
		if !p.Present {
			continue
		}
		total[i+1] = spreadsheet.Number(utils.Float(value(domain.ProductMetrics{
			Cost:    p.Cost,
			Revenue: p.Revenue,
			Orders:  p.Orders,
		})))
	}
	rows = append(rows, spreadsheet.Styled(total, styleTotal))

	return &spreadsheet.Sheet{
		Name:        name,
		Headers:     headers,
		HeaderStyle: styleHeader,
		Rows:        rows,
	}
}
