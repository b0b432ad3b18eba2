package comparing

import (
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

// Palavras-chave das colunas do relatório diário, em minúsculas
var (
	productKeywords = []string{"produk", "product", "nama", "campaign"}
	costKeywords    = []string{"biaya", "cost"}
	revenueKeywords = []string{"pendapatan kotor", "pendapatan", "gmv", "revenue"}
	ordersKeywords  = []string{"pesanan", "order", "terjual", "sold"}
)

const (
	// linhas iniciais onde procurar o cabeçalho e a data do relatório
	headerScanRows = 10
	dateScanRows   = 5
)

// AddSnapshot reduz o relatório diário a uma linha por produto e guarda no cache da sessão
func (s *Service) AddSnapshot(cache SnapshotCache, data []byte, opts domain.SnapshotOptions) (*domain.SnapshotResult, error) {
	wb, err := spreadsheet.OpenWorkbook(data)
	if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrUnsupportedFile, err.Error())
	}
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}
	defer wb.Close()

	sheet := wb.ResolveSheet(opts.Sheet)
	raw, err := wb.RawRows(sheet)
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}

	cellDates, err := wb.DateCells(sheet, dateScanRows)
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}

	date, source, err := reportDate(opts, raw, cellDates)
	if err != nil {
		return nil, err
	}

	table, err := productTable(sheet, raw)
	if err != nil {
		return nil, err
	}

	products, err := aggregateProducts(table)
	if err != nil {
		return nil, err
	}

	snapshot := domain.DailySnapshot{
		Date:       date,
		SourceName: opts.FileName,
		Products:   products,
		UploadedAt: s.now(),
	}
	evicted := cache.Put(snapshot)

	log.L.WithFields(log.Fields{
		"tool":     "tiktok_daily",
		"date":     snapshot.DateKey(),
		"products": len(products),
		"evicted":  len(evicted),
	}).Infof("comparing: snapshot %s cached from %s", snapshot.DateKey(), source)

	return &domain.SnapshotResult{
		Snapshot: domain.SnapshotInfo{
			Date:       snapshot.DateKey(),
			SourceName: snapshot.SourceName,
			Products:   len(products),
			UploadedAt: snapshot.UploadedAt,
		},
		DateSource: source,
		Evicted:    evicted,
		Cached:     cache.Infos(),
	}, nil
}

// reportDate: data informada no formulário, senão a do nome do arquivo, senão a
// primeira data escrita nas linhas iniciais da planilha, senão a primeira célula
// com formato de data nessas linhas
func reportDate(opts domain.SnapshotOptions, raw [][]string, cellDates []time.Time) (time.Time, string, error) {
	if d := strings.TrimSpace(opts.Date); d != "" {
		parsed, err := utils.ParseDate(d)
		if err != nil {
			return time.Time{}, "", domain.NewProcessingError(ErrInvalidDate, apiErrors.ErrInvalidFormat, d)
		}
		return *parsed, domain.DateFromForm, nil
	}

	if parsed, ok := utils.FindDate(opts.FileName); ok {
		return parsed, domain.DateFromFileName, nil
	}

	for r := 0; r < len(raw) && r < dateScanRows; r++ {
		for _, cell := range raw[r] {
			if parsed, ok := utils.FindDate(cell); ok {
				return parsed, domain.DateFromContent, nil
			}
		}
	}

	if len(cellDates) > 0 {
		return cellDates[0], domain.DateFromContent, nil
	}

	return time.Time{}, "", domain.NewProcessingError(ErrDateNotFound, apiErrors.ErrMissingRequiredData, opts.FileName)
}

// productTable localiza o cabeçalho: a primeira linha com colunas de produto e de custo
func productTable(sheet string, raw [][]string) (*spreadsheet.Table, error) {
	for r := 0; r < len(raw) && r < headerScanRows; r++ {
		candidate := spreadsheet.NewTable(sheet, raw[r], nil)
		if candidate.FindColumn(productKeywords...) == "" || candidate.FindColumn(costKeywords...) == "" {
			continue
		}
		return spreadsheet.NewTable(sheet, raw[r], nonBlank(raw[r+1:])), nil
	}

	return nil, domain.NewProcessingError(ErrMissingColumns, apiErrors.ErrMissingColumn, "produk, biaya")
}

func nonBlank(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// aggregateProducts soma as linhas repetidas do mesmo produto. Linhas de total
// da exportação são ignoradas.
func aggregateProducts(table *spreadsheet.Table) ([]domain.ProductMetrics, error) {
	product := table.FindColumn(productKeywords...)
	cost := table.FindColumn(costKeywords...)
	revenue := table.FindColumn(revenueKeywords...)
	orders := table.FindColumn(ordersKeywords...)

	if revenue == "" {
		return nil, domain.NewProcessingError(ErrMissingColumns, apiErrors.ErrMissingColumn, "pendapatan")
	}

	index := make(map[string]int)
	out := make([]domain.ProductMetrics, 0)

	for i := range table.Rows {
		name := strings.TrimSpace(table.Value(i, product))
		if name == "" || isTotalRow(name) {
			continue
		}

		metrics := domain.ProductMetrics{
			Product: name,
			Cost:    utils.ValueOr(utils.ParseNumericLike(table.Value(i, cost)), 0),
			Revenue: utils.ValueOr(utils.ParseNumericLike(table.Value(i, revenue)), 0),
		}
		if orders != "" {
			metrics.Orders = utils.ValueOr(utils.ParseNumericLike(table.Value(i, orders)), 0)
		}

		if pos, ok := index[name]; ok {
			out[pos].Add(metrics)
			continue
		}
		index[name] = len(out)
		out = append(out, metrics)
	}

	return out, nil
}

func isTotalRow(name string) bool {
	switch strings.ToLower(name) {
	case "total", "grand total", "jumlah":
		return true
	default:
		return false
	}
}
