package reporting

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/categorizing"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/naming"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

// Colunas do CSV de anúncios da Shopee e colunas derivadas
const (
	ColumnAdName        = "Nama Iklan"
	ColumnAdNameProduct = "Nama Iklan/Produk"
	ColumnEfficiency    = "Efektifitas Iklan"
	ColumnUnitsSold     = "Produk Terjual"
	ColumnDirectGMV     = "Penjualan Langsung (GMV Langsung)"
	ColumnCost          = "Biaya"

	ColumnIsAggregate    = "IS_AGGREGATE"
	ColumnFreeConversion = "IS_HIJAU_TIPE_A"
	ColumnAssist         = "IS_BIRU"
	ColumnShortName      = "Nama Ringkasan"
	ColumnCategory       = "Kategori"
)

// Abas do relatório
const (
	SheetData           = "DATA_IKLAN"
	SheetSummary        = "RINGKASAN_IKLAN"
	SheetZeroConversion = ">10K_TANPA_KONVERSI"
	SheetFreeConversion = "SALES_0_BIAYA"
)

const (
	headerScanLines    = 30
	summaryColumnWidth = 40
	defaultReportName  = "laporan_iklan"
)

var adsNumericColumns = []string{ColumnEfficiency, ColumnUnitsSold, ColumnDirectGMV, ColumnCost}

var summaryFontColors = map[domain.Category]string{
	domain.CategoryMerah:  "FF0000",
	domain.CategoryKuning: "000000",
	domain.CategoryHijau:  "00AA00",
	domain.CategoryBiru:   "0066CC",
}

var (
	styleBold           = &spreadsheet.Style{Bold: true}
	styleFreeConversion = &spreadsheet.Style{FontColor: "006400"}
	styleZeroConversion = &spreadsheet.Style{FontColor: "FF0000"}
	styleFillMerah      = &spreadsheet.Style{FillColor: "FF0000"}
	styleFillKuning     = &spreadsheet.Style{FillColor: "FFFF00"}
	styleFillHijau      = &spreadsheet.Style{FillColor: "90EE90"}
	styleFillAssist     = &spreadsheet.Style{FillColor: "ADD8E6"}
)

type Service struct {
	shortener *naming.Shortener
}

func NewService(shortener *naming.Shortener) ShopeeReporter {
	return &Service{
		shortener: shortener,
	}
}

// BuildAdsReport lê o CSV, classifica cada linha e monta as quatro abas do relatório
func (s *Service) BuildAdsReport(data []byte, opts domain.AdsReportOptions) (*domain.GeneratedWorkbook, error) {
	table, err := loadAdsCSV(opts.FileName, data)
	if err != nil {
		return nil, err
	}

	records := s.categorize(table, opts.Mode)
	summary := summarize(records, opts)

	buf, err := spreadsheet.Render(
		dataSheet(table, records),
		summarySheet(summary, opts.Mode),
		zeroConversionSheet(summary.ZeroConversion),
		freeConversionSheet(table, summary.FreeConversion),
	)
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	log.L.WithFields(log.Fields{
		"tool": "shopee_ads_report",
		"rows": len(records),
		"mode": opts.Mode,
	}).Infof("reporting: ads report built with %d rows", len(records))

	name := utils.TrimExtension(opts.FileName)
	if name == "" {
		name = defaultReportName
	}

	return &domain.GeneratedWorkbook{
		FileName: name + ".xlsx",
		Content:  buf.Bytes(),
		Preview:  summary,
	}, nil
}

// loadAdsCSV localiza o cabeçalho real e padroniza a coluna de nome como "Nama Iklan"
func loadAdsCSV(fileName string, data []byte) (*spreadsheet.Table, error) {
	table, err := spreadsheet.ReadDelimited(fileName, data, spreadsheet.DelimitedOptions{
		Markers:   []string{ColumnAdName, ColumnAdNameProduct},
		ScanLines: headerScanLines,
	})
	if errors.Is(err, spreadsheet.ErrHeaderNotFound) {
		return nil, domain.NewProcessingError(ErrHeaderNotFound, apiErrors.ErrInvalidFormat, "")
	}
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}

	switch {
	case table.Has(ColumnAdName):
	case table.Has(ColumnAdNameProduct):
		table.Rename(ColumnAdNameProduct, ColumnAdName)
	default:
		return nil, domain.NewProcessingError(ErrNameColumnNotFound, apiErrors.ErrMissingColumn, "")
	}

	// sem custo ou unidades nenhuma linha pode ser categorizada
	if missing := table.Missing(ColumnCost, ColumnUnitsSold); len(missing) > 0 {
		return nil, domain.NewProcessingError(ErrMissingColumns, apiErrors.ErrMissingColumn, strings.Join(missing, ", "))
	}

	return table, nil
}

func (s *Service) categorize(table *spreadsheet.Table, mode domain.CSVMode) []domain.CategorizedRecord {
	records := make([]domain.CategorizedRecord, table.Len())

	for i := range table.Rows {
		name := table.Value(i, ColumnAdName)
		record := domain.AdRecord{
			Name:        name,
			IsAggregate: domain.IsAggregateName(name),
			Cost:        table.Number(i, ColumnCost),
			UnitsSold:   table.Number(i, ColumnUnitsSold),
			DirectGMV:   table.Number(i, ColumnDirectGMV),
			Efficiency:  table.Number(i, ColumnEfficiency),
		}

		shortName := name
		if !record.IsAggregate {
			shortName = s.shortener.Shorten(name)
		}

		records[i] = domain.CategorizedRecord{
			AdRecord:       record,
			Classification: categorizing.Classify(record, mode.AggregateOnly()),
			ShortName:      shortName,
		}
	}

	return records
}

// summarize monta a prévia do RINGKASAN_IKLAN e as listas auxiliares.
// A numeração do modo normal é atribuída antes do filtro de categorias.
func summarize(records []domain.CategorizedRecord, opts domain.AdsReportOptions) *domain.AdsSummary {
	nonAggregate := make([]domain.CategorizedRecord, 0, len(records))
	for _, r := range records {
		if opts.Mode.AggregateOnly() && r.IsAggregate {
			continue
		}
		if r.Tag == domain.TagFreeConversion {
			continue
		}
		nonAggregate = append(nonAggregate, r)
	}

	perCategory := make(map[domain.Category][]string, len(domain.SummaryCategories))
	totals := make(map[domain.Category]int, len(domain.SummaryCategories))
	counter := 0
	add := func(c domain.Category, name string) {
		totals[c]++
		if opts.Mode.AggregateOnly() {
			perCategory[c] = append(perCategory[c], name+",")
			return
		}
		counter++
		perCategory[c] = append(perCategory[c], strconv.Itoa(counter)+". "+name)
	}

	for _, c := range []domain.Category{domain.CategoryMerah, domain.CategoryKuning, domain.CategoryHijau} {
		for _, r := range nonAggregate {
			if r.Category == c {
				add(c, r.ShortName)
			}
		}
	}
	for _, r := range nonAggregate {
		if r.Assist {
			add(domain.CategoryBiru, r.ShortName)
		}
	}

	columns := make(map[domain.Category][]string, len(domain.SummaryCategories))
	for _, c := range domain.SummaryCategories {
		if opts.Include.Includes(c) {
			columns[c] = perCategory[c]
		} else {
			columns[c] = nil
		}
	}

	return &domain.AdsSummary{
		Mode:           opts.Mode,
		Rows:           len(records),
		Columns:        columns,
		ZeroConversion: zeroConversion(nonAggregate),
		FreeConversion: freeConversion(records),
		CategoryTotals: totals,
	}
}

// zeroConversion: sem vendas e gasto >= 10.000, do maior para o menor gasto
func zeroConversion(records []domain.CategorizedRecord) []domain.NamedCost {
	out := make([]domain.NamedCost, 0)
	for _, r := range records {
		if r.UnitsSold == nil || *r.UnitsSold != 0 {
			continue
		}
		if r.Cost == nil || *r.Cost < categorizing.HighSpendThreshold {
			continue
		}
		out = append(out, domain.NamedCost{Name: r.ShortName, Cost: r.Cost})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].Cost > *out[j].Cost
	})
	return out
}

// freeConversion considera todas as linhas, inclusive as de grupo
func freeConversion(records []domain.CategorizedRecord) []domain.NamedCost {
	out := make([]domain.NamedCost, 0)
	for _, r := range records {
		if r.Tag != domain.TagFreeConversion {
			continue
		}
		out = append(out, domain.NamedCost{
			Name:       r.ShortName,
			Cost:       r.Cost,
			UnitsSold:  r.UnitsSold,
			Efficiency: r.Efficiency,
		})
	}
	return out
}

func dataSheet(table *spreadsheet.Table, records []domain.CategorizedRecord) *spreadsheet.Sheet {
	headers := append(append([]string(nil), table.Headers...),
		ColumnIsAggregate, ColumnFreeConversion, ColumnAssist, ColumnShortName, ColumnCategory)

	numeric := spreadsheet.NumericColumns(table)
	for _, col := range adsNumericColumns {
		if i := table.Index(col); i >= 0 {
			numeric[i] = true
		}
	}

	nameIdx := table.Index(ColumnAdName)
	gmvIdx := table.Index(ColumnDirectGMV)

	rows := make([][]spreadsheet.Cell, len(records))
	for i, r := range records {
		row := spreadsheet.TypedRow(table.Rows[i], numeric)
		row = append(row,
			spreadsheet.Cell{Value: r.IsAggregate},
			spreadsheet.Cell{Value: r.Tag == domain.TagFreeConversion},
			spreadsheet.Cell{Value: r.Assist},
			spreadsheet.Text(r.ShortName),
			spreadsheet.Text(string(r.Category)),
		)

		styles := rowStyles(r.AdRecord, len(row), nameIdx, gmvIdx)
		for c := range row {
			row[c].Style = styles[c]
		}
		rows[i] = row
	}

	return &spreadsheet.Sheet{
		Name:    SheetData,
		Headers: headers,
		Rows:    rows,
	}
}

// rowStyles pinta a linha inteira conforme conversão e eficiência, e destaca
// em azul o nome e o GMV das linhas com vendas assistidas
func rowStyles(r domain.AdRecord, width, nameIdx, gmvIdx int) []*spreadsheet.Style {
	styles := make([]*spreadsheet.Style, width)
	fill := func(s *spreadsheet.Style) {
		for i := range styles {
			styles[i] = s
		}
	}

	if r.UnitsSold == nil || r.Cost == nil {
		return styles
	}
	units, cost := *r.UnitsSold, *r.Cost

	if cost == 0 && units > 0 {
		fill(styleFreeConversion)
		return styles
	}
	if units == 0 && cost >= categorizing.HighSpendThreshold {
		fill(styleZeroConversion)
		return styles
	}
	if units == 0 {
		return styles
	}

	if r.Efficiency != nil {
		switch {
		case *r.Efficiency < categorizing.MerahBelow:
			fill(styleFillMerah)
		case *r.Efficiency < categorizing.HijauFrom:
			fill(styleFillKuning)
		default:
			fill(styleFillHijau)
		}
	}

	if units > 0 && (r.DirectGMV == nil || *r.DirectGMV == 0) {
		if nameIdx >= 0 {
			styles[nameIdx] = styleFillAssist
		}
		if gmvIdx >= 0 {
			styles[gmvIdx] = styleFillAssist
		}
	}

	return styles
}

func summarySheet(summary *domain.AdsSummary, mode domain.CSVMode) *spreadsheet.Sheet {
	headers := make([]string, len(domain.SummaryCategories))
	row := make([]spreadsheet.Cell, len(domain.SummaryCategories))
	widths := make(map[int]float64, len(domain.SummaryCategories))

	for i, c := range domain.SummaryCategories {
		headers[i] = string(c)
		widths[i+1] = summaryColumnWidth

		text := joinSummary(summary.Columns[c], mode)
		if text == "" {
			row[i] = spreadsheet.Text("")
			continue
		}
		row[i] = spreadsheet.Text(text).WithStyle(&spreadsheet.Style{
			FontColor:     summaryFontColors[c],
			WrapText:      true,
			VerticalAlign: "top",
		})
	}

	return &spreadsheet.Sheet{
		Name:         SheetSummary,
		Headers:      headers,
		HeaderStyle:  styleBold,
		Rows:         [][]spreadsheet.Cell{row},
		ColumnWidths: widths,
	}
}

// joinSummary: uma linha por anúncio no modo normal; no modo grupo, nomes
// separados por espaço e sempre terminando em vírgula
func joinSummary(items []string, mode domain.CSVMode) string {
	if len(items) == 0 {
		return ""
	}
	if !mode.AggregateOnly() {
		return strings.Join(items, "\n")
	}

	joined := strings.Join(items, " ")
	if !strings.HasSuffix(strings.TrimSpace(joined), ",") {
		joined += ","
	}
	return joined
}

func zeroConversionSheet(items []domain.NamedCost) *spreadsheet.Sheet {
	rows := make([][]spreadsheet.Cell, len(items))
	for i, item := range items {
		rows[i] = spreadsheet.Styled([]spreadsheet.Cell{
			spreadsheet.Text(item.Name),
			spreadsheet.Number(item.Cost),
		}, styleZeroConversion)
	}

	return &spreadsheet.Sheet{
		Name:    SheetZeroConversion,
		Headers: []string{ColumnAdName, ColumnCost},
		Rows:    rows,
	}
}

// freeConversionSheet só traz as colunas numéricas presentes no CSV original
func freeConversionSheet(table *spreadsheet.Table, items []domain.NamedCost) *spreadsheet.Sheet {
	headers := []string{ColumnAdName}
	for _, col := range []string{ColumnUnitsSold, ColumnEfficiency, ColumnCost} {
		if table.Has(col) {
			headers = append(headers, col)
		}
	}

	rows := make([][]spreadsheet.Cell, len(items))
	for i, item := range items {
		row := []spreadsheet.Cell{spreadsheet.Text(item.Name)}
		for _, col := range headers[1:] {
			switch col {
			case ColumnUnitsSold:
				row = append(row, spreadsheet.Number(item.UnitsSold))
			case ColumnEfficiency:
				row = append(row, spreadsheet.Number(item.Efficiency))
			case ColumnCost:
				row = append(row, spreadsheet.Number(item.Cost))
			}
		}
		rows[i] = spreadsheet.Styled(row, styleFreeConversion)
	}

	return &spreadsheet.Sheet{
		Name:    SheetFreeConversion,
		Headers: headers,
		Rows:    rows,
	}
}
