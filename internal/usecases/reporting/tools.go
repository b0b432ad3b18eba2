package reporting

import (
	"errors"
	"sort"
	"strings"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

const (
	ColumnChannel     = "Channel"
	ColumnProductCode = "Kode Produk"
	ColumnProduct     = "Produk"
	ColumnProductSold = "Produk.1"
	ColumnAddedToCart = "Produk Ditambahkan ke Keranjang"

	SheetProductPerformance = "Performa Produk"
	SheetDefault            = "Sheet1"
	SheetProductsSold       = "Produk Terjual"
	SheetProductsInCart     = "Nama Produk ATC"

	sortedSalesFileName    = "penjualan_sorted.xlsx"
	productFilterFileName  = "nama_produk_terjual_dan_atc.xlsx"
	swappedFileNameSuffix  = "_dotcomma_swapped.xlsx"
	defaultSwappedBaseName = "planilha"
)

// SwapDotComma troca separadores decimais/milhar em todas as células de texto.
// O cabeçalho não é alterado.
func (s *Service) SwapDotComma(data []byte, fileName string) (*domain.GeneratedWorkbook, error) {
	wb, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := make([]*spreadsheet.Sheet, 0, len(wb.SheetNames()))
	previews := make([]domain.TablePreview, 0, len(wb.SheetNames()))

	for _, name := range wb.SheetNames() {
		table, err := wb.ReadSheet(name)
		if err != nil {
			return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
		}

		for _, row := range table.Rows {
			for c, v := range row {
				row[c] = swapDotComma(v)
			}
		}

		sheets = append(sheets, textSheet(name, table))
		previews = append(previews, domain.NewTablePreview(name, table.Headers, table.Rows))
	}

	buf, err := spreadsheet.Render(sheets...)
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	log.L.WithField("tool", "shopee_dot_comma").Infof("reporting: swapped separators in %d sheets", len(sheets))

	base := utils.TrimExtension(fileName)
	if base == "" {
		base = defaultSwappedBaseName
	}

	return &domain.GeneratedWorkbook{
		FileName: base + swappedFileNameSuffix,
		Content:  buf.Bytes(),
		Preview:  previews,
	}, nil
}

func swapDotComma(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.':
			return ','
		case ',':
			return '.'
		default:
			return r
		}
	}, v)
}

// SortSales ordena por Channel e depois Kode Produk, de forma estável
func (s *Service) SortSales(data []byte) (*domain.GeneratedWorkbook, error) {
	wb, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet := wb.ResolveSheet(SheetProductPerformance)
	table, err := wb.ReadSheet(sheet)
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}

	if missing := table.Missing(ColumnChannel, ColumnProductCode); len(missing) > 0 {
		return nil, missingColumns(sheet, missing)
	}

	channel, code := table.Index(ColumnChannel), table.Index(ColumnProductCode)
	sort.SliceStable(table.Rows, func(i, j int) bool {
		a, b := table.Rows[i], table.Rows[j]
		if cmp := compareCells(a[channel], b[channel]); cmp != 0 {
			return cmp < 0
		}
		return compareCells(a[code], b[code]) < 0
	})

	buf, err := spreadsheet.Render(typedSheet(SheetDefault, table))
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	log.L.WithField("tool", "shopee_sales_sort").Infof("reporting: sorted %d rows from sheet %s", table.Len(), sheet)

	return &domain.GeneratedWorkbook{
		FileName: sortedSalesFileName,
		Content:  buf.Bytes(),
		Preview:  domain.NewTablePreview(sheet, table.Headers, table.Rows),
	}, nil
}

// FilterProducts gera duas listas distintas de (Channel, Produk): vendidos e adicionados ao carrinho
func (s *Service) FilterProducts(data []byte) (*domain.GeneratedWorkbook, error) {
	wb, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	table, err := wb.ReadFirstSheet()
	if err != nil {
		return nil, domain.NewProcessingError(ErrReadWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}

	if missing := table.Missing(ColumnChannel, ColumnProduct, ColumnProductSold, ColumnAddedToCart); len(missing) > 0 {
		return nil, missingColumns(table.Name, missing)
	}

	sold := distinctProducts(table, ColumnProductSold)
	inCart := distinctProducts(table, ColumnAddedToCart)

	soldTable := spreadsheet.NewTable(SheetProductsSold, []string{ColumnChannel, ColumnProduct}, sold)
	cartTable := spreadsheet.NewTable(SheetProductsInCart, []string{ColumnChannel, ColumnProduct}, inCart)

	buf, err := spreadsheet.Render(
		typedSheet(SheetProductsSold, soldTable),
		typedSheet(SheetProductsInCart, cartTable),
	)
	if err != nil {
		return nil, domain.NewProcessingError(ErrBuildWorkbook, apiErrors.ErrWorkbookWrite, err.Error())
	}

	log.L.WithField("tool", "shopee_product_filter").
		Infof("reporting: %d products sold, %d added to cart", len(sold), len(inCart))

	return &domain.GeneratedWorkbook{
		FileName: productFilterFileName,
		Content:  buf.Bytes(),
		Preview: []domain.TablePreview{
			domain.NewTablePreview(SheetProductsSold, soldTable.Headers, soldTable.Rows),
			domain.NewTablePreview(SheetProductsInCart, cartTable.Headers, cartTable.Rows),
		},
	}, nil
}

// distinctProducts mantém as linhas cuja métrica é > 0 (valor inválido conta como 0)
func distinctProducts(table *spreadsheet.Table, metric string) [][]string {
	seen := make(map[[2]string]bool)
	out := make([][]string, 0)

	for i := range table.Rows {
		if utils.ValueOr(table.Number(i, metric), 0) <= 0 {
			continue
		}

		key := [2]string{table.Value(i, ColumnChannel), table.Value(i, ColumnProduct)}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, []string{key[0], key[1]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if cmp := compareCells(out[i][0], out[j][0]); cmp != 0 {
			return cmp < 0
		}
		return compareCells(out[i][1], out[j][1]) < 0
	})
	return out
}

// compareCells: números antes de texto, números em ordem numérica, vazios por último
func compareCells(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	na, nb := utils.ParseNumber(a), utils.ParseNumber(b)
	switch {
	case na != nil && nb != nil:
		switch {
		case *na < *nb:
			return -1
		case *na > *nb:
			return 1
		}
		return 0
	case na != nil:
		return -1
	case nb != nil:
		return 1
	}

	return strings.Compare(a, b)
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

func missingColumns(sheet string, missing []string) error {
	return domain.NewProcessingError(ErrMissingColumns, apiErrors.ErrMissingColumn,
		sheet+": "+strings.Join(missing, ", "))
}

// textSheet escreve todas as células como texto
func textSheet(name string, table *spreadsheet.Table) *spreadsheet.Sheet {
	rows := make([][]spreadsheet.Cell, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = spreadsheet.TextRow(row)
	}
	return &spreadsheet.Sheet{Name: name, Headers: table.Headers, Rows: rows}
}

// typedSheet escreve como número as colunas inteiramente numéricas
func typedSheet(name string, table *spreadsheet.Table) *spreadsheet.Sheet {
	numeric := spreadsheet.NumericColumns(table)
	rows := make([][]spreadsheet.Cell, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = spreadsheet.TypedRow(row, numeric)
	}
	return &spreadsheet.Sheet{Name: name, Headers: table.Headers, Rows: rows}
}
