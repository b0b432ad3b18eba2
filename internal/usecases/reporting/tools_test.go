package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook cria um .xlsx em memória; a primeira aba substitui a "Sheet1" padrão
func buildWorkbook(t *testing.T, sheets map[string][][]any, order ...string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}

		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestService_SwapDotComma(t *testing.T) {
	svc := newTestService()
	data := buildWorkbook(t, map[string][][]any{
		"Harga": {
			{"Produk", "Harga"},
			{"Gamis A", "1.500,75"},
			{"Dress B", "12,5"},
		},
		"Catatan": {
			{"Teks"},
			{"a.b,c"},
		},
	}, "Harga", "Catatan")

	result, err := svc.SwapDotComma(data, "harga toko.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "harga toko_dotcomma_swapped.xlsx", result.FileName)

	f := openResult(t, result.Content)
	assert.Equal(t, []string{"Harga", "Catatan"}, f.GetSheetList())

	rows, err := f.GetRows("Harga")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Produk", "Harga"},
		{"Gamis A", "1,500.75"},
		{"Dress B", "12.5"},
	}, rows)

	rows, err = f.GetRows("Catatan")
	require.NoError(t, err)
	assert.Equal(t, "a,b.c", rows[1][0])

	previews, ok := result.Preview.([]domain.TablePreview)
	require.True(t, ok)
	assert.Len(t, previews, 2)
}

func TestSwapDotComma_DOTLiteralPreserved(t *testing.T) {
	assert.Equal(t, "DOT,", swapDotComma("DOT."))
}

func TestService_SortSales(t *testing.T) {
	svc := newTestService()

	t.Run("usa a aba Performa Produk e ordena por Channel e Kode Produk", func(t *testing.T) {
		data := buildWorkbook(t, map[string][][]any{
			"Resumo": {{"x"}},
			"Performa Produk": {
				{"Channel", "Kode Produk", "Produk"},
				{"Shopee Live", 20, "C"},
				{"Iklan", 100, "B"},
				{"Iklan", 9, "A"},
				{"", 1, "sem canal"},
			},
		}, "Resumo", "Performa Produk")

		result, err := svc.SortSales(data)
		require.NoError(t, err)
		assert.Equal(t, sortedSalesFileName, result.FileName)

		f := openResult(t, result.Content)
		assert.Equal(t, []string{SheetDefault}, f.GetSheetList())

		rows, err := f.GetRows(SheetDefault)
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Channel", "Kode Produk", "Produk"},
			{"Iklan", "9", "A"},
			{"Iklan", "100", "B"},
			{"Shopee Live", "20", "C"},
			{"", "1", "sem canal"},
		}, rows)

		preview, ok := result.Preview.(domain.TablePreview)
		require.True(t, ok)
		assert.Equal(t, "Performa Produk", preview.Sheet)
		assert.Equal(t, 4, preview.Rows)
	})

	t.Run("coluna ausente", func(t *testing.T) {
		data := buildWorkbook(t, map[string][][]any{
			"Data": {{"Channel", "Produk"}, {"Iklan", "A"}},
		}, "Data")

		_, err := svc.SortSales(data)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumns)

		var perr *domain.ProcessingError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, apiErrors.ErrMissingColumn, perr.Code)
		assert.Contains(t, perr.Details, "Kode Produk")
	})
}

func TestService_FilterProducts(t *testing.T) {
	svc := newTestService()

	// "Produk" duplicado vira "Produk.1" na leitura
	data := buildWorkbook(t, map[string][][]any{
		"Sheet1": {
			{"Channel", "Produk", "Produk", "Produk Ditambahkan ke Keranjang"},
			{"Live", "Gamis B", 2, 0},
			{"Iklan", "Gamis A", 1, 3},
			{"Iklan", "Gamis A", 4, 1},
			{"Iklan", "Dress C", "-", 5},
			{"Live", "Gamis B", 0, 0},
		},
	}, "Sheet1")

	result, err := svc.FilterProducts(data)
	require.NoError(t, err)
	assert.Equal(t, productFilterFileName, result.FileName)

	f := openResult(t, result.Content)
	assert.Equal(t, []string{SheetProductsSold, SheetProductsInCart}, f.GetSheetList())

	sold, err := f.GetRows(SheetProductsSold)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Channel", "Produk"},
		{"Iklan", "Gamis A"},
		{"Live", "Gamis B"},
	}, sold)

	inCart, err := f.GetRows(SheetProductsInCart)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Channel", "Produk"},
		{"Iklan", "Dress C"},
		{"Iklan", "Gamis A"},
	}, inCart)
}

func TestService_RejectsLegacyXLS(t *testing.T) {
	svc := newTestService()
	legacy := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0, 0}

	_, err := svc.FilterProducts(legacy)
	require.Error(t, err)

	var perr *domain.ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, apiErrors.ErrUnsupportedFile, perr.Code)
}

func TestCompareCells(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"9", "100", -1},
		{"100", "9", 1},
		{"9", "A", -1},
		{"B", "A", 1},
		{"", "A", 1},
		{"A", "", -1},
		{"", "", 0},
		{"2.0", "2", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compareCells(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}
