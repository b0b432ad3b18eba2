package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDedupeHeaders(t *testing.T) {
	got := DedupeHeaders([]string{" Channel ", "Produk", "Produk", "", "Produk"})
	assert.Equal(t, []string{"Channel", "Produk", "Produk.1", "Unnamed: 3", "Produk.2"}, got)
}

func TestTable_FindColumnFollowsSheetOrder(t *testing.T) {
	table := NewTable("s", []string{"Nama Kampanye", "Pendapatan bruto", "Biaya", "ROI"}, nil)

	assert.Equal(t, "Pendapatan bruto", table.FindColumn("pendapatan kotor", "pendapatan"))
	assert.Equal(t, "Biaya", table.FindColumn("biaya", "cost"))
	assert.Equal(t, "", table.FindColumn("status"))
}

func TestTable_RowsArePadded(t *testing.T) {
	table := NewTable("s", []string{"a", "b", "c"}, [][]string{{"1"}, {"1", "2", "3"}})

	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"1", "", ""}, table.Rows[0])
	assert.Nil(t, table.Number(0, "b"))
	assert.Equal(t, 3.0, *table.Number(1, "c"))
	assert.Nil(t, table.Number(1, "missing"))
}

func TestReadDelimited(t *testing.T) {
	t.Run("pula metadados e detecta ponto-e-vírgula", func(t *testing.T) {
		data := []byte("Laporan Iklan Shopee\r\nPeriode;01/03/2025 - 07/03/2025\r\n\r\n" +
			"Urutan;Nama Iklan;Biaya;Produk Terjual\r\n" +
			"1;Gamis Alya;15000;2\r\n" +
			"2;Dress Nara;;0\r\n" +
			"3;linha;com;campos;demais;aqui\r\n")

		table, err := ReadDelimited("ads.csv", data, DelimitedOptions{Markers: []string{"Nama Iklan"}, ScanLines: 30})
		require.NoError(t, err)

		assert.Equal(t, []string{"Urutan", "Nama Iklan", "Biaya", "Produk Terjual"}, table.Headers)
		require.Equal(t, 2, table.Len())
		assert.Equal(t, "Gamis Alya", table.Value(0, "Nama Iklan"))
		assert.Nil(t, table.Number(1, "Biaya"))
	})

	t.Run("vírgula quando predomina", func(t *testing.T) {
		data := []byte("Nama Iklan,Biaya\n\"Set, Rok\",1000\n")

		table, err := ReadDelimited("ads.csv", data, DelimitedOptions{Markers: []string{"Nama Iklan"}, ScanLines: 30})
		require.NoError(t, err)
		assert.Equal(t, "Set, Rok", table.Value(0, "Nama Iklan"))
	})

	t.Run("cabeçalho fora da janela de busca", func(t *testing.T) {
		var buf bytes.Buffer
		for i := 0; i < 31; i++ {
			buf.WriteString("meta\n")
		}
		buf.WriteString("Nama Iklan,Biaya\n")

		_, err := ReadDelimited("ads.csv", buf.Bytes(), DelimitedOptions{Markers: []string{"Nama Iklan"}, ScanLines: 30})
		assert.True(t, errors.Is(err, ErrHeaderNotFound))
	})
}

func TestOpenWorkbook_RejectsLegacyXLS(t *testing.T) {
	_, err := OpenWorkbook(append(append([]byte{}, oleSignature...), 0, 0, 0))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestRenderAndReadBack(t *testing.T) {
	red := &Style{FontColor: "FF0000"}
	sheet := &Sheet{
		Name:        "DATA",
		Headers:     []string{"Nama", "Biaya"},
		HeaderStyle: &Style{Bold: true},
		Rows: [][]Cell{
			{Text("Gamis Alya"), Number(floatPtr(15000)).WithStyle(red)},
			{Text("Dress Nara"), Number(nil)},
		},
	}
	sheet.AutoWidths(10, 2, 50)
	second := &Sheet{Name: ">10K_TANPA_KONVERSI", Headers: []string{"Nama Iklan"}}

	buf, err := Render(sheet, second)
	require.NoError(t, err)

	wb, err := OpenWorkbook(buf.Bytes())
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"DATA", ">10K_TANPA_KONVERSI"}, wb.SheetNames())

	table, err := wb.ReadSheet("DATA")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 15000.0, *table.Number(0, "Biaya"))
	assert.Equal(t, "", table.Value(1, "Biaya"))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	styled, err := f.GetCellStyle("DATA", "B2")
	require.NoError(t, err)
	plain, err := f.GetCellStyle("DATA", "A2")
	require.NoError(t, err)
	assert.NotEqual(t, plain, styled)

	width, err := f.GetColWidth("DATA", "A")
	require.NoError(t, err)
	assert.Equal(t, 12.0, width)
}

func TestWorkbook_DateCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	customDate := "dd/mm/yyyy"
	customStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &customDate})
	require.NoError(t, err)
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Laporan Harian"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 45000))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 0.5))
	require.NoError(t, f.SetCellStyle("Sheet1", "B2", "B2", percentStyle))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", 45700))
	require.NoError(t, f.SetCellStyle("Sheet1", "C2", "C2", customStyle))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	wb, err := OpenWorkbook(buf.Bytes())
	require.NoError(t, err)
	defer wb.Close()

	t.Run("só células com formato de data", func(t *testing.T) {
		dates, err := wb.DateCells("Sheet1", 2)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC),
		}, dates)
	})

	t.Run("sem células de data", func(t *testing.T) {
		dates, err := wb.DateCells("Sheet1", 0)
		require.NoError(t, err)
		assert.Empty(t, dates)
	})
}

func TestIsDateFormatCode(t *testing.T) {
	assert.True(t, isDateFormatCode("dd/mm/yyyy"))
	assert.True(t, isDateFormatCode("[$-421]d mmmm yyyy"))
	assert.False(t, isDateFormatCode("#,##0.00"))
	assert.False(t, isDateFormatCode(`"Rp" #,##0;[Red]-"Rp" #,##0`))
	assert.False(t, isDateFormatCode("h:mm:ss"))
}

func TestNumericColumns(t *testing.T) {
	table := NewTable("s", []string{"id", "nama", "biaya", "kosong"}, [][]string{
		{"1789123456789", "A", "100", ""},
		{"1789123456790", "B", "x", ""},
	})

	assert.Equal(t, []bool{true, false, false, false}, NumericColumns(table))

	row := TypedRow(table.Rows[0], NumericColumns(table))
	assert.Equal(t, 1789123456789.0, row[0].Value)
	assert.Equal(t, "100", row[2].Value)
	assert.Nil(t, row[3].Value)
}

func floatPtr(f float64) *float64 {
	return &f
}
