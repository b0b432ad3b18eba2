package comparing

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
)

type memoryCache struct {
	snapshots []domain.DailySnapshot
}

func (m *memoryCache) Put(snapshot domain.DailySnapshot) []string {
	m.snapshots = append(m.snapshots, snapshot)
	return []string{}
}

func (m *memoryCache) Snapshots() []domain.DailySnapshot {
	return m.snapshots
}

func (m *memoryCache) Infos() []domain.SnapshotInfo {
	out := make([]domain.SnapshotInfo, len(m.snapshots))
	for i, s := range m.snapshots {
		out[i] = domain.SnapshotInfo{Date: s.DateKey(), SourceName: s.SourceName, Products: len(s.Products)}
	}
	return out
}

func (m *memoryCache) Clear() int {
	n := len(m.snapshots)
	m.snapshots = nil
	return n
}

var uploadTime = time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return &Service{now: func() time.Time { return uploadTime }}
}

func dailyWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestService_AddSnapshot(t *testing.T) {
	data := dailyWorkbook(t, [][]any{
		{"Laporan Harian 2025-01-05"},
		{},
		{"Nama Produk", "Biaya", "Pendapatan kotor", "Pesanan"},
		{"Gamis A", 100, 1000, 2},
		{"Dress B", 50, "-", 0},
		{"Gamis A", 20, 200, 1},
		{"", "", "", ""},
		{"Total", 170, 1200, 3},
	})

	cache := &memoryCache{}
	result, err := newTestService().AddSnapshot(cache, data, domain.SnapshotOptions{FileName: "harian.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, domain.DateFromContent, result.DateSource)
	assert.Equal(t, "2025-01-05", result.Snapshot.Date)
	assert.Equal(t, 2, result.Snapshot.Products)
	assert.Equal(t, uploadTime, result.Snapshot.UploadedAt)
	assert.Len(t, result.Cached, 1)

	require.Len(t, cache.snapshots, 1)
	assert.Equal(t, []domain.ProductMetrics{
		{Product: "Gamis A", Cost: 120, Revenue: 1200, Orders: 3},
		{Product: "Dress B", Cost: 50, Revenue: 0, Orders: 0},
	}, cache.snapshots[0].Products)
}

func TestService_AddSnapshot_DateSources(t *testing.T) {
	data := dailyWorkbook(t, [][]any{
		{"Laporan 2025-01-05"},
		{"Produk", "Biaya", "GMV"},
		{"Gamis A", 100, 1000},
	})

	tests := []struct {
		name       string
		opts       domain.SnapshotOptions
		wantDate   string
		wantSource string
	}{
		{
			name:       "data do formulário tem prioridade",
			opts:       domain.SnapshotOptions{Date: "2025-01-06", FileName: "tiktok_20250107.xlsx"},
			wantDate:   "2025-01-06",
			wantSource: domain.DateFromForm,
		},
		{
			name:       "data no nome do arquivo",
			opts:       domain.SnapshotOptions{FileName: "tiktok_20250107.xlsx"},
			wantDate:   "2025-01-07",
			wantSource: domain.DateFromFileName,
		},
		{
			name:       "data no conteúdo",
			opts:       domain.SnapshotOptions{FileName: "tiktok.xlsx"},
			wantDate:   "2025-01-05",
			wantSource: domain.DateFromContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestService().AddSnapshot(&memoryCache{}, data, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, result.Snapshot.Date)
			assert.Equal(t, tt.wantSource, result.DateSource)
		})
	}
}

func TestService_AddSnapshot_DateCell(t *testing.T) {
	data := dailyWorkbook(t, [][]any{
		{"Tanggal", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Produk", "Biaya", "GMV"},
		{"Gamis A", 100, 1000},
	})

	result, err := newTestService().AddSnapshot(&memoryCache{}, data, domain.SnapshotOptions{FileName: "tiktok_harian.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", result.Snapshot.Date)
	assert.Equal(t, domain.DateFromContent, result.DateSource)
	assert.Equal(t, 1, result.Snapshot.Products)
}

func TestService_AddSnapshot_Errors(t *testing.T) {
	undated := dailyWorkbook(t, [][]any{
		{"Produk", "Biaya", "Pendapatan"},
		{"Gamis A", 100, 1000},
	})

	tests := []struct {
		name    string
		data    []byte
		opts    domain.SnapshotOptions
		wantErr error
		code    string
	}{
		{
			name:    "data inválida no formulário",
			data:    undated,
			opts:    domain.SnapshotOptions{Date: "06/01/2025"},
			wantErr: ErrInvalidDate,
			code:    apiErrors.ErrInvalidFormat,
		},
		{
			name:    "sem data em lugar nenhum",
			data:    undated,
			opts:    domain.SnapshotOptions{FileName: "laporan.xlsx"},
			wantErr: ErrDateNotFound,
			code:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "sem coluna de receita",
			data:    dailyWorkbook(t, [][]any{{"Produk", "Biaya"}, {"Gamis A", 100}}),
			opts:    domain.SnapshotOptions{Date: "2025-01-05"},
			wantErr: ErrMissingColumns,
			code:    apiErrors.ErrMissingColumn,
		},
		{
			name:    "sem cabeçalho de produto e custo",
			data:    dailyWorkbook(t, [][]any{{"Judul"}, {"x"}}),
			opts:    domain.SnapshotOptions{Date: "2025-01-05"},
			wantErr: ErrMissingColumns,
			code:    apiErrors.ErrMissingColumn,
		},
		{
			name:    "arquivo .xls",
			data:    []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1},
			wantErr: ErrReadWorkbook,
			code:    apiErrors.ErrUnsupportedFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &memoryCache{}
			_, err := newTestService().AddSnapshot(cache, tt.data, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var perr *domain.ProcessingError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.code, perr.Code)
			assert.Empty(t, cache.snapshots)
		})
	}
}

func TestService_Compare(t *testing.T) {
	cache := &memoryCache{snapshots: []domain.DailySnapshot{
		{Date: day(3), Products: []domain.ProductMetrics{
			{Product: "Gamis A", Cost: 200, Revenue: 1000, Orders: 4},
		}},
		{Date: day(1), Products: []domain.ProductMetrics{
			{Product: "Gamis A", Cost: 100, Revenue: 1000, Orders: 5},
			{Product: "Dress B", Cost: 50, Revenue: 100, Orders: 1},
		}},
	}}

	result, err := newTestService().Compare(cache)
	require.NoError(t, err)
	assert.Equal(t, "tiktok_harian_2025-01-01_2025-01-03.xlsx", result.FileName)

	comparison, ok := result.Preview.(*domain.DailyComparison)
	require.True(t, ok)

	t.Run("série contínua com lacuna", func(t *testing.T) {
		assert.Equal(t, []string{"2025-01-02"}, comparison.Gaps)
		require.Len(t, comparison.Series, 3)

		first, gap, last := comparison.Series[0], comparison.Series[1], comparison.Series[2]
		assert.True(t, first.Present)
		assert.Equal(t, 7.33, first.ROI)
		assert.Nil(t, first.DeltaCost)

		assert.False(t, gap.Present)

		require.NotNil(t, last.DeltaCost)
		assert.Equal(t, 50.0, *last.DeltaCost)
		assert.Equal(t, -100.0, *last.DeltaRevenue)
	})

	t.Run("produtos ordenados", func(t *testing.T) {
		assert.Equal(t, []string{"Dress B", "Gamis A"}, comparison.Products)
		_, ok := comparison.Pivot["Dress B"]["2025-01-03"]
		assert.False(t, ok)
	})

	f, err := excelize.OpenReader(bytes.NewReader(result.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetDailySummary, SheetGaps, SheetPivotCost, SheetPivotRevenue, SheetPivotROI}, f.GetSheetList())

	t.Run("RINGKASAN_HARIAN pinta a lacuna de cinza", func(t *testing.T) {
		rows, err := f.GetRows(SheetDailySummary)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, ColumnDate, rows[0][0])
		assert.Equal(t, "2025-01-02", rows[2][0])
		assert.Equal(t, "50", rows[3][5])

		present, err := f.GetCellStyle(SheetDailySummary, "A2")
		require.NoError(t, err)
		gap, err := f.GetCellStyle(SheetDailySummary, "A3")
		require.NoError(t, err)
		assert.NotEqual(t, present, gap)
	})

	t.Run("PIVOT_BIAYA com linha TOTAL", func(t *testing.T) {
		rows, err := f.GetRows(SheetPivotCost)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		assert.Equal(t, []string{ColumnProduct, "2025-01-01", "2025-01-02", "2025-01-03"}, rows[0])
		assert.Equal(t, []string{"Gamis A", "100", "", "200"}, rows[2])
		assert.Equal(t, "Dress B", rows[1][0])
		assert.Equal(t, "50", rows[1][1])
		assert.Equal(t, totalRowLabel, rows[3][0])
		assert.Equal(t, "150", rows[3][1])
		assert.Equal(t, "200", rows[3][3])
	})

	t.Run("PIVOT_ROI total usa os totais do dia", func(t *testing.T) {
		value, err := f.GetCellValue(SheetPivotROI, "B4")
		require.NoError(t, err)
		assert.Equal(t, "7.33", value)
	})

	t.Run("TANGGAL_KOSONG lista as lacunas", func(t *testing.T) {
		rows, err := f.GetRows(SheetGaps)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{ColumnDate}, {"2025-01-02"}}, rows)
	})
}

func TestService_Compare_EmptyCache(t *testing.T) {
	_, err := newTestService().Compare(&memoryCache{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSnapshots)

	var perr *domain.ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, apiErrors.ErrNoSnapshots, perr.Code)
}
