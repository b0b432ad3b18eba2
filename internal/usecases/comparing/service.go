package comparing

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"errors"
	"time"

	"github.com/vfg2006/ads-excel-utilities/internal/domain"
)

// Erros do comparativo diário do TikTok
var (
	ErrReadWorkbook   = errors.New("error reading workbook")
	ErrMissingColumns = errors.New("Kolom produk, biaya atau pendapatan tidak ditemukan")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDateNotFound   = errors.New("report date not found in form, file name or sheet")
	ErrNoSnapshots    = errors.New("no daily reports cached for this session")
	ErrBuildWorkbook  = errors.New("error building workbook")
)

// SnapshotCache guarda os snapshots diários de uma sessão (session.Session)
type SnapshotCache interface {
	Put(snapshot domain.DailySnapshot) []string
	Snapshots() []domain.DailySnapshot
	Infos() []domain.SnapshotInfo
	Clear() int
}

// DailyComparer acumula relatórios diários por sessão e monta o comparativo entre os dias
type DailyComparer interface {
	// AddSnapshot lê um relatório diário e guarda o resumo por produto no cache
	AddSnapshot(cache SnapshotCache, data []byte, opts domain.SnapshotOptions) (*domain.SnapshotResult, error)

	// Compare gera o arquivo com a série diária e as tabelas dinâmicas por produto
	Compare(cache SnapshotCache) (*domain.GeneratedWorkbook, error)
}

type Service struct {
	now func() time.Time
}

func NewService() DailyComparer {
	return &Service{now: time.Now}
}
