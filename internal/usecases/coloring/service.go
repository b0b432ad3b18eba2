package coloring

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
)

// Erros específicos das ferramentas do TikTok
var (
	ErrReadWorkbook   = errors.New("error reading workbook")
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrMissingColumns = errors.New("Kolom wajib tidak ditemukan")
	ErrEmptySheet     = errors.New("sheet has no header")
	ErrBuildWorkbook  = errors.New("error building workbook")
)

// TikTokColorer define as ferramentas de planilha do TikTok
type TikTokColorer interface {
	// ColorROI gera DATA_COLORED (linhas pintadas pelo ROI) e DATA_ASLI (dados originais)
	ColorROI(data []byte, opts domain.ROIColoringOptions) (*domain.GeneratedWorkbook, error)

	// FixCampaignSheet protege a coluna de ID e troca vírgula por ponto nas demais colunas
	FixCampaignSheet(data []byte) (*domain.GeneratedWorkbook, error)
}

type Service struct {
	now func() time.Time
}

func NewService() TikTokColorer {
	return &Service{
		now: time.Now,
	}
}

// protectedColumn é a primeira coluna com "id" no nome; ela é sempre gravada como texto
func protectedColumn(table *spreadsheet.Table) string {
	for _, h := range table.Headers {
		if strings.Contains(strings.ToLower(h), "id") {
			return h
		}
	}
	return ""
}

// typedColumns é a inferência numérica da tabela, sem a coluna protegida
func typedColumns(table *spreadsheet.Table, protected string) []bool {
	numeric := spreadsheet.NumericColumns(table)
	if i := table.Index(protected); protected != "" && i >= 0 {
		numeric[i] = false
	}
	return numeric
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
