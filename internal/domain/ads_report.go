package domain

import (
	"fmt"
	"strings"
)

// CSVMode define como o CSV de anúncios da Shopee é interpretado
type CSVMode string

const (
	CSVModeNormal  CSVMode = "CSV Keseluruhan (Normal)"
	CSVModeAdGroup CSVMode = "CSV Grup Iklan (hanya iklan produk)"
)

// ParseCSVMode aceita o rótulo completo ou os apelidos "normal" e "group"
func ParseCSVMode(raw string) (CSVMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "normal", strings.ToLower(string(CSVModeNormal)):
		return CSVModeNormal, nil
	case "group", "grup", strings.ToLower(string(CSVModeAdGroup)):
		return CSVModeAdGroup, nil
	default:
		return "", fmt.Errorf("invalid csv mode: %q", raw)
	}
}

// AggregateOnly indica o modo "Grup Iklan", em que eficiência ausente com vendas conta como HIJAU
func (m CSVMode) AggregateOnly() bool {
	return m == CSVModeAdGroup
}

// SummaryFilter seleciona as categorias exibidas no RINGKASAN_IKLAN
type SummaryFilter struct {
	Merah  bool
	Kuning bool
	Hijau  bool
	Biru   bool
}

// AllCategories inclui as quatro categorias
func AllCategories() SummaryFilter {
	return SummaryFilter{Merah: true, Kuning: true, Hijau: true, Biru: true}
}

func (f SummaryFilter) Includes(c Category) bool {
	switch c {
	case CategoryMerah:
		return f.Merah
	case CategoryKuning:
		return f.Kuning
	case CategoryHijau:
		return f.Hijau
	case CategoryBiru:
		return f.Biru
	default:
		return false
	}
}

// AdsReportOptions são os controles do formulário "CSV Iklan → Excel Berwarna"
type AdsReportOptions struct {
	Mode     CSVMode
	Include  SummaryFilter
	FileName string
}

// NamedCost é uma linha das abas >10K_TANPA_KONVERSI e SALES_0_BIAYA
type NamedCost struct {
	Name       string   `json:"nama_iklan"`
	Cost       *float64 `json:"biaya"`
	UnitsSold  *float64 `json:"produk_terjual,omitempty"`
	Efficiency *float64 `json:"efektifitas_iklan,omitempty"`
}

// AdsSummary é a prévia do relatório, na mesma forma do RINGKASAN_IKLAN
type AdsSummary struct {
	Mode           CSVMode               `json:"mode"`
	Rows           int                   `json:"rows"`
	Columns        map[Category][]string `json:"columns"`
	ZeroConversion []NamedCost           `json:"tanpa_konversi"`
	FreeConversion []NamedCost           `json:"sales_0_biaya"`
	CategoryTotals map[Category]int      `json:"category_totals"`
}
