package domain

import (
	"time"

	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

// ProductMetrics são os números de um produto (ou o total) em um dia
type ProductMetrics struct {
	Product string  `json:"product"`
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Orders  float64 `json:"orders"`
}

// ROI é receita ÷ custo, arredondado em duas casas; custo zero resulta em 0
func (m ProductMetrics) ROI() float64 {
	if m.Cost == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(m.Revenue / m.Cost)
}

// Add soma outro conjunto de métricas a este
func (m *ProductMetrics) Add(other ProductMetrics) {
	m.Cost += other.Cost
	m.Revenue += other.Revenue
	m.Orders += other.Orders
}

// DailySnapshot é um relatório diário do TikTok reduzido a uma linha por produto
type DailySnapshot struct {
	Date       time.Time        `json:"date"`
	SourceName string           `json:"source_name"`
	Products   []ProductMetrics `json:"products"`
	UploadedAt time.Time        `json:"uploaded_at"`
}

// Totals soma todos os produtos do dia
func (s DailySnapshot) Totals() ProductMetrics {
	total := ProductMetrics{Product: "TOTAL"}
	for _, p := range s.Products {
		total.Add(p)
	}
	return total
}

// DateKey é a chave usada no cache da sessão
func (s DailySnapshot) DateKey() string {
	return s.Date.Format(time.DateOnly)
}

// SnapshotInfo resume um snapshot em cache, sem as linhas
type SnapshotInfo struct {
	Date       string    `json:"date"`
	SourceName string    `json:"source_name"`
	Products   int       `json:"products"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// DailyPoint é um dia da série contínua. Present=false indica uma lacuna.
type DailyPoint struct {
	Date         string   `json:"date"`
	Present      bool     `json:"present"`
	Cost         float64  `json:"cost"`
	Revenue      float64  `json:"revenue"`
	Orders       float64  `json:"orders"`
	ROI          float64  `json:"roi"`
	DeltaCost    *float64 `json:"delta_cost,omitempty"`
	DeltaRevenue *float64 `json:"delta_revenue,omitempty"`
}

// DailyComparison é a série diária montada a partir dos snapshots em cache
type DailyComparison struct {
	Start    string       `json:"start"`
	End      string       `json:"end"`
	Series   []DailyPoint `json:"series"`
	Gaps     []string     `json:"gaps"`
	Products []string     `json:"products"`

	// Pivot[produto][data]; datas ausentes para o produto não aparecem
	Pivot map[string]map[string]ProductMetrics `json:"pivot"`
}

// SnapshotOptions são os campos do upload de um relatório diário
type SnapshotOptions struct {
	Date     string // YYYY-MM-DD; vazio = detectar
	FileName string
	Sheet    string // vazio = primeira aba
}

// Origem da data do relatório
const (
	DateFromForm     = "form"
	DateFromFileName = "file_name"
	DateFromContent  = "content"
)

// SnapshotResult é a resposta do upload: o snapshot salvo e o estado do cache
type SnapshotResult struct {
	Snapshot   SnapshotInfo   `json:"snapshot"`
	DateSource string         `json:"date_source"`
	Evicted    []string       `json:"evicted"`
	Cached     []SnapshotInfo `json:"cached"`
}
