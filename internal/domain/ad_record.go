package domain

import "strings"

// Category é o balde de cor usado no resumo de anúncios
type Category string

const (
	CategoryNone   Category = ""
	CategoryMerah  Category = "MERAH"
	CategoryKuning Category = "KUNING"
	CategoryHijau  Category = "HIJAU"
	CategoryBiru   Category = "BIRU"
)

// SummaryCategories é a ordem das colunas do RINGKASAN_IKLAN
var SummaryCategories = []Category{CategoryMerah, CategoryKuning, CategoryHijau, CategoryBiru}

// Tag marca linhas que ficam fora dos quatro baldes de cor
type Tag string

const (
	TagNone                    Tag = ""
	TagFreeConversion          Tag = "FREE_CONVERSION"
	TagZeroConversionHighSpend Tag = "ZERO_CONVERSION_HIGH_SPEND"
	TagWarmingUp               Tag = "WARMING_UP"
)

// AdRecord é uma linha do relatório de anúncios. Campos numéricos nil são desconhecidos.
type AdRecord struct {
	Name        string
	IsAggregate bool
	Cost        *float64
	UnitsSold   *float64
	DirectGMV   *float64
	Efficiency  *float64
}

// Classification é o resultado do categorizador para uma linha
type Classification struct {
	Category Category
	Tag      Tag
	Assist   bool
}

// CategorizedRecord junta a linha original com os campos derivados
type CategorizedRecord struct {
	AdRecord
	Classification
	ShortName string
}

// IsAggregateName indica se o nome é de uma linha de grupo ("grup ...")
func IsAggregateName(name string) bool {
	lower := strings.ToLower(strings.TrimLeft(name, " \t\r\n"))
	if !strings.HasPrefix(lower, "grup") {
		return false
	}

	rest := lower[len("grup"):]
	if rest == "" {
		return true
	}

	c := rest[0]
	isWordChar := c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c >= 0x80
	return !isWordChar
}
