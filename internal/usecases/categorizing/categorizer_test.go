package categorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

func TestClassify(t *testing.T) {
	f := utils.Float

	tests := []struct {
		name          string
		record        domain.AdRecord
		aggregateOnly bool
		want          domain.Classification
	}{
		{
			name:   "custo desconhecido nunca é categorizado",
			record: domain.AdRecord{UnitsSold: f(3), DirectGMV: f(100), Efficiency: f(20)},
			want:   domain.Classification{},
		},
		{
			name:   "vendas desconhecidas nunca são categorizadas",
			record: domain.AdRecord{Cost: f(5000), Efficiency: f(20)},
			want:   domain.Classification{},
		},
		{
			name:   "custo desconhecido ainda pode ser assist",
			record: domain.AdRecord{UnitsSold: f(2)},
			want:   domain.Classification{Assist: true},
		},
		{
			name:   "custo zero com vendas é conversão gratuita e não é assist",
			record: domain.AdRecord{Cost: f(0), UnitsSold: f(5), DirectGMV: f(0), Efficiency: f(50)},
			want:   domain.Classification{Tag: domain.TagFreeConversion},
		},
		{
			name:   "sem vendas e gasto alto",
			record: domain.AdRecord{Cost: f(10000), UnitsSold: f(0), Efficiency: f(0)},
			want:   domain.Classification{Tag: domain.TagZeroConversionHighSpend},
		},
		{
			name:   "sem vendas e gasto baixo ainda aquecendo",
			record: domain.AdRecord{Cost: f(9999.99), UnitsSold: f(0)},
			want:   domain.Classification{Tag: domain.TagWarmingUp},
		},
		{
			name:   "eficiência desconhecida é MERAH no modo normal",
			record: domain.AdRecord{Cost: f(20000), UnitsSold: f(1), DirectGMV: f(50000)},
			want:   domain.Classification{Category: domain.CategoryMerah},
		},
		{
			name:          "eficiência desconhecida com vendas é HIJAU no modo grupo",
			record:        domain.AdRecord{Cost: f(20000), UnitsSold: f(1), DirectGMV: f(50000)},
			aggregateOnly: true,
			want:          domain.Classification{Category: domain.CategoryHijau},
		},
		{
			name:   "abaixo de 8 é MERAH",
			record: domain.AdRecord{Cost: f(20000), UnitsSold: f(1), DirectGMV: f(1), Efficiency: f(7.99)},
			want:   domain.Classification{Category: domain.CategoryMerah},
		},
		{
			name:   "exatamente 8 é KUNING",
			record: domain.AdRecord{Cost: f(20000), UnitsSold: f(1), DirectGMV: f(1), Efficiency: f(8.0)},
			want:   domain.Classification{Category: domain.CategoryKuning},
		},
		{
			name:   "exatamente 10 é HIJAU",
			record: domain.AdRecord{Cost: f(20000), UnitsSold: f(1), DirectGMV: f(1), Efficiency: f(10.0)},
			want:   domain.Classification{Category: domain.CategoryHijau},
		},
		{
			name:   "assist convive com a categoria",
			record: domain.AdRecord{Cost: f(20000), UnitsSold: f(2), Efficiency: f(12)},
			want:   domain.Classification{Category: domain.CategoryHijau, Assist: true},
		},
		{
			name:   "GMV zero também é assist",
			record: domain.AdRecord{Cost: f(20000), UnitsSold: f(2), DirectGMV: f(0), Efficiency: f(3)},
			want:   domain.Classification{Category: domain.CategoryMerah, Assist: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.record, tt.aggregateOnly))
		})
	}
}
