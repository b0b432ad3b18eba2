package categorizing

import "github.com/vfg2006/ads-excel-utilities/internal/domain"

const (
	// HighSpendThreshold é o custo a partir do qual uma linha sem vendas é tratada como desperdício
	HighSpendThreshold = 10000.0
	// MerahBelow e HijauFrom delimitam os baldes de eficiência (limites inclusivos embaixo)
	MerahBelow = 8.0
	HijauFrom  = 10.0
)

// Classify decide a categoria de cor, a marcação especial e o status de assist de uma linha.
// A primeira regra que casa encerra a decisão de categoria; assist é avaliado à parte.
func Classify(record domain.AdRecord, aggregateOnlyMode bool) domain.Classification {
	result := domain.Classification{}

	cost, units := record.Cost, record.UnitsSold
	if cost == nil || units == nil {
		result.Assist = isAssist(record)
		return result
	}

	switch {
	case *cost == 0 && *units > 0:
		result.Tag = domain.TagFreeConversion
		return result
	case *units == 0 && *cost >= HighSpendThreshold:
		result.Tag = domain.TagZeroConversionHighSpend
		return result
	case *units == 0:
		result.Tag = domain.TagWarmingUp
		return result
	}

	result.Assist = isAssist(record)

	efficiency := record.Efficiency
	if aggregateOnlyMode && efficiency == nil {
		if *units > 0 {
			result.Category = domain.CategoryHijau
		}
		return result
	}

	result.Category = efficiencyBucket(efficiency)
	return result
}

func efficiencyBucket(efficiency *float64) domain.Category {
	switch {
	case efficiency == nil || *efficiency < MerahBelow:
		return domain.CategoryMerah
	case *efficiency < HijauFrom:
		return domain.CategoryKuning
	default:
		return domain.CategoryHijau
	}
}

// isAssist: vendeu unidades sem GMV direto atribuído
func isAssist(record domain.AdRecord) bool {
	if record.UnitsSold == nil || *record.UnitsSold <= 0 {
		return false
	}
	return record.DirectGMV == nil || *record.DirectGMV == 0
}
