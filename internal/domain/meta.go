package domain

// KPIHighlightStats resume quantas células foram destacadas na planilha do META
type KPIHighlightStats struct {
	Rows            int            `json:"rows"`
	Columns         int            `json:"columns"`
	HighlightedBad  map[string]int `json:"highlighted_bad"`
	HighlightedGood map[string]int `json:"highlighted_good"`
	Preview         TablePreview   `json:"preview"`
}
