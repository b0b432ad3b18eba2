package domain

// ROIColoringOptions são os controles da ferramenta "Pewarnaan ROI (PURE)"
type ROIColoringOptions struct {
	Sheet    string
	FileName string
}

// ROIColumns registra quais colunas da planilha foram usadas na coloração
type ROIColumns struct {
	Cost             string   `json:"biaya"`
	GrossRevenue     string   `json:"pendapatan_kotor,omitempty"`
	BrutoRevenue     string   `json:"pendapatan_bruto,omitempty"`
	EffectiveRevenue string   `json:"pendapatan_efektif"`
	BrutoComputed    bool     `json:"pendapatan_bruto_computed"`
	ROI              string   `json:"roi"`
	Status           string   `json:"status,omitempty"`
	PercentColumns   []string `json:"percent_cols_used"`
	MissingPercent   []string `json:"percent_cols_missing,omitempty"`
}

// ROIColoringStats é a prévia devolvida junto com a planilha colorida
type ROIColoringStats struct {
	Sheet       string       `json:"sheet"`
	RowsBefore  int          `json:"rows_before"`
	RowsAfter   int          `json:"rows_after_filter"`
	RowsRemoved int          `json:"rows_removed_where_biaya_pendapatan_roi_all_zero"`
	Columns     ROIColumns   `json:"using_columns"`
	Preview     TablePreview `json:"preview"`
}

// FixerStats é a prévia do "Excel Fixer: Campaign ID & Comma"
type FixerStats struct {
	ProtectedColumn string       `json:"protected_column,omitempty"`
	NumericColumns  []string     `json:"numeric_columns"`
	Rows            int          `json:"rows"`
	Columns         int          `json:"columns"`
	Preview         TablePreview `json:"preview"`
}
