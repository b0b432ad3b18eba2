package reporting

import "errors"

// Erros específicos para os relatórios da Shopee
var (
	// Erros de leitura
	ErrHeaderNotFound     = errors.New("Header Nama Iklan tidak ditemukan")
	ErrNameColumnNotFound = errors.New("Kolom Nama Iklan tidak ditemukan")
	ErrReadWorkbook       = errors.New("error reading workbook")

	// Erros de validação
	ErrMissingColumns = errors.New("Kolom tidak ditemukan")

	// Erros de escrita
	ErrBuildWorkbook = errors.New("error building workbook")
)
