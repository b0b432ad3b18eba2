package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
)

// ShopeeReporter define as ferramentas de planilha da Shopee
type ShopeeReporter interface {
	// BuildAdsReport gera o relatório colorido a partir do CSV de anúncios
	BuildAdsReport(data []byte, opts domain.AdsReportOptions) (*domain.GeneratedWorkbook, error)

	// SwapDotComma troca "." por "," (e vice-versa) em todas as células de todas as abas
	SwapDotComma(data []byte, fileName string) (*domain.GeneratedWorkbook, error)

	// SortSales ordena a aba "Performa Produk" por Channel e Kode Produk
	SortSales(data []byte) (*domain.GeneratedWorkbook, error)

	// FilterProducts lista os produtos vendidos e os adicionados ao carrinho
	FilterProducts(data []byte) (*domain.GeneratedWorkbook, error)
}
