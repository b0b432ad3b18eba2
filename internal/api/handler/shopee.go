package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/reporting"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
)

// BuildAdsReport converte o CSV de anúncios da Shopee no Excel colorido
func BuildAdsReport(service reporting.ShopeeReporter, opts ToolOptions) http.Handler {
	rs := newResponder("shopee_ads_report", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		mode, err := domain.ParseCSVMode(r.FormValue("mode"))
		if err != nil {
			rs.fail(w, r, domain.NewProcessingError(err, apiErrors.ErrInvalidRequest, r.FormValue("mode")))
			return
		}

		include := domain.SummaryFilter{
			Merah:  formBool(r, "include_merah"),
			Kuning: formBool(r, "include_kuning"),
			Hijau:  formBool(r, "include_hijau"),
			Biru:   formBool(r, "include_biru"),
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tool": rs.tool,
			"mode": string(mode),
		}).Info("shopee: building ads report")

		result, err := service.BuildAdsReport(in.Data, domain.AdsReportOptions{
			Mode:     mode,
			Include:  include,
			FileName: in.FileName,
		})
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.workbook(w, r, result)
	})
}

func SwapDotComma(service reporting.ShopeeReporter, opts ToolOptions) http.Handler {
	rs := newResponder("shopee_dot_comma", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.SwapDotComma(in.Data, in.FileName)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.workbook(w, r, result)
	})
}

func SortSales(service reporting.ShopeeReporter, opts ToolOptions) http.Handler {
	rs := newResponder("shopee_sales_sort", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.SortSales(in.Data)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.workbook(w, r, result)
	})
}

func FilterProducts(service reporting.ShopeeReporter, opts ToolOptions) http.Handler {
	rs := newResponder("shopee_product_filter", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.FilterProducts(in.Data)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.workbook(w, r, result)
	})
}

// formBool: ausente conta como marcado, como os checkboxes do formulário
func formBool(r *http.Request, field string) bool {
	raw := r.FormValue(field)
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return raw == "on"
	}
	return v
}
