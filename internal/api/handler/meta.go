package handler

import (
	"net/http"

	"github.com/vfg2006/ads-excel-utilities/internal/usecases/highlighting"
)

// HighlightKPIs destaca as células fora da meta no relatório do META
func HighlightKPIs(service highlighting.KPIHighlighter, opts ToolOptions) http.Handler {
	rs := newResponder("meta_kpi_highlight", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.Highlight(in.Data)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.workbook(w, r, result)
	})
}
