package handler

import (
	"net/http"

	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/coloring"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
)

// ColorROI pinta as linhas do relatório do TikTok pelo ROI
func ColorROI(service coloring.TikTokColorer, opts ToolOptions) http.Handler {
	rs := newResponder("tiktok_roi_coloring", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.ColorROI(in.Data, domain.ROIColoringOptions{
			Sheet:    r.FormValue("sheet"),
			FileName: in.FileName,
		})
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.workbook(w, r, result)
	})
}

// FixCampaignSheet protege a coluna de ID e informa qual foi no cabeçalho X-Protected-Column
func FixCampaignSheet(service coloring.TikTokColorer, opts ToolOptions) http.Handler {
	rs := newResponder("tiktok_excel_fixer", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.FixCampaignSheet(in.Data)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		if stats, ok := result.Preview.(*domain.FixerStats); ok && stats.ProtectedColumn != "" {
			w.Header().Set(ProtectedColumnHeader, stats.ProtectedColumn)
			log.ForContext(r.Context()).WithFields(log.Fields{
				"tool":      rs.tool,
				"protected": stats.ProtectedColumn,
			}).Debug("tiktok: protected column detected")
		}

		rs.workbook(w, r, result)
	})
}
