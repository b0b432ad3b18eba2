package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/comparing"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/middleware"
)

const dailyTool = "tiktok_daily"

var ErrNoSession = errors.New("Sessão não encontrada")

type snapshotsResponse struct {
	Snapshots []domain.SnapshotInfo `json:"snapshots"`
}

type clearResponse struct {
	Removed int `json:"removed"`
}

// sessionCache devolve o cache diário da sessão colocada no contexto pelo middleware
func sessionCache(r *http.Request) (comparing.SnapshotCache, error) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return nil, domain.NewProcessingError(ErrNoSession, apiErrors.ErrInvalidSession, "")
	}
	return sess, nil
}

// AddDailySnapshot guarda um relatório diário no cache da sessão
func AddDailySnapshot(service comparing.DailyComparer, opts ToolOptions) http.Handler {
	rs := newResponder(dailyTool, opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cache, err := sessionCache(r)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		in, err := readUpload(w, r, opts.MaxUploadBytes)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.AddSnapshot(cache, in.Data, domain.SnapshotOptions{
			Date:     r.FormValue("date"),
			FileName: in.FileName,
			Sheet:    r.FormValue("sheet"),
		})
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tool":   rs.tool,
			"rows":   result.Snapshot.Products,
			"cached": len(result.Cached),
		}).Info("tiktok: daily snapshot stored")

		rs.recorder.ToolSucceeded(rs.tool, result.Snapshot.Products)
		rs.json(w, r, http.StatusCreated, result)
	})
}

func ListDailySnapshots(opts ToolOptions) http.Handler {
	rs := newResponder(dailyTool, opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cache, err := sessionCache(r)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.json(w, r, http.StatusOK, snapshotsResponse{Snapshots: cache.Infos()})
	})
}

func ClearDailySnapshots(opts ToolOptions) http.Handler {
	rs := newResponder(dailyTool, opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cache, err := sessionCache(r)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		removed := cache.Clear()
		log.ForContext(r.Context()).WithField("tool", rs.tool).Infof("tiktok: %d daily snapshots cleared", removed)

		rs.json(w, r, http.StatusOK, clearResponse{Removed: removed})
	})
}

// CompareDaily gera o comparativo com os relatórios em cache; format=json devolve só a série
func CompareDaily(service comparing.DailyComparer, opts ToolOptions) http.Handler {
	rs := newResponder(dailyTool+"_compare", opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cache, err := sessionCache(r)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		result, err := service.Compare(cache)
		if err != nil {
			rs.fail(w, r, err)
			return
		}

		rs.workbook(w, r, result)
	})
}
