package handler

import (
	"net/http"

	"github.com/vfg2006/ads-excel-utilities/internal/api/handler/router"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/coloring"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/comparing"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/highlighting"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Shopee(service reporting.ShopeeReporter, opts ToolOptions) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/shopee/ads-report",
			Method:  http.MethodPost,
			Handler: BuildAdsReport(service, opts),
		},
		{
			Path:    "/v1/shopee/dot-comma",
			Method:  http.MethodPost,
			Handler: SwapDotComma(service, opts),
		},
		{
			Path:    "/v1/shopee/sales-sort",
			Method:  http.MethodPost,
			Handler: SortSales(service, opts),
		},
		{
			Path:    "/v1/shopee/product-filter",
			Method:  http.MethodPost,
			Handler: FilterProducts(service, opts),
		},
	}
}

func Meta(service highlighting.KPIHighlighter, opts ToolOptions) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/kpi-highlight",
			Method:  http.MethodPost,
			Handler: HighlightKPIs(service, opts),
		},
	}
}

func TikTok(service coloring.TikTokColorer, opts ToolOptions) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tiktok/roi-coloring",
			Method:  http.MethodPost,
			Handler: ColorROI(service, opts),
		},
		{
			Path:    "/v1/tiktok/excel-fixer",
			Method:  http.MethodPost,
			Handler: FixCampaignSheet(service, opts),
		},
	}
}

// TikTokDaily são as rotas do comparativo diário; todas dependem do cookie de sessão
func TikTokDaily(service comparing.DailyComparer, opts ToolOptions, sessionMiddleware func(http.Handler) http.Handler) []router.Route {
	withSession := []func(http.Handler) http.Handler{sessionMiddleware}

	return []router.Route{
		{
			Path:        "/v1/tiktok/daily/snapshots",
			Method:      http.MethodPost,
			Handler:     AddDailySnapshot(service, opts),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/tiktok/daily/snapshots",
			Method:      http.MethodGet,
			Handler:     ListDailySnapshots(opts),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/tiktok/daily/snapshots",
			Method:      http.MethodDelete,
			Handler:     ClearDailySnapshots(opts),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/tiktok/daily/compare",
			Method:      http.MethodGet,
			Handler:     CompareDaily(service, opts),
			Middlewares: withSession,
		},
	}
}
