package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-excel-utilities/pkg/metrics"
)

// Metrics registra contagem e duração das requisições de uma rota.
// path é o padrão registrado no router, usado como rótulo.
func Metrics(registry *metrics.Registry, path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			registry.ObserveRequest(r.Method, path, lrw.statusCode, time.Since(start))
		})
	}
}
