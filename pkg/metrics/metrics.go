package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ads_excel"

// Registry agrupa as métricas da aplicação em um registro próprio, fora do global
type Registry struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	toolRuns        *prometheus.CounterVec
	toolRows        *prometheus.HistogramVec
	sessions        prometheus.Gauge
	sessionsPurged  prometheus.Counter
}

func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por rota e status.",
		}, []string{"method", "path", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "path"}),
		toolRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_runs_total",
			Help:      "Execuções de cada ferramenta de planilha por resultado.",
		}, []string{"tool", "result"}),
		toolRows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_rows",
			Help:      "Linhas processadas por execução.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 7),
		}, []string{"tool"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Sessões com cache diário em memória.",
		}),
		sessionsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_purged_total",
			Help:      "Sessões removidas por inatividade.",
		}),
	}

	r.registry.MustRegister(
		r.requests,
		r.requestDuration,
		r.toolRuns,
		r.toolRows,
		r.sessions,
		r.sessionsPurged,
		collectors.NewGoCollector(),
	)

	return r
}

// ObserveRequest registra uma requisição concluída. path deve ser o padrão da rota, não a URL.
func (r *Registry) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ToolSucceeded conta uma execução bem-sucedida e o número de linhas processadas
func (r *Registry) ToolSucceeded(tool string, rows int) {
	r.toolRuns.WithLabelValues(tool, "ok").Inc()
	r.toolRows.WithLabelValues(tool).Observe(float64(rows))
}

// ToolFailed conta uma execução com erro, rotulada pelo código da API
func (r *Registry) ToolFailed(tool, code string) {
	r.toolRuns.WithLabelValues(tool, code).Inc()
}

func (r *Registry) SetSessions(n int) {
	r.sessions.Set(float64(n))
}

func (r *Registry) SessionsPurged(n int) {
	r.sessionsPurged.Add(float64(n))
}

// Handler expõe as métricas no formato do prometheus
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
