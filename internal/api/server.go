package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/ads-excel-utilities/infrastructure/session"
	"github.com/vfg2006/ads-excel-utilities/internal/api/handler"
	"github.com/vfg2006/ads-excel-utilities/internal/api/handler/router"
	"github.com/vfg2006/ads-excel-utilities/internal/config"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/coloring"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/comparing"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/highlighting"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/reporting"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/metrics"
	"github.com/vfg2006/ads-excel-utilities/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Shopee reporting.ShopeeReporter
	Meta   highlighting.KPIHighlighter
	TikTok coloring.TikTokColorer
	Daily  comparing.DailyComparer
}

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	services Services,
	sessions *session.Store,
	tokens *session.Tokens,
	registry *metrics.Registry,
) (*Server, error) {
	opts := handler.ToolOptions{
		MaxUploadBytes: config.Upload.MaxBytes,
		Recorder:       registry,
	}

	sessionMiddleware := middleware.Session(sessions, tokens, config.Session.CookieName)

	rt := router.New(
		// o path da rota (e não o da requisição) vira o label das métricas
		router.WithRouteMiddleware(func(route router.Route) func(http.Handler) http.Handler {
			return middleware.Metrics(registry, route.Path)
		}),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(registry.Handler())...),
		router.WithRoutes(handler.Shopee(services.Shopee, opts)...),
		router.WithRoutes(handler.Meta(services.Meta, opts)...),
		router.WithRoutes(handler.TikTok(services.TikTok, opts)...),
		router.WithRoutes(handler.TikTokDaily(services.Daily, opts, sessionMiddleware)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
