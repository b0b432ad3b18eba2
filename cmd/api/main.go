package main

import (
	"context"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/session"
	"github.com/vfg2006/ads-excel-utilities/internal/api"
	"github.com/vfg2006/ads-excel-utilities/internal/config"
	"github.com/vfg2006/ads-excel-utilities/internal/scheduler"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/coloring"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/comparing"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/highlighting"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/naming"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/reporting"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := metrics.New()

	shortener := naming.NewShortener(naming.DefaultVocabulary())
	services := api.Services{
		Shopee: reporting.NewService(shortener),
		Meta:   highlighting.NewService(),
		TikTok: coloring.NewService(),
		Daily:  comparing.NewService(),
	}

	sessions := session.NewStore(cfg.Session.SnapshotLimit)
	tokens := session.NewTokens(cfg.SecretKey, cfg.Session.TTL)

	janitor := scheduler.NewSessionJanitorService(sessions, registry, cfg)
	if err := janitor.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		log.L.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, services, sessions, tokens, registry)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
