package scheduler

//go:generate mockgen -source=session_janitor.go -destination=mocks/session_janitor_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/ads-excel-utilities/internal/config"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
)

// IdleSessionStore é o que o janitor precisa do store de sessões
type IdleSessionStore interface {
	PurgeIdle(maxIdle time.Duration) int
	Len() int
}

// SessionGauge recebe o número de sessões após cada limpeza (pkg/metrics)
type SessionGauge interface {
	SetSessions(n int)
	SessionsPurged(n int)
}

// SessionJanitorConfig representa a configuração da limpeza de sessões ociosas
type SessionJanitorConfig struct {
	CronSchedule string
	MaxIdle      time.Duration
	Enabled      bool
}

// SessionJanitorService remove periodicamente as sessões sem uso há mais de MaxIdle,
// liberando os snapshots diários guardados em memória
type SessionJanitorService struct {
	scheduler *gocron.Scheduler
	config    SessionJanitorConfig
	store     IdleSessionStore
	gauge     SessionGauge

	runMutex       sync.Mutex
	running        bool
	lastRunAt      time.Time
	lastRunRemoved int
}

func NewSessionJanitorService(store IdleSessionStore, gauge SessionGauge, appConfig *config.Config) *SessionJanitorService {
	janitorConfig := SessionJanitorConfig{
		CronSchedule: appConfig.Session.JanitorCron,
		MaxIdle:      appConfig.Session.TTL,
		Enabled:      appConfig.Session.JanitorEnabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": janitorConfig.CronSchedule,
		"max_idle":      janitorConfig.MaxIdle.String(),
		"enabled":       janitorConfig.Enabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionJanitorService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    janitorConfig,
		store:     store,
		gauge:     gauge,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto é cancelado
func (s *SessionJanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.purge)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// purge remove as sessões ociosas; execuções sobrepostas são ignoradas
func (s *SessionJanitorService) purge() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		log.L.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	removed := s.store.PurgeIdle(s.config.MaxIdle)
	remaining := s.store.Len()

	if s.gauge != nil {
		s.gauge.SessionsPurged(removed)
		s.gauge.SetSessions(remaining)
	}

	s.runMutex.Lock()
	s.lastRunAt = time.Now()
	s.lastRunRemoved = removed
	s.runMutex.Unlock()

	log.L.WithFields(log.Fields{
		"removed":   removed,
		"remaining": remaining,
	}).Infof("scheduler: %d idle sessions purged", removed)
}

// GetStatus retorna o status atual do agendador
func (s *SessionJanitorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":          s.config.Enabled,
		"cron":             s.config.CronSchedule,
		"max_idle":         s.config.MaxIdle.String(),
		"last_run_at":      s.lastRunAt,
		"last_run_removed": s.lastRunRemoved,
	}
}
