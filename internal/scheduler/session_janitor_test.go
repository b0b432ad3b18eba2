package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-excel-utilities/internal/config"
	"github.com/vfg2006/ads-excel-utilities/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func janitorConfig(enabled bool) *config.Config {
	return &config.Config{
		Session: config.Session{
			TTL:            2 * time.Hour,
			JanitorCron:    "*/15 * * * *",
			JanitorEnabled: enabled,
		},
	}
}

func TestSessionJanitorService_purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockIdleSessionStore(ctrl)
	mockGauge := mocks.NewMockSessionGauge(ctrl)

	gomock.InOrder(
		mockStore.EXPECT().PurgeIdle(2*time.Hour).Return(3),
		mockStore.EXPECT().Len().Return(5),
	)
	mockGauge.EXPECT().SessionsPurged(3)
	mockGauge.EXPECT().SetSessions(5)

	service := NewSessionJanitorService(mockStore, mockGauge, janitorConfig(true))
	service.purge()

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_run_removed"])
	assert.Equal(t, "2h0m0s", status["max_idle"])
	assert.False(t, status["last_run_at"].(time.Time).IsZero())
}

func TestSessionJanitorService_purgeSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// nenhuma chamada esperada no store
	mockStore := mocks.NewMockIdleSessionStore(ctrl)

	service := NewSessionJanitorService(mockStore, nil, janitorConfig(true))
	service.running = true
	service.purge()
}

func TestSessionJanitorService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockIdleSessionStore(ctrl)

	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		service := NewSessionJanitorService(mockStore, nil, janitorConfig(false))
		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("cron inválido", func(t *testing.T) {
		cfg := janitorConfig(true)
		cfg.Session.JanitorCron = "não é cron"

		service := NewSessionJanitorService(mockStore, nil, cfg)
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		service := NewSessionJanitorService(mockStore, nil, janitorConfig(true))
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
