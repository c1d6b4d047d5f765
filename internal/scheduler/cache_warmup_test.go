package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func warmupConfig(enabled bool) *config.Config {
	return &config.Config{
		CacheWarmup: config.CacheWarmup{
			CronSchedule: "*/10 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestCacheWarmupTriggerManualRun(t *testing.T) {
	t.Run("Execução manual recarrega o cache e registra o estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)
		mockReporter.EXPECT().Refresh(gomock.Any()).Return(nil)

		service := NewCacheWarmupService(mockReporter, warmupConfig(false))

		runID, err := service.TriggerManualRun(context.Background())

		assert.NoError(t, err)
		assert.NotEmpty(t, runID)

		status := service.Status()
		assert.False(t, status.Running)
		assert.Equal(t, runID, status.LastRunID)
		assert.NotNil(t, status.LastStartedAt)
		assert.NotNil(t, status.LastCompletedAt)
		assert.Empty(t, status.LastError)
	})

	t.Run("Falha na recarga fica registrada no status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)
		mockReporter.EXPECT().Refresh(gomock.Any()).
			Return(domain.NewReportError(domain.ErrConnectivity, "timeout"))

		service := NewCacheWarmupService(mockReporter, warmupConfig(false))

		runID, err := service.TriggerManualRun(context.Background())

		assert.Error(t, err)
		assert.NotEmpty(t, runID)

		status := service.Status()
		assert.False(t, status.Running)
		assert.Contains(t, status.LastError, "timeout")
	})
}

func TestCacheWarmupStartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao reporter deve ocorrer com o job desabilitado
	mockReporter := mocks.NewMockReporter(ctrl)

	service := NewCacheWarmupService(mockReporter, warmupConfig(false))

	err := service.Start(context.Background())

	assert.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.Equal(t, "*/10 * * * *", status.CronSchedule)
	assert.Empty(t, status.LastRunID)
}
