package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/internal/usecases/licensing/mocks"
	"go.uber.org/mock/gomock"
)

func TestQuotaPeriodResetService_ResetQuotaPeriods(t *testing.T) {
	tests := []struct {
		name     string
		running  bool
		setup    func(m *mocks.MockLicenser)
		validate func(t *testing.T, s *QuotaPeriodResetService, err error)
	}{
		{
			name: "reinicia licenças com período vencido",
			setup: func(m *mocks.MockLicenser) {
				m.EXPECT().ResetExpiredPeriods(gomock.Any()).Return(int64(7), nil)
			},
			validate: func(t *testing.T, s *QuotaPeriodResetService, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), s.lastResetCount)
				assert.False(t, s.lastResetAt.IsZero())
				assert.False(t, s.resetRunning)
			},
		},
		{
			name: "erro do banco é devolvido",
			setup: func(m *mocks.MockLicenser) {
				m.EXPECT().ResetExpiredPeriods(gomock.Any()).Return(int64(0), errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, s *QuotaPeriodResetService, err error) {
				assert.Error(t, err)
				assert.True(t, s.lastResetAt.IsZero())
				assert.False(t, s.resetRunning)
			},
		},
		{
			name:    "execução em andamento é ignorada",
			running: true,
			setup:   func(m *mocks.MockLicenser) {},
			validate: func(t *testing.T, s *QuotaPeriodResetService, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			licenser := mocks.NewMockLicenser(ctrl)
			tt.setup(licenser)

			service := &QuotaPeriodResetService{licenser: licenser, resetRunning: tt.running}

			err := service.ResetQuotaPeriods(context.Background())
			tt.validate(t, service, err)
		})
	}
}

func TestNewQuotaPeriodResetService_EnabledOnlyForQuotaModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		License:    config.License{Model: config.LicenseModelCredits},
		QuotaReset: config.QuotaReset{CronSchedule: "0 0 1 * *", Enabled: true},
	}

	service := NewQuotaPeriodResetService(mocks.NewMockLicenser(ctrl), cfg)
	assert.False(t, service.config.Enabled)
	assert.NoError(t, service.Start(context.Background()))

	cfg.License.Model = config.LicenseModelMonthlyQuota
	service = NewQuotaPeriodResetService(mocks.NewMockLicenser(ctrl), cfg)
	assert.True(t, service.config.Enabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, service.Start(ctx))
}
