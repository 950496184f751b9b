// Package scheduler contém os serviços agendados do servidor de licenças
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/internal/usecases/licensing"
)

type QuotaPeriodResetConfig struct {
	CronSchedule string
	Enabled      bool
}

// QuotaPeriodResetService zera o uso mensal das licenças no modelo de cota.
// O consumo já reinicia o período sozinho; o job só mantém a tabela coerente para relatórios.
type QuotaPeriodResetService struct {
	scheduler        *gocron.Scheduler
	licenser         licensing.Licenser
	config           QuotaPeriodResetConfig
	resetRunning     bool
	resetMutex       sync.Mutex
	lastResetAt      time.Time
	lastResetCount   int64
}

func NewQuotaPeriodResetService(licenser licensing.Licenser, cfg *config.Config) *QuotaPeriodResetService {
	resetConfig := QuotaPeriodResetConfig{
		CronSchedule: cfg.QuotaReset.CronSchedule, // Default: dia 1 à meia-noite
		Enabled:      cfg.QuotaReset.Enabled && cfg.License.Model == config.LicenseModelMonthlyQuota,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": resetConfig.CronSchedule,
		"enabled":       resetConfig.Enabled,
	}).Info("Configuração do agendador de reinício de cota carregada")

	return &QuotaPeriodResetService{
		scheduler: gocron.NewScheduler(time.Local),
		licenser:  licenser,
		config:    resetConfig,
	}
}

func (s *QuotaPeriodResetService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de reinício de cota desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reinício de cota mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ResetQuotaPeriods(ctx); err != nil {
			logrus.WithError(err).Error("Erro no reinício de cota mensal")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reinício de cota: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reinício de cota")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *QuotaPeriodResetService) ResetQuotaPeriods(ctx context.Context) error {
	s.resetMutex.Lock()
	if s.resetRunning {
		s.resetMutex.Unlock()
		logrus.Warn("Reinício de cota já está em execução")
		return nil
	}
	s.resetRunning = true
	s.resetMutex.Unlock()

	defer func() {
		s.resetMutex.Lock()
		s.resetRunning = false
		s.resetMutex.Unlock()
	}()

	startedAt := time.Now()
	affected, err := s.licenser.ResetExpiredPeriods(ctx)
	if err != nil {
		return err
	}

	s.resetMutex.Lock()
	s.lastResetAt = startedAt
	s.lastResetCount = affected
	s.resetMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"licenses": affected,
		"duration": time.Since(startedAt).String(),
	}).Info("Reinício de cota mensal concluído")

	return nil
}
