package licensing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dailysale/infrastructure/repository"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/pkg/apiErrors"
	"github.com/vfg2006/dailysale/pkg/utils"
)

// errLicenseInactive interrompe a transação de cota sem gravar nada
var errLicenseInactive = errors.New("licença inativa")

type Licenser interface {
	// CheckAndConsume valida a licença e, se requestedRuns > 0, debita o lote inteiro de uma vez
	CheckAndConsume(ctx context.Context, key string, requestedRuns int) (*domain.ConsumeResult, error)
	Provision(ctx context.Context, plan domain.UserPlan) (*domain.License, error)
	ResetExpiredPeriods(ctx context.Context) (int64, error)
}

type Service struct {
	licenseRepo repository.LicenseRepository
	userRepo    repository.UserRepository
	cfg         config.License
	now         func() time.Time
}

type Option func(*Service)

// WithClock troca o relógio usado na virada do período mensal
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(licenseRepo repository.LicenseRepository, userRepo repository.UserRepository, cfg config.License, opts ...Option) *Service {
	if cfg.CreditsPerRun <= 0 {
		cfg.CreditsPerRun = 1
	}
	if cfg.TrialBatchCap <= 0 {
		cfg.TrialBatchCap = domain.DefaultTrialBatchCap
	}
	if cfg.Model == "" {
		cfg.Model = config.LicenseModelCredits
	}

	s := &Service{
		licenseRepo: licenseRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CheckAndConsume(ctx context.Context, key string, requestedRuns int) (*domain.ConsumeResult, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, NewLicenseError(ErrMissingKey, apiErrors.ErrMissingRequiredData)
	}
	if requestedRuns < 0 {
		return nil, NewLicenseError(ErrInvalidRequestedRuns, apiErrors.ErrInvalidRequest)
	}

	logger := logrus.WithFields(logrus.Fields{
		"key":            utils.MaskKey(key),
		"requested_runs": requestedRuns,
		"model":          s.cfg.Model,
	})

	var (
		result *domain.ConsumeResult
		err    error
	)
	if s.cfg.Model == config.LicenseModelMonthlyQuota {
		result, err = s.consumeQuota(ctx, key, requestedRuns)
	} else {
		result, err = s.consumeCredits(ctx, key, requestedRuns)
	}

	if err != nil {
		logger.WithError(err).Warn("Licença recusada")
		return nil, err
	}

	logger.WithField("remaining_runs", result.RemainingRuns).Info("Licença verificada")
	return result, nil
}

func (s *Service) consumeCredits(ctx context.Context, key string, requestedRuns int) (*domain.ConsumeResult, error) {
	license, err := s.licenseRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, newDatabaseError("buscar licença", err)
	}
	if license == nil || !license.Active {
		return nil, NewLicenseError(ErrLicenseNotFoundOrInactive, apiErrors.ErrLicenseNotFoundOrInactive)
	}

	user, err := s.userRepo.GetUserByLicenseKey(ctx, key)
	if err != nil {
		return nil, newDatabaseError("buscar usuário", err)
	}
	if user == nil {
		return nil, NewLicenseError(ErrLicenseNotLinked, apiErrors.ErrLicenseNotLinked)
	}

	creditsPerRun := s.cfg.CreditsPerRun
	currentCredits := max(0, user.Credits)

	result := &domain.ConsumeResult{
		Plan:             license.Plan,
		RemainingCredits: currentCredits,
		RemainingRuns:    currentCredits / creditsPerRun,
		CreditsPerRun:    creditsPerRun,
	}

	if requestedRuns == 0 {
		return result, nil
	}

	required := requestedRuns * creditsPerRun
	if required > currentCredits {
		return nil, NewBalanceError(ErrInsufficientCredits, apiErrors.ErrInsufficientCredits,
			currentCredits, currentCredits/creditsPerRun)
	}

	remaining, consumed, err := s.userRepo.ConsumeCredits(ctx, user.ID, required)
	if err != nil {
		return nil, newDatabaseError("debitar créditos", err)
	}

	remaining = max(0, remaining)
	if !consumed {
		// Outra chamada concorrente gastou o saldo entre a leitura e o débito
		return nil, NewBalanceError(ErrInsufficientCredits, apiErrors.ErrInsufficientCredits,
			remaining, remaining/creditsPerRun)
	}

	result.RemainingCredits = remaining
	result.RemainingRuns = remaining / creditsPerRun
	return result, nil
}

// consumeQuota aplica o modelo de cota mensal. Neste modelo cada execução vale uma unidade,
// então os créditos restantes espelham as execuções restantes.
func (s *Service) consumeQuota(ctx context.Context, key string, requestedRuns int) (*domain.ConsumeResult, error) {
	license, err := s.licenseRepo.ConsumeQuota(ctx, key, func(l *domain.License) error {
		if !l.Active {
			return errLicenseInactive
		}
		return l.ConsumeRuns(requestedRuns, s.cfg.TrialBatchCap, s.now())
	})

	switch {
	case errors.Is(err, errLicenseInactive):
		return nil, NewLicenseError(ErrLicenseNotFoundOrInactive, apiErrors.ErrLicenseNotFoundOrInactive)
	case errors.Is(err, domain.ErrTrialBatchCapExceeded):
		remaining := license.RemainingRuns()
		return nil, NewBalanceError(ErrTrialBatchCap, apiErrors.ErrTrialBatchCap, remaining, remaining)
	case errors.Is(err, domain.ErrMonthlyQuotaExceeded):
		remaining := license.RemainingRuns()
		return nil, NewBalanceError(ErrQuotaExceeded, apiErrors.ErrQuotaExceeded, remaining, remaining)
	case err != nil:
		return nil, newDatabaseError("consumir cota", err)
	}

	if license == nil {
		return nil, NewLicenseError(ErrLicenseNotFoundOrInactive, apiErrors.ErrLicenseNotFoundOrInactive)
	}

	remaining := license.RemainingRuns()
	return &domain.ConsumeResult{
		Plan:             license.Plan,
		RemainingCredits: remaining,
		RemainingRuns:    remaining,
		CreditsPerRun:    1,
	}, nil
}

// Provision cria uma licença ativa para o plano do usuário, começando no mês corrente
func (s *Service) Provision(ctx context.Context, plan domain.UserPlan) (*domain.License, error) {
	key, err := utils.GenerateLicenseKey()
	if err != nil {
		return nil, err
	}

	licensePlan, maxRuns := domain.LicensePlanFor(plan)
	license := &domain.License{
		Key:                key,
		Plan:               licensePlan,
		Active:             true,
		MaxRunsPerMonth:    maxRuns,
		UsedRunsThisPeriod: 0,
		PeriodStart:        domain.FirstDayOfMonth(s.now()),
	}

	created, err := s.licenseRepo.Create(ctx, license)
	if err != nil {
		return nil, newDatabaseError("criar licença", err)
	}

	logrus.WithFields(logrus.Fields{
		"key":  utils.MaskKey(key),
		"plan": licensePlan,
	}).Info("Licença criada")

	return created, nil
}

// ResetExpiredPeriods zera a cota das licenças cujo período é anterior ao mês corrente
func (s *Service) ResetExpiredPeriods(ctx context.Context) (int64, error) {
	periodStart := domain.FirstDayOfMonth(s.now())

	affected, err := s.licenseRepo.ResetExpiredPeriods(ctx, periodStart)
	if err != nil {
		return 0, newDatabaseError("reiniciar períodos", err)
	}

	return affected, nil
}
