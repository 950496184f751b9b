package orchestrating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/internal/wizard"
	"github.com/vfg2006/dailysale/pkg/log"
	"github.com/vfg2006/dailysale/pkg/utils"
)

const maxPercent = 99

// Orchestrator é o que o executor local usa para criar e gerenciar promoções
type Orchestrator interface {
	RunBatch(ctx context.Context, template domain.SaleTemplate, numDays int) (*BatchResult, error)
	RetrySale(ctx context.Context, id string) (*wizard.Report, error)
	ListSales(ctx context.Context, all bool) ([]domain.Sale, error)
	RemoveSale(ctx context.Context, id string) error
	ContinueFrom(ctx context.Context, id string) (domain.SaleTemplate, int, error)
}

// DayFailure descreve um dia do lote que o assistente não conseguiu criar
type DayFailure struct {
	Day       int
	Sale      string
	StartDate string
	Err       error
}

type BatchResult struct {
	CorrelationID string
	License       *domain.LicenseInfo
	Sales         []domain.Sale
	Created       int
	Failures      []DayFailure
	Warnings      map[string][]string
}

type Service struct {
	store     SaleStore
	license   LicenseChecker
	automator wizard.Automator
	salesURL  string
	now       func() time.Time
	logger    log.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store SaleStore, license LicenseChecker, automator wizard.Automator, salesURL string, opts ...Option) *Service {
	s := &Service{
		store:     store,
		license:   license,
		automator: automator,
		salesURL:  salesURL,
		now:       time.Now,
		logger:    log.ForComponent("orchestrator"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func validateBatch(template domain.SaleTemplate, numDays int) error {
	if template.Percent <= 0 || template.Percent > maxPercent {
		return fmt.Errorf("%w: percentual deve estar entre 1 e %d", ErrInvalidInput, maxPercent)
	}
	if strings.TrimSpace(template.StartDate) == "" {
		return fmt.Errorf("%w: data de início obrigatória", ErrInvalidInput)
	}
	if numDays < 1 {
		return fmt.Errorf("%w: número de dias deve ser pelo menos 1", ErrInvalidInput)
	}
	if _, err := domain.ParseLocalYMD(template.StartDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// RunBatch cria uma promoção por dia, em sequência.
// A licença é consumida uma única vez para o lote inteiro; falha de um dia não interrompe os seguintes.
func (s *Service) RunBatch(ctx context.Context, template domain.SaleTemplate, numDays int) (*BatchResult, error) {
	if err := validateBatch(template, numDays); err != nil {
		return nil, err
	}

	ctx, correlationID := log.WithCorrelationID(ctx)
	logger := s.logger.WithContext(ctx)

	now := s.now()
	planned := make([]domain.Sale, 0, numDays)
	for day := 0; day < numDays; day++ {
		id, err := utils.GenerateSaleID(now, day)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id da promoção: %w", err)
		}
		sale, err := template.NewSale(id, day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		planned = append(planned, sale)
	}

	info, err := s.license.CheckLicense(ctx, numDays)
	if err != nil {
		logger.WithError(err).Warn("Licença recusou o lote")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"requested_runs": numDays,
		"remaining":      info.RemainingCredits,
	}).Info("Lote autorizado")

	s.ensureSalesPage(ctx, logger)

	batch := &batchRecorder{}
	result := &BatchResult{
		CorrelationID: correlationID,
		License:       info,
		Warnings:      make(map[string][]string),
	}

	for day, sale := range planned {
		if ctx.Err() != nil {
			logger.WithError(ctx.Err()).Warn("Lote interrompido, dias restantes não serão tentados")
			break
		}

		batch.add(sale)
		dayLogger := logger.WithFields(log.Fields{"day": day, "sale": sale.Name})

		report, err := s.automator.Run(ctx, sale, batch)
		if report != nil && len(report.Warnings) > 0 {
			result.Warnings[sale.Name] = report.Warnings
		}
		if err != nil {
			dayLogger.WithError(err).Warnf("Falha ao criar a promoção de %s, seguindo para o próximo dia", sale.StartDate)
			result.Failures = append(result.Failures, DayFailure{
				Day:       day,
				Sale:      sale.Name,
				StartDate: sale.StartDate,
				Err:       err,
			})
			continue
		}

		if batch.status(sale.ID) == domain.SaleStatusRunning {
			result.Created++
		}
		dayLogger.Info("Promoção do dia concluída")
	}

	result.Sales = batch.snapshot()

	// o lote é gravado mesmo se o contexto foi cancelado no meio
	if err := s.store.AppendSales(context.WithoutCancel(ctx), result.Sales...); err != nil {
		logger.WithError(err).Error("Erro ao gravar o lote no ledger")
		return result, fmt.Errorf("erro ao gravar o lote: %w", err)
	}

	logger.WithFields(log.Fields{
		"created": result.Created,
		"failed":  len(result.Failures),
	}).Infof("Lote concluído: %d de %d dias", result.Created, numDays)

	return result, nil
}

func (s *Service) ensureSalesPage(ctx context.Context, logger log.Logger) {
	if s.salesURL == "" {
		return
	}
	if err := s.automator.EnsureSalesPage(ctx, s.salesURL); err != nil {
		logger.WithError(err).Warn("Não foi possível abrir a página de promoções antes do lote")
	}
}

// RetrySale refaz a automação de uma promoção pendente e grava a transição direto no ledger
func (s *Service) RetrySale(ctx context.Context, id string) (*wizard.Report, error) {
	sale, err := s.store.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status == domain.SaleStatusRunning {
		return nil, ErrAlreadyRunning
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := s.logger.WithContext(ctx).WithField("sale", sale.Name)

	if _, err := s.license.CheckLicense(ctx, 1); err != nil {
		logger.WithError(err).Warn("Licença recusou a nova tentativa")
		return nil, err
	}

	s.ensureSalesPage(ctx, logger)

	report, err := s.automator.Run(ctx, *sale, s.store)
	if err != nil {
		logger.WithError(err).Warn("Nova tentativa falhou")
		return report, err
	}

	logger.Info("Nova tentativa concluída")
	return report, nil
}

// ListSales devolve o ledger completo ou só a promoção mais recente de cada escopo
func (s *Service) ListSales(ctx context.Context, all bool) ([]domain.Sale, error) {
	sales, err := s.store.LoadSales(ctx)
	if err != nil {
		return nil, err
	}
	if all {
		return sales, nil
	}
	return domain.LatestPerScope(sales), nil
}

func (s *Service) RemoveSale(ctx context.Context, id string) error {
	if err := s.store.RemoveSaleByID(ctx, id); err != nil {
		return err
	}
	s.logger.WithContext(ctx).WithField("sale", id).Info("Promoção removida do ledger")
	return nil
}

// ContinueFrom sugere o próximo lote a partir de uma promoção registrada
func (s *Service) ContinueFrom(ctx context.Context, id string) (domain.SaleTemplate, int, error) {
	sale, err := s.store.GetSale(ctx, id)
	if err != nil {
		return domain.SaleTemplate{}, 0, err
	}
	return domain.ContinueFrom(*sale)
}
