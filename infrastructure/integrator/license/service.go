package license

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	licensedomain "github.com/vfg2006/dailysale/infrastructure/integrator/license/domain"
	"github.com/vfg2006/dailysale/infrastructure/integrator/license/licenseclient"
	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/pkg/utils"
)

// DefaultCacheTTL é a janela em que consultas sem consumo reaproveitam o último resultado
const DefaultCacheTTL = 60 * time.Second

// Códigos de recusa que significam falta de saldo (créditos ou cota)
var balanceCodes = map[string]bool{
	"LIC_003": true,
	"LIC_004": true,
	"LIC_005": true,
}

// KeyLoader lê a chave salva localmente; "" significa que não há chave
type KeyLoader interface {
	LoadLicenseKey(ctx context.Context) (string, error)
}

type LicenseIntegrator interface {
	CheckLicense(ctx context.Context, requestedRuns int) (*domain.LicenseInfo, error)
	Invalidate()
}

type LicenseService struct {
	client licenseclient.Client
	keys   KeyLoader
	ttl    time.Duration
	now    func() time.Time

	mu     sync.Mutex
	cached *domain.LicenseInfo
}

type Option func(*LicenseService)

func WithClock(now func() time.Time) Option {
	return func(s *LicenseService) {
		s.now = now
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *LicenseService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func New(client licenseclient.Client, keys KeyLoader, opts ...Option) *LicenseService {
	s := &LicenseService{
		client: client,
		keys:   keys,
		ttl:    DefaultCacheTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckLicense verifica a licença e, com requestedRuns > 0, consome o lote no servidor
func (s *LicenseService) CheckLicense(ctx context.Context, requestedRuns int) (*domain.LicenseInfo, error) {
	if requestedRuns < 0 {
		return nil, ErrInvalidRequestedRuns
	}

	key, err := s.keys.LoadLicenseKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a chave de licença: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrNoKeyConfigured
	}

	if requestedRuns == 0 {
		if info, ok, err := s.fromCache(); ok {
			return info, err
		}
	}

	logger := logrus.WithFields(logrus.Fields{
		"key":            utils.MaskKey(key),
		"requested_runs": requestedRuns,
	})

	resp, status, err := s.client.CheckAndConsume(ctx, licensedomain.CheckRequest{
		Key:           key,
		RequestedRuns: requestedRuns,
	})
	if err != nil {
		logger.WithError(err).Warn("Falha ao verificar licença")
		return nil, &CheckError{Err: ErrNetworkOrServer, Status: status, Message: err.Error()}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		checkErr := classify(resp, status)
		logger.WithField("status", status).WithError(checkErr).Warn("Licença recusada")
		return nil, checkErr
	}

	info := toLicenseInfo(resp, s.now())
	s.store(info)

	if !info.Valid {
		return nil, &CheckError{Err: ErrLicenseInvalid, Status: status, Message: resp.Message}
	}

	logger.WithField("remaining_runs", info.RemainingRuns).Info("Licença verificada")
	return copyInfo(info), nil
}

// Invalidate descarta o resultado em cache, usado ao trocar a chave
func (s *LicenseService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}

func (s *LicenseService) fromCache() (*domain.LicenseInfo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil || s.now().Sub(s.cached.CheckedAt) >= s.ttl {
		return nil, false, nil
	}
	if !s.cached.Valid {
		return nil, true, &CheckError{Err: ErrLicenseInvalid}
	}
	return copyInfo(s.cached), true, nil
}

func (s *LicenseService) store(info *domain.LicenseInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = info
}

func classify(resp *licensedomain.CheckResponse, status int) *CheckError {
	checkErr := &CheckError{Status: status}
	if resp != nil {
		checkErr.Message = resp.Message
		checkErr.RemainingCredits = resp.RemainingCredits
		checkErr.RemainingRuns = resp.RemainingRuns
	}

	switch {
	case status >= http.StatusInternalServerError:
		checkErr.Err = ErrNetworkOrServer
	case resp != nil && (balanceCodes[resp.Code] || strings.Contains(resp.Message, "Not enough credits")):
		checkErr.Err = ErrInsufficientCredits
	default:
		checkErr.Err = ErrLicenseInvalid
	}
	return checkErr
}

func toLicenseInfo(resp *licensedomain.CheckResponse, checkedAt time.Time) *domain.LicenseInfo {
	info := &domain.LicenseInfo{
		Valid:         resp.Valid,
		CreditsPerRun: 1,
		CheckedAt:     checkedAt,
	}
	if resp.Plan != nil {
		info.Plan = domain.LicensePlan(*resp.Plan)
	}
	if resp.RemainingCredits != nil {
		info.RemainingCredits = *resp.RemainingCredits
	}
	if resp.RemainingRuns != nil {
		info.RemainingRuns = *resp.RemainingRuns
	}
	if resp.CreditsPerRun != nil {
		info.CreditsPerRun = *resp.CreditsPerRun
	}
	return info
}

func copyInfo(info *domain.LicenseInfo) *domain.LicenseInfo {
	c := *info
	return &c
}
