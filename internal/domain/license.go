package domain

import (
	"errors"
	"time"
)

type LicensePlan string

const (
	LicensePlanTrial    LicensePlan = "trial"
	LicensePlanPro      LicensePlan = "pro"
	LicensePlanLifetime LicensePlan = "lifetime"
)

// UnlimitedRuns marca licenças sem limite mensal
const UnlimitedRuns = -1

const (
	// DefaultTrialBatchCap é o máximo de execuções por lote no plano trial
	DefaultTrialBatchCap = 3
	// DefaultTrialRunsPerMonth é o limite mensal de uma licença trial recém criada
	DefaultTrialRunsPerMonth = 3
)

var (
	ErrTrialBatchCapExceeded = errors.New("trial batch cap exceeded")
	ErrMonthlyQuotaExceeded  = errors.New("monthly run quota exceeded")
)

type License struct {
	ID                 int         `json:"id"`
	Key                string      `json:"key"`
	Plan               LicensePlan `json:"plan"`
	Active             bool        `json:"active"`
	MaxRunsPerMonth    int         `json:"maxRunsPerMonth"`
	UsedRunsThisPeriod int         `json:"usedRunsThisPeriod"`
	PeriodStart        time.Time   `json:"periodStart"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// RollPeriod zera o uso quando o mês corrente passou do início do período salvo
func (l *License) RollPeriod(now time.Time) bool {
	current := FirstDayOfMonth(now)
	if !current.After(l.PeriodStart) {
		return false
	}

	l.UsedRunsThisPeriod = 0
	l.PeriodStart = current
	return true
}

// RemainingRuns retorna UnlimitedRuns para licenças sem limite
func (l *License) RemainingRuns() int {
	if l.MaxRunsPerMonth == UnlimitedRuns {
		return UnlimitedRuns
	}

	remaining := l.MaxRunsPerMonth - l.UsedRunsThisPeriod
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ConsumeRuns aplica a política de cota mensal. O uso só é incrementado quando não há erro.
func (l *License) ConsumeRuns(requested int, trialBatchCap int, now time.Time) error {
	l.RollPeriod(now)

	if requested <= 0 {
		return nil
	}

	if l.Plan == LicensePlanTrial && requested > trialBatchCap {
		return ErrTrialBatchCapExceeded
	}

	if l.MaxRunsPerMonth != UnlimitedRuns && l.UsedRunsThisPeriod+requested > l.MaxRunsPerMonth {
		return ErrMonthlyQuotaExceeded
	}

	l.UsedRunsThisPeriod += requested
	return nil
}

// LicenseInfo é o resultado de uma verificação, como visto pelo cliente
type LicenseInfo struct {
	Valid            bool        `json:"valid"`
	Plan             LicensePlan `json:"plan,omitempty"`
	RemainingCredits int         `json:"remainingCredits"`
	RemainingRuns    int         `json:"remainingRuns"`
	CreditsPerRun    int         `json:"creditsPerRun"`
	CheckedAt        time.Time   `json:"-"`
}
