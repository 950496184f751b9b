package domain

import "time"

type UserPlan string

const (
	UserPlanFree UserPlan = "free"
	UserPlanFull UserPlan = "full"
)

type User struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	Plan       UserPlan  `json:"plan"`
	LicenseKey *string   `json:"license_key"`
	Credits    int       `json:"credits"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LicensePlanFor mapeia o plano do usuário para o plano e limite mensal da licença
func LicensePlanFor(plan UserPlan) (LicensePlan, int) {
	if plan == UserPlanFull {
		return LicensePlanPro, UnlimitedRuns
	}
	return LicensePlanTrial, DefaultTrialRunsPerMonth
}

// ConsumeResult é a resposta de check-and-consume
type ConsumeResult struct {
	Plan             LicensePlan
	RemainingCredits int
	RemainingRuns    int
	CreditsPerRun    int
}
