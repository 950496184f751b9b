package license

import (
	"errors"
	"fmt"
)

var (
	ErrNoKeyConfigured      = errors.New("no license key set; run `dailysale set-key <key>` first")
	ErrLicenseInvalid       = errors.New("license is invalid or disabled")
	ErrInsufficientCredits  = errors.New("not enough credits; please refill to continue")
	ErrNetworkOrServer      = errors.New("license check failed: network or server error")
	ErrInvalidRequestedRuns = errors.New("requested runs must be zero or positive")
)

// CheckError carrega a mensagem do servidor e o saldo informado na recusa
type CheckError struct {
	Err              error
	Status           int
	Message          string
	RemainingCredits *int
	RemainingRuns    *int
}

func (e *CheckError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// IsBatchAborting indica os erros que cancelam um lote inteiro antes de qualquer promoção
func IsBatchAborting(err error) bool {
	return errors.Is(err, ErrNoKeyConfigured) ||
		errors.Is(err, ErrLicenseInvalid) ||
		errors.Is(err, ErrInsufficientCredits) ||
		errors.Is(err, ErrNetworkOrServer)
}
