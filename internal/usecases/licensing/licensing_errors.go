package licensing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/dailysale/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrMissingKey           = errors.New("chave de licença ausente")
	ErrInvalidRequestedRuns = errors.New("requestedRuns deve ser um inteiro não negativo")

	// Recusas de licença
	ErrLicenseNotFoundOrInactive = errors.New("licença inexistente ou inativa")
	ErrLicenseNotLinked          = errors.New("licença não vinculada a um usuário")
	ErrInsufficientCredits       = errors.New("créditos insuficientes")
	ErrQuotaExceeded             = errors.New("cota mensal de execuções esgotada")
	ErrTrialBatchCap             = errors.New("lote acima do limite do plano trial")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// LicenseError carrega o código da API e, nas recusas por saldo, o saldo atual
type LicenseError struct {
	Err              error
	Code             string
	RemainingCredits *int
	RemainingRuns    *int
}

func (e *LicenseError) Error() string {
	return e.Err.Error()
}

func (e *LicenseError) Unwrap() error {
	return e.Err
}

func NewLicenseError(baseErr error, code string) *LicenseError {
	return &LicenseError{
		Err:  baseErr,
		Code: code,
	}
}

// NewBalanceError cria uma recusa que informa o saldo atual ao cliente
func NewBalanceError(baseErr error, code string, remainingCredits, remainingRuns int) *LicenseError {
	return &LicenseError{
		Err:              baseErr,
		Code:             code,
		RemainingCredits: &remainingCredits,
		RemainingRuns:    &remainingRuns,
	}
}

// IsRejection verifica se o erro é uma recusa de licença (403)
func IsRejection(err error) bool {
	return errors.Is(err, ErrLicenseNotFoundOrInactive) ||
		errors.Is(err, ErrLicenseNotLinked) ||
		errors.Is(err, ErrInsufficientCredits) ||
		errors.Is(err, ErrQuotaExceeded) ||
		errors.Is(err, ErrTrialBatchCap)
}

// IsValidationError verifica se o erro é corrigível pelo chamador (400)
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingKey) || errors.Is(err, ErrInvalidRequestedRuns)
}

func newDatabaseError(op string, err error) *LicenseError {
	return &LicenseError{
		Err:  fmt.Errorf("%w: %s: %v", ErrDatabaseOperation, op, err),
		Code: apiErrors.ErrDatabaseOperation,
	}
}
