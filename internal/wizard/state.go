package wizard

import (
	"errors"
	"fmt"
)

type State string

const (
	StateNotStarted             State = "NotStarted"
	StateAwaitingStep1Controls  State = "AwaitingStep1Controls"
	StateStep1Filled            State = "Step1Filled"
	StateAwaitingStep2          State = "AwaitingStep2"
	StateStep2ScopeChosen       State = "Step2ScopeChosen"
	StateAwaitingStep3          State = "AwaitingStep3"
	StateStep3Confirmed         State = "Step3Confirmed"
	StateAwaitingSuccessOverlay State = "AwaitingSuccessOverlay"
	StateDone                   State = "Done"
	StateFailed                 State = "Failed"
)

// Falhas que abortam a automação da promoção atual
var (
	ErrEntryPointNotFound = errors.New("create sale entry point not found")
	ErrContinueNotFound   = errors.New("continue button not found")
	ErrReviewNotFound     = errors.New("review button not found")
	ErrTimeout            = errors.New("timed out waiting for page element")
)

// FailedError registra em qual estado o assistente parou
type FailedError struct {
	State State
	Err   error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("assistente falhou em %s: %v", e.State, e.Err)
}

func (e *FailedError) Unwrap() error {
	return e.Err
}

// IsHardFailure indica uma falha que aborta só o dia atual do lote
func IsHardFailure(err error) bool {
	return errors.Is(err, ErrEntryPointNotFound) ||
		errors.Is(err, ErrContinueNotFound) ||
		errors.Is(err, ErrReviewNotFound) ||
		errors.Is(err, ErrTimeout)
}

// Report é o rastro de uma execução: estados visitados e degradações toleradas
type Report struct {
	Sale     string
	States   []State
	Warnings []string
}

func (r *Report) enter(state State) {
	r.States = append(r.States, state)
}

func (r *Report) warn(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Final devolve o último estado visitado
func (r *Report) Final() State {
	if len(r.States) == 0 {
		return StateNotStarted
	}
	return r.States[len(r.States)-1]
}
