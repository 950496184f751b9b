package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/internal/usecases/licensing"
	"github.com/vfg2006/dailysale/pkg/apiErrors"
	"github.com/vfg2006/dailysale/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxLicenseBodyBytes = 4 << 10

type CheckAndConsumeRequest struct {
	Key           string `json:"key"`
	RequestedRuns int    `json:"requestedRuns"`
}

// LicenseResponse é o corpo de check-and-consume, tanto no sucesso quanto na recusa
type LicenseResponse struct {
	Valid            bool               `json:"valid"`
	Message          string             `json:"message,omitempty"`
	Code             string             `json:"code,omitempty"`
	Plan             domain.LicensePlan `json:"plan,omitempty"`
	RemainingCredits *int               `json:"remainingCredits,omitempty"`
	RemainingRuns    *int               `json:"remainingRuns,omitempty"`
	CreditsPerRun    int                `json:"creditsPerRun,omitempty"`
}

// Mensagens exibidas ao usuário pela extensão
var licenseMessages = []struct {
	err     error
	message string
}{
	{licensing.ErrMissingKey, "License key is required."},
	{licensing.ErrInvalidRequestedRuns, "requestedRuns must be a non-negative integer."},
	{licensing.ErrLicenseNotFoundOrInactive, "License is invalid or inactive."},
	{licensing.ErrLicenseNotLinked, "License is not linked to a user."},
	{licensing.ErrInsufficientCredits, "Not enough credits. Please refill to continue."},
	{licensing.ErrQuotaExceeded, "Monthly run limit reached for this license."},
	{licensing.ErrTrialBatchCap, "Trial licenses allow a limited number of days per batch."},
}

const serverErrorMessage = "Server error while checking license."

func CheckAndConsume(service licensing.Licenser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CheckAndConsumeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLicenseBodyBytes)).Decode(&req); err != nil {
			apiErrors.WriteJSON(w, http.StatusBadRequest, LicenseResponse{
				Valid:   false,
				Message: "Invalid request body.",
				Code:    apiErrors.ErrInvalidFormat,
			})
			return
		}

		result, err := service.CheckAndConsume(r.Context(), req.Key, req.RequestedRuns)
		if err != nil {
			writeLicenseError(w, err)
			return
		}

		remainingCredits := result.RemainingCredits
		remainingRuns := result.RemainingRuns

		logger.WithField("remaining_runs", remainingRuns).Debug("check-and-consume respondido")

		apiErrors.WriteJSON(w, http.StatusOK, LicenseResponse{
			Valid:            true,
			Plan:             result.Plan,
			RemainingCredits: &remainingCredits,
			RemainingRuns:    &remainingRuns,
			CreditsPerRun:    result.CreditsPerRun,
		})
	}
}

func writeLicenseError(w http.ResponseWriter, err error) {
	var licErr *licensing.LicenseError
	if !errors.As(err, &licErr) || !(licensing.IsRejection(err) || licensing.IsValidationError(err)) {
		logrus.WithError(err).Error("Erro ao verificar licença")
		apiErrors.WriteJSON(w, http.StatusInternalServerError, LicenseResponse{
			Valid:   false,
			Message: serverErrorMessage,
			Code:    apiErrors.ErrInternalServer,
		})
		return
	}

	message := serverErrorMessage
	for _, m := range licenseMessages {
		if errors.Is(err, m.err) {
			message = m.message
			break
		}
	}

	apiErrors.WriteJSON(w, apiErrors.StatusFor(licErr.Code), LicenseResponse{
		Valid:            false,
		Message:          message,
		Code:             licErr.Code,
		RemainingCredits: licErr.RemainingCredits,
		RemainingRuns:    licErr.RemainingRuns,
	})
}
