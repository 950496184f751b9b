package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dailysale/internal/api/handler/router"
	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/internal/usecases/licensing"
	"github.com/vfg2006/dailysale/internal/usecases/licensing/mocks"
	"github.com/vfg2006/dailysale/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestCheckAndConsume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockLicenser(ctrl)
	rt := router.New(router.WithRoutes(License(service)...))

	tests := []struct {
		name           string
		body           string
		setup          func()
		expectedStatus int
		validate       func(t *testing.T, body map[string]any)
	}{
		{
			name: "Sucesso devolve saldo e plano",
			body: `{"key":"AAA-BBB-CCC","requestedRuns":2}`,
			setup: func() {
				service.EXPECT().
					CheckAndConsume(gomock.Any(), "AAA-BBB-CCC", 2).
					Return(&domain.ConsumeResult{
						Plan:             domain.LicensePlanPro,
						RemainingCredits: 0,
						RemainingRuns:    0,
						CreditsPerRun:    1,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["valid"])
				assert.Equal(t, "pro", body["plan"])
				assert.Equal(t, float64(0), body["remainingCredits"])
				assert.Equal(t, float64(0), body["remainingRuns"])
				assert.Equal(t, float64(1), body["creditsPerRun"])
				assert.NotContains(t, body, "message")
			},
		},
		{
			name: "Chave ausente responde 400",
			body: `{"requestedRuns":1}`,
			setup: func() {
				service.EXPECT().
					CheckAndConsume(gomock.Any(), "", 1).
					Return(nil, licensing.NewLicenseError(licensing.ErrMissingKey, apiErrors.ErrMissingRequiredData))
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["valid"])
				assert.Equal(t, "License key is required.", body["message"])
			},
		},
		{
			name: "Falta de créditos responde 403 com saldo",
			body: `{"key":"AAA-BBB-CCC","requestedRuns":3}`,
			setup: func() {
				service.EXPECT().
					CheckAndConsume(gomock.Any(), "AAA-BBB-CCC", 3).
					Return(nil, licensing.NewBalanceError(licensing.ErrInsufficientCredits, apiErrors.ErrInsufficientCredits, 2, 2))
			},
			expectedStatus: http.StatusForbidden,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["valid"])
				assert.Equal(t, "Not enough credits. Please refill to continue.", body["message"])
				assert.Equal(t, apiErrors.ErrInsufficientCredits, body["code"])
				assert.Equal(t, float64(2), body["remainingCredits"])
				assert.Equal(t, float64(2), body["remainingRuns"])
			},
		},
		{
			name: "Licença inativa responde 403 sem saldo",
			body: `{"key":"AAA-BBB-CCC","requestedRuns":0}`,
			setup: func() {
				service.EXPECT().
					CheckAndConsume(gomock.Any(), "AAA-BBB-CCC", 0).
					Return(nil, licensing.NewLicenseError(licensing.ErrLicenseNotFoundOrInactive, apiErrors.ErrLicenseNotFoundOrInactive))
			},
			expectedStatus: http.StatusForbidden,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "License is invalid or inactive.", body["message"])
				assert.NotContains(t, body, "remainingCredits")
			},
		},
		{
			name: "Licença sem usuário responde 403",
			body: `{"key":"AAA-BBB-CCC","requestedRuns":1}`,
			setup: func() {
				service.EXPECT().
					CheckAndConsume(gomock.Any(), "AAA-BBB-CCC", 1).
					Return(nil, licensing.NewLicenseError(licensing.ErrLicenseNotLinked, apiErrors.ErrLicenseNotLinked))
			},
			expectedStatus: http.StatusForbidden,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "License is not linked to a user.", body["message"])
			},
		},
		{
			name: "Erro inesperado responde 500",
			body: `{"key":"AAA-BBB-CCC","requestedRuns":1}`,
			setup: func() {
				service.EXPECT().
					CheckAndConsume(gomock.Any(), "AAA-BBB-CCC", 1).
					Return(nil, errors.New("pânico no banco"))
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["valid"])
				assert.Equal(t, "Server error while checking license.", body["message"])
			},
		},
		{
			name:           "Corpo inválido responde 400 sem chamar o serviço",
			body:           `{"key":`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["valid"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, "/api/license/check-and-consume", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			tt.validate(t, body)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
