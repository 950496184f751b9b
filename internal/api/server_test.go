package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/internal/usecases/licensing/mocks"
	"go.uber.org/mock/gomock"
)

func TestServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	licenser := mocks.NewMockLicenser(ctrl)
	licenser.EXPECT().
		CheckAndConsume(gomock.Any(), "AAA-BBB-CCC", 0).
		Return(&domain.ConsumeResult{Plan: domain.LicensePlanPro, RemainingCredits: 4, RemainingRuns: 4, CreditsPerRun: 1}, nil)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"https://dailysale.app"}},
	}
	srv, err := New(cfg, licenser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/license/check-and-consume", strings.NewReader(`{"key":"AAA-BBB-CCC","requestedRuns":0}`))
	req.Header.Set("Origin", "https://dailysale.app")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://dailysale.app", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"remainingRuns":4`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
