package license

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	licensedomain "github.com/vfg2006/dailysale/infrastructure/integrator/license/domain"
	"github.com/vfg2006/dailysale/infrastructure/integrator/license/licenseclient"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type staticKey string

func (k staticKey) LoadLicenseKey(context.Context) (string, error) {
	return string(k), nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// licenseServer responde com status e corpo fixos e conta as chamadas
func licenseServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/api/license/check-and-consume", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req licensedomain.CheckRequest
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &req))
		assert.Equal(t, "AAA-BBB-CCC", req.Key)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newService(url string, key string, clock *fakeClock) *LicenseService {
	client := licenseclient.NewClient(config.Client{LicenseAPIURL: url + "/api/license", HTTPTimeout: 2 * time.Second})
	return New(client, staticKey(key), WithClock(clock.Now))
}

func TestLicenseService_CheckLicense(t *testing.T) {
	start := time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		key      string
		status   int
		body     string
		runs     int
		validate func(t *testing.T, info *domain.LicenseInfo, err error, calls int32)
	}{
		{
			name:   "Sucesso devolve o saldo",
			key:    "AAA-BBB-CCC",
			status: http.StatusOK,
			body:   `{"valid":true,"plan":"pro","remainingCredits":8,"remainingRuns":4,"creditsPerRun":2}`,
			runs:   1,
			validate: func(t *testing.T, info *domain.LicenseInfo, err error, calls int32) {
				require.NoError(t, err)
				assert.True(t, info.Valid)
				assert.Equal(t, domain.LicensePlanPro, info.Plan)
				assert.Equal(t, 8, info.RemainingCredits)
				assert.Equal(t, 4, info.RemainingRuns)
				assert.Equal(t, 2, info.CreditsPerRun)
				assert.Equal(t, int32(1), calls)
			},
		},
		{
			name: "Sem chave falha antes da rede",
			key:  "  ",
			runs: 0,
			validate: func(t *testing.T, info *domain.LicenseInfo, err error, calls int32) {
				assert.ErrorIs(t, err, ErrNoKeyConfigured)
				assert.Equal(t, int32(0), calls)
			},
		},
		{
			name:   "Falta de créditos vira InsufficientCredits",
			key:    "AAA-BBB-CCC",
			status: http.StatusForbidden,
			body:   `{"valid":false,"message":"Not enough credits. Please refill to continue.","code":"LIC_003","remainingCredits":2,"remainingRuns":2}`,
			runs:   3,
			validate: func(t *testing.T, info *domain.LicenseInfo, err error, calls int32) {
				assert.Nil(t, info)
				assert.ErrorIs(t, err, ErrInsufficientCredits)
				var checkErr *CheckError
				require.True(t, errors.As(err, &checkErr))
				require.NotNil(t, checkErr.RemainingCredits)
				assert.Equal(t, 2, *checkErr.RemainingCredits)
				assert.True(t, IsBatchAborting(err))
			},
		},
		{
			name:   "Licença inativa vira LicenseInvalid",
			key:    "AAA-BBB-CCC",
			status: http.StatusForbidden,
			body:   `{"valid":false,"message":"License is invalid or inactive.","code":"LIC_001"}`,
			runs:   1,
			validate: func(t *testing.T, info *domain.LicenseInfo, err error, calls int32) {
				assert.ErrorIs(t, err, ErrLicenseInvalid)
				assert.Contains(t, err.Error(), "License is invalid or inactive.")
			},
		},
		{
			name:   "Erro 500 vira NetworkOrServer",
			key:    "AAA-BBB-CCC",
			status: http.StatusInternalServerError,
			body:   `{"valid":false,"message":"Server error while checking license."}`,
			runs:   1,
			validate: func(t *testing.T, info *domain.LicenseInfo, err error, calls int32) {
				assert.ErrorIs(t, err, ErrNetworkOrServer)
			},
		},
		{
			name:   "Corpo ilegível no sucesso vira NetworkOrServer",
			key:    "AAA-BBB-CCC",
			status: http.StatusOK,
			body:   `<html>`,
			runs:   1,
			validate: func(t *testing.T, info *domain.LicenseInfo, err error, calls int32) {
				assert.ErrorIs(t, err, ErrNetworkOrServer)
			},
		},
		{
			name:   "Campos ausentes usam os padrões",
			key:    "AAA-BBB-CCC",
			status: http.StatusOK,
			body:   `{"valid":true}`,
			runs:   0,
			validate: func(t *testing.T, info *domain.LicenseInfo, err error, calls int32) {
				require.NoError(t, err)
				assert.Equal(t, 0, info.RemainingRuns)
				assert.Equal(t, 1, info.CreditsPerRun)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := licenseServer(t, tt.status, tt.body, &calls)
			svc := newService(srv.URL, tt.key, &fakeClock{now: start})

			info, err := svc.CheckLicense(context.Background(), tt.runs)
			tt.validate(t, info, err, atomic.LoadInt32(&calls))
		})
	}
}

func TestLicenseService_CacheOnlyForStatusChecks(t *testing.T) {
	var calls int32
	srv := licenseServer(t, http.StatusOK, `{"valid":true,"plan":"pro","remainingCredits":5,"remainingRuns":5,"creditsPerRun":1}`, &calls)
	clock := &fakeClock{now: time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC)}
	svc := newService(srv.URL, "AAA-BBB-CCC", clock)

	_, err := svc.CheckLicense(context.Background(), 0)
	require.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Second)
	_, err = svc.CheckLicense(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "duas consultas em 60s fazem uma chamada")

	_, err = svc.CheckLicense(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "consumo sempre vai ao servidor")

	clock.now = clock.now.Add(61 * time.Second)
	_, err = svc.CheckLicense(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "cache expirado")

	svc.Invalidate()
	_, err = svc.CheckLicense(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestLicenseService_CachedInvalidFailsWithoutNetwork(t *testing.T) {
	var calls int32
	srv := licenseServer(t, http.StatusOK, `{"valid":false,"message":"disabled"}`, &calls)
	clock := &fakeClock{now: time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC)}
	svc := newService(srv.URL, "AAA-BBB-CCC", clock)

	_, err := svc.CheckLicense(context.Background(), 0)
	assert.ErrorIs(t, err, ErrLicenseInvalid)

	clock.now = clock.now.Add(10 * time.Second)
	_, err = svc.CheckLicense(context.Background(), 0)
	assert.ErrorIs(t, err, ErrLicenseInvalid)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLicenseService_RejectionIsNotCached(t *testing.T) {
	var calls int32
	srv := licenseServer(t, http.StatusForbidden, `{"valid":false,"message":"License is invalid or inactive."}`, &calls)
	svc := newService(srv.URL, "AAA-BBB-CCC", &fakeClock{now: time.Now()})

	_, err := svc.CheckLicense(context.Background(), 0)
	assert.ErrorIs(t, err, ErrLicenseInvalid)
	_, err = svc.CheckLicense(context.Background(), 0)
	assert.ErrorIs(t, err, ErrLicenseInvalid)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLicenseService_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	svc := newService(url, "AAA-BBB-CCC", &fakeClock{now: time.Now()})
	_, err := svc.CheckLicense(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNetworkOrServer)
}
