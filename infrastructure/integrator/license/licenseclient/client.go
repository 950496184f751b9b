package licenseclient

import (
	"context"
	"net/http"
	"time"

	licensedomain "github.com/vfg2006/dailysale/infrastructure/integrator/license/domain"
	"github.com/vfg2006/dailysale/internal/config"
)

type Client interface {
	// CheckAndConsume devolve a resposta decodificada e o status HTTP. Status 0 indica falha de rede.
	CheckAndConsume(ctx context.Context, req licensedomain.CheckRequest) (*licensedomain.CheckResponse, int, error)
}

type LicenseClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.Client) Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &LicenseClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.LicenseAPIURL,
	}
}
