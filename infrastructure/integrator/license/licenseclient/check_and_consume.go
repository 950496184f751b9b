package licenseclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	licensedomain "github.com/vfg2006/dailysale/infrastructure/integrator/license/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxResponseBytes = 64 << 10

func (c *LicenseClient) CheckAndConsume(ctx context.Context, req licensedomain.CheckRequest) (*licensedomain.CheckResponse, int, error) {
	endpoint, err := url.JoinPath(c.baseURL, "check-and-consume")
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	// Recusas também trazem corpo JSON; um corpo ilegível só é erro no sucesso
	var response licensedomain.CheckResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil, resp.StatusCode, fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}
		return &licensedomain.CheckResponse{}, resp.StatusCode, nil
	}

	return &response, resp.StatusCode, nil
}
