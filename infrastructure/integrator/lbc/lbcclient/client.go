package lbcclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	lbcdomain "github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/domain"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
	"github.com/vfg2006/lbc-republisher/internal/config"
	"github.com/vfg2006/lbc-republisher/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o gateway para os cinco endpoints privados do leboncoin usados
// pelo fluxo de republicação. O gateway normaliza respostas não-2xx em
// HTTPError e nunca faz retry por conta própria.
type Client interface {
	FetchAd(ctx context.Context, auth *lbcauth.Context, listID string) (domain.Listing, error)
	DeleteAd(ctx context.Context, auth *lbcauth.Context, listID string) error
	CreateDraft(ctx context.Context, auth *lbcauth.Context, payload domain.SubmissionPayload) (*domain.DraftReference, error)
	FetchPricingID(ctx context.Context, auth *lbcauth.Context, draft *domain.DraftReference, categoryID string) (string, error)
	PublishAd(ctx context.Context, auth *lbcauth.Context, adType string, draft *domain.DraftReference, pricingID string) error
}

type LBCClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &LBCClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

// doRequest executa uma chamada e devolve o corpo quando a resposta é 2xx
func (c *LBCClient) doRequest(ctx context.Context, action, method, url string, headers map[string]string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao codificar o corpo de %s", action)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar a requisição de %s", action)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar a requisição de %s", action)
	}
	defer resp.Body.Close()

	return handleResponse(action, resp)
}

// handleResponse normaliza qualquer não-2xx em HTTPError, guardando a ação
// e o corpo bruto para diagnóstico.
func handleResponse(action string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a resposta de %s", action)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, lbcdomain.NewHTTPError(action, resp.StatusCode, body)
	}

	return body, nil
}
