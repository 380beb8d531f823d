package lbcclient

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	lbcdomain "github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/domain"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
	"github.com/vfg2006/lbc-republisher/internal/domain"
)

// PublishAd publica o rascunho tarifado. Espera o atraso de pacing antes de
// chamar o endpoint: a API de submit é sensível ao ritmo das chamadas e esse
// atraso é comportamento obrigatório do contrato, não otimização.
func (c *LBCClient) PublishAd(ctx context.Context, auth *lbcauth.Context, adType string, draft *domain.DraftReference, pricingID string) error {
	logrus.Info("Etapa 3: publicando a annonce...")

	if err := c.waitBeforeSubmit(ctx); err != nil {
		return err
	}

	payload := lbcdomain.SubmitRequest{
		Ads: []lbcdomain.SubmitAd{
			{
				AdType:          adType,
				AdID:            draft.AdID,
				Options:         []string{},
				ActionID:        draft.ActionID,
				TransactionType: "new_ad",
			},
		},
		PricingID:   pricingID,
		UserJourney: "deposit",
	}

	_, err := c.doRequest(ctx, "publishAd", http.MethodPost, c.cfg.SubmitURL(), auth.MutatingHeaders(c.cfg.Referers.Options), payload)
	if err != nil {
		return err
	}

	logrus.Info("Annonce publicada")
	return nil
}

func (c *LBCClient) waitBeforeSubmit(ctx context.Context) error {
	delay := c.cfg.Delays.BeforeSubmit
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
