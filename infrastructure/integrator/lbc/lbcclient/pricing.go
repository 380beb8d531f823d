package lbcclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	lbcdomain "github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/domain"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
	"github.com/vfg2006/lbc-republisher/internal/domain"
)

// FetchPricingID amarra o rascunho a um pacote de opções; o pricing_id
// devolvido é obrigatório para a publicação.
func (c *LBCClient) FetchPricingID(ctx context.Context, auth *lbcauth.Context, draft *domain.DraftReference, categoryID string) (string, error) {
	logrus.Info("Etapa 2: consultando o pricing_id...")

	payload := lbcdomain.PricingRequest{
		UserJourney: "deposit",
		PageName:    "option",
		Classifieds: []lbcdomain.PricingClassified{
			{
				AdID:     draft.AdID,
				Category: categoryID,
				ActionID: draft.ActionID,
			},
		},
		IsEditRefused: false,
	}

	body, err := c.doRequest(ctx, "fetchPricingId", http.MethodPost, c.cfg.PricingURL(), auth.MutatingHeaders(c.cfg.Referers.Options), payload)
	if err != nil {
		return "", err
	}

	var response lbcdomain.PricingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar a resposta de pricing")
	}

	if response.PricingID == "" {
		return "", &lbcdomain.ProtocolError{Action: "fetchPricingId", Field: "pricing_id"}
	}

	logrus.Debugf("Tarifação consultada: pricing_id=%s", response.PricingID)
	return response.PricingID, nil
}
