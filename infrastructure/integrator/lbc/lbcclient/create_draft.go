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

// CreateDraft cria o rascunho da nova annonce a partir do payload sanitizado
func (c *LBCClient) CreateDraft(ctx context.Context, auth *lbcauth.Context, payload domain.SubmissionPayload) (*domain.DraftReference, error) {
	logrus.Info("Etapa 1: criando o rascunho...")

	body, err := c.doRequest(ctx, "createAdDraft", http.MethodPost, c.cfg.CreateURL(), auth.MutatingHeaders(c.cfg.Referers.Deposit), payload)
	if err != nil {
		return nil, err
	}

	var response lbcdomain.CreateDraftResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de criação")
	}

	if response.AdID == 0 {
		return nil, &lbcdomain.ProtocolError{Action: "createAdDraft", Field: "ad_id"}
	}

	actionID := response.ActionID
	if actionID == 0 {
		// A API às vezes omite action_id; assumir 1 reproduz o comportamento
		// observado, mas pode mascarar uma deriva de contrato.
		logrus.Warnf("Resposta de criação sem action_id; assumindo %d", domain.DefaultActionID)
		actionID = domain.DefaultActionID
	}

	logrus.Debugf("Rascunho criado: ad_id=%d action_id=%d", response.AdID, actionID)

	return &domain.DraftReference{
		AdID:     response.AdID,
		ActionID: actionID,
	}, nil
}
