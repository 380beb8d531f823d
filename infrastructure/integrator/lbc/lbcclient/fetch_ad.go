package lbcclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
	"github.com/vfg2006/lbc-republisher/internal/domain"
)

// FetchAd consulta os dados completos de uma annonce pelo list_id
func (c *LBCClient) FetchAd(ctx context.Context, auth *lbcauth.Context, listID string) (domain.Listing, error) {
	logrus.Infof("Consultando os dados da annonce %s...", listID)

	body, err := c.doRequest(ctx, "fetchAdData", http.MethodGet, c.cfg.AdDataURL(listID), auth.FetchHeaders(), nil)
	if err != nil {
		return nil, err
	}

	var listing domain.Listing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a annonce")
	}

	logrus.Debug("Dados da annonce consultados")
	return listing, nil
}
