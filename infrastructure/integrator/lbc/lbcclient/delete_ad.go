package lbcclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	lbcdomain "github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/domain"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
)

// DeleteAd exclui uma annonce existente pelo list_id. Único endpoint do
// fluxo que exige a api_key fixa além do bearer.
func (c *LBCClient) DeleteAd(ctx context.Context, auth *lbcauth.Context, listID string) error {
	logrus.Infof("Excluindo a annonce %s...", listID)

	id, err := strconv.ParseInt(listID, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "list_id inválido: %s", listID)
	}

	payload := lbcdomain.DeleteRequest{
		ListIDs: []int64{id},
	}

	_, err = c.doRequest(ctx, "deleteAd", http.MethodDelete, c.cfg.DeleteURL(), auth.DeleteHeaders(), payload)
	if err != nil {
		return err
	}

	logrus.Info("Annonce excluída com sucesso")
	return nil
}
