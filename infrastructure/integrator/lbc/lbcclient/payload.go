package lbcclient

import (
	"fmt"
	"math/rand"

	"github.com/vfg2006/lbc-republisher/internal/domain"
	"github.com/vfg2006/lbc-republisher/pkg/utils"
)

// CleanPayload transforma uma annonce consultada no corpo submissível de
// criação: copia os campos, injeta a tag de tracking e price_cents, e tira
// todos os campos read-only do servidor. Função pura, sem condições de erro.
func CleanPayload(listing domain.Listing, readOnlyFields []string) domain.SubmissionPayload {
	payload := make(domain.SubmissionPayload, len(listing)+2)
	for key, value := range listing {
		payload[key] = value
	}

	payload["tracking_dd"] = fmt.Sprintf("app:%d.%d", rand.Intn(1000), rand.Intn(10))

	if price, ok := listing.Price(); ok {
		payload["price_cents"] = utils.PriceCents(price)
	}

	for _, field := range readOnlyFields {
		delete(payload, field)
	}

	return payload
}
