package lbcauth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lbc-republisher/internal/config"
)

// ErrTokenNotFound indica que o cookie de sessão não existe no estado do
// navegador. Aborta o fluxo antes de qualquer chamada de rede.
var ErrTokenNotFound = errors.New("token d'authentification non trouvé")

// Provider deriva o contexto de autenticação de uma execução a partir do
// estado de cookies do navegador.
type Provider struct {
	cookies CookieStore
	cfg     *config.Config
}

func NewProvider(cfg *config.Config, cookies CookieStore) *Provider {
	return &Provider{
		cookies: cookies,
		cfg:     cfg,
	}
}

// Context carrega o token e o cabeçalho de experimento de uma execução.
// Derivado uma vez por fluxo, nunca mutado.
type Context struct {
	Token            string
	ExperimentHeader string

	cfg *config.Config
}

// Token lê o token de sessão; falha com ErrTokenNotFound quando ausente
func (p *Provider) AuthToken() (string, error) {
	token, ok := p.cookies.Get(p.cfg.Cookies.TokenName)
	if !ok || token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// NewContext monta o contexto de autenticação de uma execução
func (p *Provider) NewContext() (*Context, error) {
	token, err := p.AuthToken()
	if err != nil {
		return nil, err
	}

	warnIfExpired(token)

	visitorID, _ := p.cookies.Get(p.cfg.Cookies.VisitorName)

	return NewContext(p.cfg, token, visitorID), nil
}

// NewContext monta um contexto a partir de um token e do visitor id
func NewContext(cfg *config.Config, token, visitorID string) *Context {
	return &Context{
		Token:            token,
		ExperimentHeader: BuildExperimentHeader(visitorID),
		cfg:              cfg,
	}
}

type experimentData struct {
	Version          int    `json:"version"`
	RolloutVisitorID string `json:"rollout_visitor_id"`
}

// BuildExperimentHeader codifica o cabeçalho x-lbc-experiment usado pela API
// para roteamento de coorte A/B.
func BuildExperimentHeader(visitorID string) string {
	payload, _ := json.Marshal(experimentData{
		Version:          1,
		RolloutVisitorID: visitorID,
	})
	return base64.StdEncoding.EncodeToString(payload)
}

// FetchHeaders são os cabeçalhos da consulta de annonce
func (c *Context) FetchHeaders() map[string]string {
	return map[string]string{
		"accept":        c.cfg.Headers.Accept,
		"authorization": "Bearer " + c.Token,
		"content-type":  c.cfg.Headers.ContentType,
	}
}

// DeleteHeaders são os cabeçalhos da exclusão; único endpoint que exige a
// api_key fixa.
func (c *Context) DeleteHeaders() map[string]string {
	return map[string]string{
		"accept":        c.cfg.Headers.Accept,
		"api_key":       c.cfg.Headers.DeleteAPIKey,
		"authorization": "Bearer " + c.Token,
		"content-type":  c.cfg.Headers.ContentType,
		"origin":        c.cfg.Headers.Origin,
		"referer":       c.cfg.Referers.Deletion,
	}
}

// MutatingHeaders são os cabeçalhos de criação/pricing/publicação; o referer
// muda conforme a página correspondente do site.
func (c *Context) MutatingHeaders(referer string) map[string]string {
	return map[string]string{
		"accept":           c.cfg.Headers.Accept,
		"accept-language":  c.cfg.Headers.AcceptLanguage,
		"authorization":    "Bearer " + c.Token,
		"content-type":     c.cfg.Headers.ContentType,
		"origin":           c.cfg.Headers.Origin,
		"referer":          referer,
		"sec-fetch-dest":   "empty",
		"sec-fetch-mode":   "cors",
		"sec-fetch-site":   "same-site",
		"x-lbc-experiment": c.ExperimentHeader,
	}
}

// warnIfExpired inspeciona o token de sessão (um JWT) sem validar a
// assinatura, só para avisar cedo quando ele já expirou. A API continua
// sendo a autoridade; erros de parse são ignorados.
func warnIfExpired(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return
	}

	if expiresAt.Before(time.Now()) {
		logrus.Warnf("Token de sessão expirado desde %s; a API provavelmente vai recusar as chamadas",
			expiresAt.Format(time.RFC3339))
	}
}
