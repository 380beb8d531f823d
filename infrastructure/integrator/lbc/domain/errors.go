package lbcdomain

import "fmt"

// HTTPError representa uma resposta não-2xx da API do leboncoin. Carrega a
// ação e o corpo bruto para diagnóstico; o fluxo nunca tenta de novo.
type HTTPError struct {
	Status int
	Action string
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("erreur %s: %d %s", e.Action, e.Status, e.Body)
}

// NewHTTPError cria um HTTPError a partir de uma resposta da API
func NewHTTPError(action string, status int, body []byte) *HTTPError {
	return &HTTPError{
		Status: status,
		Action: action,
		Body:   string(body),
	}
}

// ProtocolError indica que uma resposta 2xx veio sem um campo esperado,
// sinal de deriva do contrato (não documentado) da API.
type ProtocolError struct {
	Action string
	Field  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: campo %q ausente na resposta da API", e.Action, e.Field)
}
