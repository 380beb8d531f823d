package republishing

import (
	"errors"
	"fmt"
)

// Erros específicos do fluxo de republicação
var (
	// ErrRepublishInProgress indica que já existe uma execução em andamento
	// para a mesma annonce; a segunda invocação é recusada sem chamada de rede.
	ErrRepublishInProgress = errors.New("une republication est déjà en cours pour cette annonce")
)

// ValidationError indica um preço inválido digitado pelo usuário. Fatal para
// a execução atual, recuperável relançando o comando.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prix invalide %q: veuillez entrer un nombre positif", e.Input)
}

// RepublishError é um erro com o contexto da etapa em que o fluxo falhou
type RepublishError struct {
	Err    error  // Erro base
	Step   string // Etapa em que o fluxo falhou
	ListID string // Annonce original envolvida
}

// Error implementa a interface error
func (e *RepublishError) Error() string {
	return fmt.Sprintf("étape %s (annonce %s): %s", e.Step, e.ListID, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *RepublishError) Unwrap() error {
	return e.Err
}

// NewRepublishError cria um novo erro de republicação
func NewRepublishError(err error, step, listID string) *RepublishError {
	return &RepublishError{
		Err:    err,
		Step:   step,
		ListID: listID,
	}
}
