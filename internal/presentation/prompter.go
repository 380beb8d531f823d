package presentation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vfg2006/lbc-republisher/internal/domain"
)

// Prompter é o colaborador de entrada do usuário nas duas portas do fluxo:
// edição do preço e confirmação final. ok=false é o sinal de cancelamento.
type Prompter interface {
	PromptPrice(current float64) (input string, ok bool)
	ConfirmRepublish(summary domain.Summary) bool
}

// ConsolePrompter lê as respostas do terminal. Os textos exibidos são em
// francês: é a superfície do produto, voltada ao usuário do site.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// PromptPrice apresenta o preço atual e lê o novo. Linha vazia mantém o
// preço; "q" cancela o fluxo.
func (p *ConsolePrompter) PromptPrice(current float64) (string, bool) {
	fmt.Fprintf(p.out, "Prix actuel: %s €\n", formatPrice(current))
	fmt.Fprint(p.out, "Entrez le nouveau prix (en euros), laissez vide pour garder le prix actuel, ou 'q' pour annuler: ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return "", false
	}

	return line, true
}

// ConfirmRepublish apresenta o resumo e pede a confirmação final
func (p *ConsolePrompter) ConfirmRepublish(summary domain.Summary) bool {
	fmt.Fprintln(p.out, "Prêt à republier:")
	fmt.Fprintf(p.out, "  %s\n", summary.Subject)
	fmt.Fprintf(p.out, "  %s €\n", formatPrice(summary.Price))
	fmt.Fprintf(p.out, "  %s\n", summary.CategoryName)
	fmt.Fprint(p.out, "Lancer la republication automatique? [o/N] ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "o", "oui", "y", "yes":
		return true
	default:
		return false
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
