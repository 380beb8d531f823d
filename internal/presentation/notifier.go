package presentation

import (
	"fmt"
	"io"
	"time"
)

// IDs das notificações de progresso; o fluxo limpa todas antes de exibir um
// erro para não sobrar estado de "em andamento" na tela.
const (
	NotifLoading    = "lbc-loading"
	NotifPublishing = "lbc-publishing"
	NotifDeleting   = "lbc-deleting"
)

// Notifier é o colaborador de notificações transitórias do fluxo
type Notifier interface {
	Show(id, message string)
	Clear(ids ...string)
	Success(adID int64)
	Error(message string)
	ScheduleReload(delay time.Duration)
}

// ConsoleNotifier escreve as notificações no terminal
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Show(id, message string) {
	fmt.Fprintf(n.out, "… %s\n", message)
}

// Clear não tem efeito no terminal: linhas já impressas não podem ser
// retiradas. O método existe para renderizações capazes de retirar uma
// notificação da tela.
func (n *ConsoleNotifier) Clear(ids ...string) {}

func (n *ConsoleNotifier) Success(adID int64) {
	fmt.Fprintf(n.out, "✓ Republication réussie: annonce #%d créée avec succès\n", adID)
}

func (n *ConsoleNotifier) Error(message string) {
	fmt.Fprintf(n.out, "✗ Erreur: %s\n", message)
}

// ScheduleReload é o equivalente do recarregamento da página do painel:
// espera o atraso fixo e avisa o usuário para atualizar a visão.
func (n *ConsoleNotifier) ScheduleReload(delay time.Duration) {
	time.Sleep(delay)
	fmt.Fprintln(n.out, "Actualisez votre tableau de bord pour voir la nouvelle annonce.")
}
