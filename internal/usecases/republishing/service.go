package republishing

import (
	"context"
	"strconv"
	"strings"

	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcclient"
	"github.com/vfg2006/lbc-republisher/internal/config"
	"github.com/vfg2006/lbc-republisher/internal/presentation"
	"github.com/vfg2006/lbc-republisher/pkg/log"
	"github.com/vfg2006/lbc-republisher/pkg/telemetry"
	"github.com/vfg2006/lbc-republisher/pkg/utils"
)

// Republisher orquestra o fluxo completo de republicação de uma annonce
type Republisher interface {
	Republish(ctx context.Context, listID string) (*Result, error)
}

// AuthProvider deriva o contexto de autenticação de uma execução
type AuthProvider interface {
	NewContext() (*lbcauth.Context, error)
}

// Result é o desfecho de uma execução. AdID fica preenchido sempre que a
// nova annonce foi publicada, inclusive quando a exclusão da antiga falhou
// depois (as duas coexistem até a limpeza manual).
type Result struct {
	State State
	AdID  int64
	Step  string
	RunID string
}

type Service struct {
	client    lbcclient.Client
	auth      AuthProvider
	prompter  presentation.Prompter
	notifier  presentation.Notifier
	telemetry telemetry.Reporter
	cfg       *config.Config
	locks     *lockRegistry
}

func NewService(
	client lbcclient.Client,
	auth AuthProvider,
	prompter presentation.Prompter,
	notifier presentation.Notifier,
	reporter telemetry.Reporter,
	cfg *config.Config,
) Republisher {
	return &Service{
		client:    client,
		auth:      auth,
		prompter:  prompter,
		notifier:  notifier,
		telemetry: reporter,
		cfg:       cfg,
		locks:     newLockRegistry(),
	}
}

// Republish executa a cadeia fetch → preço → confirmação → criação →
// pricing → publicação → exclusão. A nova annonce é criada e publicada
// ANTES de excluir a antiga: em caso de falha no meio, o usuário nunca fica
// com zero annonces no ar.
func (s *Service) Republish(ctx context.Context, listID string) (*Result, error) {
	if !s.locks.Acquire(listID) {
		return nil, ErrRepublishInProgress
	}
	defer s.locks.Release(listID)

	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id":  runID,
		"list_id": listID,
	})

	result := &Result{State: StateIdle, RunID: runID}

	logger.Info("Iniciando a republicação da annonce")
	s.telemetry.ReportEvent("Starting republish process", telemetry.LevelInfo, s.eventContext(runID, listID, ""))

	// O contexto de autenticação é derivado uma única vez por execução;
	// token ausente aborta antes de qualquer chamada de rede.
	auth, err := s.auth.NewContext()
	if err != nil {
		return s.fail(ctx, result, listID, StepAuth, err)
	}

	s.notifier.Show(presentation.NotifLoading, "Chargement des données...")

	result.State = StateFetching
	listing, err := s.client.FetchAd(ctx, auth, listID)
	if err != nil {
		return s.fail(ctx, result, listID, StepFetch, err)
	}
	s.notifier.Clear(presentation.NotifLoading)

	result.State = StateAwaitingPriceInput
	currentPrice, hasPrice := listing.Price()
	input, ok := s.prompter.PromptPrice(currentPrice)
	if !ok {
		return s.cancel(ctx, result, runID, listID, "Republish cancelled by user")
	}

	newPrice, apply, err := resolvePrice(currentPrice, hasPrice, input)
	if err != nil {
		return s.fail(ctx, result, listID, StepPrice, err)
	}

	// Annonce sem preço numérico ("sur demande") segue intacta quando o
	// usuário não digita nada: o price_cents original é repassado tal e qual
	updated := listing
	if apply {
		updated = listing.WithPrice(newPrice)
	}

	result.State = StateAwaitingConfirmation
	if !s.prompter.ConfirmRepublish(updated.Summary()) {
		return s.cancel(ctx, result, runID, listID, "Republish cancelled by user confirmation")
	}

	s.notifier.Show(presentation.NotifPublishing, "Publication de la nouvelle annonce...")

	result.State = StateCreatingDraft
	payload := lbcclient.CleanPayload(updated, s.cfg.ReadOnlyFields)
	draft, err := s.client.CreateDraft(ctx, auth, payload)
	if err != nil {
		return s.fail(ctx, result, listID, StepCreate, err)
	}

	result.State = StatePricingDraft
	pricingID, err := s.client.FetchPricingID(ctx, auth, draft, updated.CategoryID())
	if err != nil {
		return s.fail(ctx, result, listID, StepPricing, err)
	}

	result.State = StatePublishing
	if err := s.client.PublishAd(ctx, auth, updated.AdType(), draft, pricingID); err != nil {
		return s.fail(ctx, result, listID, StepPublish, err)
	}
	result.AdID = draft.AdID
	s.notifier.Clear(presentation.NotifPublishing)

	logger.WithField("ad_id", draft.AdID).Info("Nova annonce publicada")
	s.telemetry.ReportEvent("Successfully created ad", telemetry.LevelInfo, s.eventContext(runID, listID, ""))

	s.notifier.Show(presentation.NotifDeleting, "Suppression de l'ancienne annonce...")

	result.State = StateDeleting
	if err := s.client.DeleteAd(ctx, auth, listID); err != nil {
		// A nova annonce já está no ar: nenhum rollback. O resultado mantém
		// o ad_id novo para a limpeza manual da duplicata.
		return s.fail(ctx, result, listID, StepDelete, err)
	}
	s.notifier.Clear(presentation.NotifDeleting)

	result.State = StateCompleted
	s.notifier.Success(result.AdID)

	logger.Info("Republicação concluída com sucesso")
	s.telemetry.ReportEvent("Republish completed successfully", telemetry.LevelInfo, s.eventContext(runID, listID, ""))

	// Ressincroniza a visão do painel depois do atraso fixo
	s.notifier.ScheduleReload(s.cfg.Delays.PageReload)

	return result, nil
}

// resolvePrice aplica a regra da porta de preço: vazio mantém o atual, e só
// reescreve o campo quando a annonce tem um preço numérico; qualquer entrada
// não numérica ou não positiva é um ValidationError.
func resolvePrice(current float64, hasPrice bool, input string) (float64, bool, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return current, hasPrice, nil
	}

	// Usuários franceses digitam vírgula decimal
	normalized := strings.ReplaceAll(input, ",", ".")

	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil || price <= 0 {
		return 0, false, &ValidationError{Input: input}
	}

	return price, true, nil
}

func (s *Service) fail(ctx context.Context, result *Result, listID, step string, err error) (*Result, error) {
	result.State = StateFailed
	result.Step = step

	wrapped := NewRepublishError(err, step, listID)

	log.ForContext(ctx).WithError(err).WithFields(log.Fields{
		"run_id":  result.RunID,
		"list_id": listID,
		"step":    step,
	}).Error("Falha na republicação")
	s.telemetry.ReportError(wrapped, s.eventContext(result.RunID, listID, step))

	// Limpa as notificações de progresso antes de exibir o erro para não
	// sobrepor estados na tela
	s.notifier.Clear(presentation.NotifLoading, presentation.NotifPublishing, presentation.NotifDeleting)
	s.notifier.Error(err.Error())

	return result, wrapped
}

// cancel encerra o fluxo sem erro: o cancelamento do usuário não é falha
func (s *Service) cancel(ctx context.Context, result *Result, runID, listID, reason string) (*Result, error) {
	result.State = StateCancelled

	log.ForContext(ctx).WithFields(log.Fields{
		"run_id":  runID,
		"list_id": listID,
	}).Info("Republicação cancelada pelo usuário")
	s.telemetry.ReportEvent(reason, telemetry.LevelInfo, s.eventContext(runID, listID, ""))

	s.notifier.Clear(presentation.NotifLoading, presentation.NotifPublishing, presentation.NotifDeleting)

	return result, nil
}

func (s *Service) eventContext(runID, listID, step string) map[string]interface{} {
	context := map[string]interface{}{
		"action":  "handleRepublish",
		"run_id":  runID,
		"list_id": listID,
	}
	if step != "" {
		context["step"] = step
	}
	return context
}
