package republishing

import (
	"context"
	"os"
	"testing"

	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lbcdomain "github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/domain"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
	clientmocks "github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcclient/mocks"
	"github.com/vfg2006/lbc-republisher/internal/config"
	"github.com/vfg2006/lbc-republisher/internal/domain"
	presentationmocks "github.com/vfg2006/lbc-republisher/internal/presentation/mocks"
	"github.com/vfg2006/lbc-republisher/pkg/log"
	telemetrymocks "github.com/vfg2006/lbc-republisher/pkg/telemetry/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type stubAuthProvider struct {
	auth *lbcauth.Context
	err  error
}

func (s *stubAuthProvider) NewContext() (*lbcauth.Context, error) {
	return s.auth, s.err
}

type serviceFixture struct {
	client   *clientmocks.MockClient
	prompter *presentationmocks.MockPrompter
	notifier *presentationmocks.MockNotifier
	reporter *telemetrymocks.MockReporter
	auth     *lbcauth.Context
	service  *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		ReadOnlyFields: []string{
			"list_id",
			"ad_id",
			"first_publication_date",
			"index_date",
			"status",
			"url",
			"price",
		},
	}

	f := &serviceFixture{
		client:   clientmocks.NewMockClient(ctrl),
		prompter: presentationmocks.NewMockPrompter(ctrl),
		notifier: presentationmocks.NewMockNotifier(ctrl),
		reporter: telemetrymocks.NewMockReporter(ctrl),
		auth:     lbcauth.NewContext(cfg, "token-123", "visitor-abc"),
	}

	// As notificações de progresso e os eventos de telemetria não são o
	// objeto desses testes; só as chamadas mutantes e os erros são estritos
	f.notifier.EXPECT().Show(gomock.Any(), gomock.Any()).AnyTimes()
	f.notifier.EXPECT().Clear(gomock.Any()).AnyTimes()
	f.reporter.EXPECT().ReportEvent(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	f.service = NewService(f.client, &stubAuthProvider{auth: f.auth}, f.prompter, f.notifier, f.reporter, cfg).(*Service)

	return f
}

func testListing() domain.Listing {
	return domain.Listing{
		"list_id":       "123",
		"subject":       "Vélo de course",
		"price":         float64(100),
		"price_cents":   "10000",
		"category_id":   "5",
		"category_name": "Vélos",
		"ad_type":       "offer",
	}
}

func TestRepublish_Success(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft := &domain.DraftReference{AdID: 999, ActionID: 2}

	var payload domain.SubmissionPayload

	gomock.InOrder(
		f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil),
		f.prompter.EXPECT().PromptPrice(float64(100)).Return("", true),
		f.prompter.EXPECT().ConfirmRepublish(domain.Summary{
			Subject:      "Vélo de course",
			Price:        100,
			CategoryName: "Vélos",
		}).Return(true),
		f.client.EXPECT().CreateDraft(ctx, f.auth, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *lbcauth.Context, p domain.SubmissionPayload) (*domain.DraftReference, error) {
				payload = p
				return draft, nil
			}),
		f.client.EXPECT().FetchPricingID(ctx, f.auth, draft, "5").Return("pr-42", nil),
		f.client.EXPECT().PublishAd(ctx, f.auth, "offer", draft, "pr-42").Return(nil),
		f.client.EXPECT().DeleteAd(ctx, f.auth, "123").Return(nil),
	)

	f.notifier.EXPECT().Success(int64(999))
	f.notifier.EXPECT().ScheduleReload(gomock.Any())

	result, err := f.service.Republish(ctx, "123")

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.Equal(t, int64(999), result.AdID)
	assert.True(t, result.State.Terminal())

	// O payload de criação nunca repete um campo read-only do servidor
	assert.NotContains(t, payload, "list_id")
	assert.NotContains(t, payload, "price")
	assert.Equal(t, "10000", payload["price_cents"])
}

func TestRepublish_NewPriceApplied(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft := &domain.DraftReference{AdID: 999, ActionID: 1}

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil)
	f.prompter.EXPECT().PromptPrice(float64(100)).Return("150", true)
	f.prompter.EXPECT().ConfirmRepublish(gomock.Any()).DoAndReturn(func(summary domain.Summary) bool {
		assert.Equal(t, float64(150), summary.Price)
		return true
	})
	f.client.EXPECT().CreateDraft(ctx, f.auth, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *lbcauth.Context, p domain.SubmissionPayload) (*domain.DraftReference, error) {
			assert.Equal(t, "15000", p["price_cents"])
			return draft, nil
		})
	f.client.EXPECT().FetchPricingID(ctx, f.auth, draft, "5").Return("pr-42", nil)
	f.client.EXPECT().PublishAd(ctx, f.auth, "offer", draft, "pr-42").Return(nil)
	f.client.EXPECT().DeleteAd(ctx, f.auth, "123").Return(nil)
	f.notifier.EXPECT().Success(int64(999))
	f.notifier.EXPECT().ScheduleReload(gomock.Any())

	_, err := f.service.Republish(ctx, "123")
	require.NoError(t, err)
}

func TestRepublish_NonNumericPricePassthrough(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	// Annonce "sur demande": sem preço numérico, mas com price_cents
	listing := testListing()
	listing["price"] = "sur demande"
	listing["price_cents"] = "12300"

	draft := &domain.DraftReference{AdID: 999, ActionID: 1}

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(listing, nil)
	f.prompter.EXPECT().PromptPrice(float64(0)).Return("", true)
	f.prompter.EXPECT().ConfirmRepublish(gomock.Any()).Return(true)
	f.client.EXPECT().CreateDraft(ctx, f.auth, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *lbcauth.Context, p domain.SubmissionPayload) (*domain.DraftReference, error) {
			// O price_cents original é repassado tal e qual, sem ser
			// recalculado a partir de um preço zerado
			assert.Equal(t, "12300", p["price_cents"])
			assert.NotContains(t, p, "price")
			return draft, nil
		})
	f.client.EXPECT().FetchPricingID(ctx, f.auth, draft, "5").Return("pr-42", nil)
	f.client.EXPECT().PublishAd(ctx, f.auth, "offer", draft, "pr-42").Return(nil)
	f.client.EXPECT().DeleteAd(ctx, f.auth, "123").Return(nil)
	f.notifier.EXPECT().Success(int64(999))
	f.notifier.EXPECT().ScheduleReload(gomock.Any())

	_, err := f.service.Republish(ctx, "123")
	require.NoError(t, err)
}

func TestRepublish_InvalidPrice(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil)
	f.prompter.EXPECT().PromptPrice(float64(100)).Return("abc", true)

	f.reporter.EXPECT().ReportError(gomock.Any(), gomock.Any())
	f.notifier.EXPECT().Error(gomock.Any())

	result, err := f.service.Republish(ctx, "123")

	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, StepPrice, result.Step)

	validationErr := &ValidationError{}
	assert.ErrorAs(t, err, &validationErr)
}

func TestRepublish_CancelledAtPrice(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil)
	f.prompter.EXPECT().PromptPrice(float64(100)).Return("", false)

	result, err := f.service.Republish(ctx, "123")

	require.NoError(t, err)
	assert.Equal(t, StateCancelled, result.State)
	assert.Zero(t, result.AdID)
}

func TestRepublish_CancelledAtConfirmation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil)
	f.prompter.EXPECT().PromptPrice(float64(100)).Return("", true)
	f.prompter.EXPECT().ConfirmRepublish(gomock.Any()).Return(false)

	result, err := f.service.Republish(ctx, "123")

	require.NoError(t, err)
	assert.Equal(t, StateCancelled, result.State)
}

func TestRepublish_AuthTokenMissing(t *testing.T) {
	f := newServiceFixture(t)
	f.service.auth = &stubAuthProvider{err: lbcauth.ErrTokenNotFound}

	f.reporter.EXPECT().ReportError(gomock.Any(), gomock.Any())
	f.notifier.EXPECT().Error(gomock.Any())

	result, err := f.service.Republish(context.Background(), "123")

	require.Error(t, err)
	assert.ErrorIs(t, err, lbcauth.ErrTokenNotFound)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, StepAuth, result.Step)
}

func TestRepublish_CreateDraftFails(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	protocolErr := &lbcdomain.ProtocolError{Action: "createAdDraft", Field: "ad_id"}

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil)
	f.prompter.EXPECT().PromptPrice(float64(100)).Return("", true)
	f.prompter.EXPECT().ConfirmRepublish(gomock.Any()).Return(true)
	f.client.EXPECT().CreateDraft(ctx, f.auth, gomock.Any()).Return(nil, protocolErr)

	f.reporter.EXPECT().ReportError(gomock.Any(), gomock.Any())
	f.notifier.EXPECT().Error(gomock.Any())

	result, err := f.service.Republish(ctx, "123")

	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, StepCreate, result.Step)
	// Nada foi publicado nem excluído; a annonce original segue intacta
	assert.Zero(t, result.AdID)

	republishErr := &RepublishError{}
	require.ErrorAs(t, err, &republishErr)
	assert.Equal(t, "123", republishErr.ListID)
}

func TestRepublish_DeleteFailsAfterPublish(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft := &domain.DraftReference{AdID: 999, ActionID: 2}
	httpErr := lbcdomain.NewHTTPError("deleteAd", 500, []byte("oops"))

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil)
	f.prompter.EXPECT().PromptPrice(float64(100)).Return("", true)
	f.prompter.EXPECT().ConfirmRepublish(gomock.Any()).Return(true)
	f.client.EXPECT().CreateDraft(ctx, f.auth, gomock.Any()).Return(draft, nil)
	f.client.EXPECT().FetchPricingID(ctx, f.auth, draft, "5").Return("pr-42", nil)
	f.client.EXPECT().PublishAd(ctx, f.auth, "offer", draft, "pr-42").Return(nil)
	f.client.EXPECT().DeleteAd(ctx, f.auth, "123").Return(httpErr)

	f.reporter.EXPECT().ReportError(gomock.Any(), gomock.Any())
	f.notifier.EXPECT().Error(gomock.Any())

	result, err := f.service.Republish(ctx, "123")

	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, StepDelete, result.Step)

	// A nova annonce já está no ar: o resultado mantém o ad_id para a
	// limpeza manual da duplicata
	assert.Equal(t, int64(999), result.AdID)
	assert.ErrorIs(t, err, httpErr)
}

func TestRepublish_AlreadyInProgress(t *testing.T) {
	f := newServiceFixture(t)

	require.True(t, f.service.locks.Acquire("123"))
	defer f.service.locks.Release("123")

	result, err := f.service.Republish(context.Background(), "123")

	assert.ErrorIs(t, err, ErrRepublishInProgress)
	assert.Nil(t, result)
}

func TestRepublish_LogsCorrelationID(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	f := newServiceFixture(t)
	ctx, correlationID := log.WithCorrelationID(context.Background())

	f.client.EXPECT().FetchAd(ctx, f.auth, "123").Return(testListing(), nil)
	f.prompter.EXPECT().PromptPrice(float64(100)).Return("", false)

	_, err := f.service.Republish(ctx, "123")
	require.NoError(t, err)

	found := false
	for _, entry := range hook.AllEntries() {
		if entry.Data["correlation_id"] == correlationID {
			found = true
			break
		}
	}
	assert.True(t, found, "o correlation_id do contexto deve aparecer nos logs do fluxo")
}

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		hasPrice  bool
		input     string
		expected  float64
		wantApply bool
		wantError bool
	}{
		{name: "vazio mantém o preço atual", current: 100, hasPrice: true, input: "", expected: 100, wantApply: true},
		{name: "espaços são vazio", current: 100, hasPrice: true, input: "  ", expected: 100, wantApply: true},
		{name: "vazio sem preço numérico não reescreve", hasPrice: false, input: "", wantApply: false},
		{name: "novo preço", current: 100, hasPrice: true, input: "150", expected: 150, wantApply: true},
		{name: "novo preço sem preço numérico", hasPrice: false, input: "150", expected: 150, wantApply: true},
		{name: "decimal com ponto", current: 100, hasPrice: true, input: "89.5", expected: 89.5, wantApply: true},
		{name: "vírgula decimal francesa", current: 100, hasPrice: true, input: "89,50", expected: 89.5, wantApply: true},
		{name: "não numérico", current: 100, hasPrice: true, input: "abc", wantError: true},
		{name: "zero", current: 100, hasPrice: true, input: "0", wantError: true},
		{name: "negativo", current: 100, hasPrice: true, input: "-5", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, apply, err := resolvePrice(tt.current, tt.hasPrice, tt.input)

			if tt.wantError {
				validationErr := &ValidationError{}
				assert.ErrorAs(t, err, &validationErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantApply, apply)
			if tt.wantApply {
				assert.Equal(t, tt.expected, price)
			}
		})
	}
}
