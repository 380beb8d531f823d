package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Level é o nível de severidade de um evento de telemetria
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelFatal   Level = "fatal"
)

// Reporter é o colaborador de telemetria injetado no fluxo de republicação.
// O ciclo de vida pertence à aplicação hospedeira, não ao fluxo.
type Reporter interface {
	ReportError(err error, context map[string]interface{})
	ReportEvent(message string, level Level, context map[string]interface{})
	Flush(timeout time.Duration)
}

// SentryReporter envia erros e eventos para o Sentry
type SentryReporter struct {
	hub     *sentry.Hub
	version string
}

// NewSentryReporter cria o reporter do Sentry; devolve um NoopReporter
// quando o DSN está vazio.
func NewSentryReporter(dsn, environment, version string) (Reporter, error) {
	if dsn == "" {
		logrus.Debug("Telemetria desabilitada: SENTRY_DSN vazio")
		return NoopReporter{}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     version,
	})
	if err != nil {
		return nil, err
	}

	return &SentryReporter{
		hub:     sentry.NewHub(client, sentry.NewScope()),
		version: version,
	}, nil
}

func (r *SentryReporter) ReportError(err error, context map[string]interface{}) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		r.applyContext(scope, context)
		r.hub.CaptureException(err)
	})
}

func (r *SentryReporter) ReportEvent(message string, level Level, context map[string]interface{}) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.Level(level))
		r.applyContext(scope, context)
		r.hub.CaptureMessage(message)
	})
}

func (r *SentryReporter) Flush(timeout time.Duration) {
	r.hub.Flush(timeout)
}

func (r *SentryReporter) applyContext(scope *sentry.Scope, context map[string]interface{}) {
	extension := sentry.Context{
		"version": r.version,
	}
	for key, value := range context {
		extension[key] = value
	}
	scope.SetContext("republisher", extension)

	// A ação vira tag para facilitar a busca no painel
	if action, ok := context["action"].(string); ok {
		scope.SetTag("action", action)
	}
	if step, ok := context["step"].(string); ok {
		scope.SetTag("step", step)
	}
}

// NoopReporter descarta tudo; usado quando a telemetria está desabilitada
type NoopReporter struct{}

func (NoopReporter) ReportError(err error, context map[string]interface{}) {}

func (NoopReporter) ReportEvent(message string, level Level, context map[string]interface{}) {}

func (NoopReporter) Flush(timeout time.Duration) {}
