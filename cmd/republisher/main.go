package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcauth"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcclient"
	"github.com/vfg2006/lbc-republisher/internal/config"
	"github.com/vfg2006/lbc-republisher/internal/presentation"
	"github.com/vfg2006/lbc-republisher/internal/usecases/republishing"
	"github.com/vfg2006/lbc-republisher/pkg/telemetry"
)

var (
	cfg      *config.Config
	reporter telemetry.Reporter
)

var rootCmd = &cobra.Command{
	Use:           "republisher",
	Short:         "Republication d'annonces leboncoin en une commande",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configureLogger()

		var err error
		cfg, err = config.NewConfig()
		if err != nil {
			return err
		}

		logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
		if err != nil {
			logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
			logLevel = logrus.InfoLevel
		}
		logrus.SetLevel(logLevel)

		reporter, err = telemetry.NewSentryReporter(cfg.Telemetry.SentryDSN, cfg.Telemetry.Environment, cfg.App.Version)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if reporter != nil {
			reporter.Flush(2 * time.Second)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// authProvider monta o provedor de autenticação a partir do arquivo de
// cookies exportado do navegador
func authProvider() *lbcauth.Provider {
	cookies := lbcauth.NewFileCookieStore(cfg.Cookies.File)
	return lbcauth.NewProvider(cfg, cookies)
}

// republisherService monta o grafo de dependências do fluxo de republicação
func republisherService() republishing.Republisher {
	client := lbcclient.NewClient(cfg)
	prompter := presentation.NewConsolePrompter(os.Stdin, os.Stdout)
	notifier := presentation.NewConsoleNotifier(os.Stdout)

	return republishing.NewService(client, authProvider(), prompter, notifier, reporter, cfg)
}
