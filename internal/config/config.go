package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	API       API       `mapstructure:",squash"`
	Headers   Headers   `mapstructure:",squash"`
	Referers  Referers  `mapstructure:",squash"`
	Cookies   Cookies   `mapstructure:",squash"`
	Delays    Delays    `mapstructure:",squash"`
	Telemetry Telemetry `mapstructure:",squash"`

	// Campos que o servidor preenche e que nunca podem voltar no payload
	// de criação de uma nova annonce.
	ReadOnlyFields []string `mapstructure:"-"`
}

type App struct {
	Version  string `mapstructure:"app_version"`
	LogLevel string `mapstructure:"log_level"`
}

type API struct {
	BaseURL     string `mapstructure:"lbc_api_base_url"`
	AdDataPath  string `mapstructure:"lbc_api_ad_data_path"`
	DeletePath  string `mapstructure:"lbc_api_delete_path"`
	CreatePath  string `mapstructure:"lbc_api_create_path"`
	PricingPath string `mapstructure:"lbc_api_pricing_path"`
	SubmitPath  string `mapstructure:"lbc_api_submit_path"`
}

type Headers struct {
	Accept         string `mapstructure:"lbc_header_accept"`
	AcceptLanguage string `mapstructure:"lbc_header_accept_language"`
	ContentType    string `mapstructure:"lbc_header_content_type"`
	Origin         string `mapstructure:"lbc_header_origin"`
	DeleteAPIKey   string `mapstructure:"lbc_delete_api_key"`
}

type Referers struct {
	Deposit  string `mapstructure:"lbc_referer_deposit"`
	Options  string `mapstructure:"lbc_referer_options"`
	Deletion string `mapstructure:"lbc_referer_deletion"`
}

type Cookies struct {
	// Caminho do arquivo de cookies exportado do navegador
	File        string `mapstructure:"lbc_cookie_file"`
	TokenName   string `mapstructure:"lbc_cookie_token_name"`
	VisitorName string `mapstructure:"lbc_cookie_visitor_name"`
}

type Delays struct {
	BeforeSubmit time.Duration `mapstructure:"delay_before_submit"`
	PageReload   time.Duration `mapstructure:"delay_page_reload"`
}

type Telemetry struct {
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"sentry_environment"`
}

func SetDefaults() {
	viper.SetDefault("APP_VERSION", "dev")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("LBC_API_BASE_URL", "https://api.leboncoin.fr")
	viper.SetDefault("LBC_API_AD_DATA_PATH", "/api/pintad/v1/public/manual/classified")
	viper.SetDefault("LBC_API_DELETE_PATH", "/api/pintad/v1/public/manual/delete/ads")
	viper.SetDefault("LBC_API_CREATE_PATH", "/api/adsubmit/v2/classifieds?with_variation=true")
	viper.SetDefault("LBC_API_PRICING_PATH", "/api/options/v4/pricing/classifieds")
	viper.SetDefault("LBC_API_SUBMIT_PATH", "/api/services/v4/submit")

	viper.SetDefault("LBC_HEADER_ACCEPT", "*/*")
	viper.SetDefault("LBC_HEADER_ACCEPT_LANGUAGE", "fr-FR,fr;q=0.9")
	viper.SetDefault("LBC_HEADER_CONTENT_TYPE", "application/json")
	viper.SetDefault("LBC_HEADER_ORIGIN", "https://www.leboncoin.fr")
	viper.SetDefault("LBC_DELETE_API_KEY", "ba0c2dad52b3ec")

	viper.SetDefault("LBC_REFERER_DEPOSIT", "https://www.leboncoin.fr/deposer-une-annonce")
	viper.SetDefault("LBC_REFERER_OPTIONS", "https://www.leboncoin.fr/deposer-une-annonce/options")
	viper.SetDefault("LBC_REFERER_DELETION", "https://www.leboncoin.fr/compte/mes-annonces/suppression")

	viper.SetDefault("LBC_COOKIE_FILE", "cookies.txt")
	viper.SetDefault("LBC_COOKIE_TOKEN_NAME", "luat")
	viper.SetDefault("LBC_COOKIE_VISITOR_NAME", "cnfdVisitorId")

	// A API de submit é sensível a rajadas; o atraso antes do submit é
	// comportamento obrigatório, não otimização.
	viper.SetDefault("DELAY_BEFORE_SUBMIT", "1s")
	viper.SetDefault("DELAY_PAGE_RELOAD", "3s")

	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_ENVIRONMENT", "production")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.ReadOnlyFields = []string{
		"list_id",
		"ad_id",
		"first_publication_date",
		"index_date",
		"status",
		"url",
		"price",
	}

	return config, nil
}

// AdDataURL monta a URL de consulta de uma annonce pelo list_id
func (c *Config) AdDataURL(listID string) string {
	return fmt.Sprintf("%s%s/%s", c.API.BaseURL, c.API.AdDataPath, listID)
}

func (c *Config) DeleteURL() string {
	return c.API.BaseURL + c.API.DeletePath
}

func (c *Config) CreateURL() string {
	return c.API.BaseURL + c.API.CreatePath
}

func (c *Config) PricingURL() string {
	return c.API.BaseURL + c.API.PricingPath
}

func (c *Config) SubmitURL() string {
	return c.API.BaseURL + c.API.SubmitPath
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
