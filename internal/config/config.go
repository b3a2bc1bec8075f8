package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultUpstreamURL é o endpoint de vendas da API do Mindbody
const DefaultUpstreamURL = "https://api.mindbodyonline.com/public/v6/sale/sales"

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Upstream      Upstream      `mapstructure:",squash"`
	FanOut        FanOut        `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	Metrics       Metrics       `mapstructure:",squash"`
	UpstreamProbe UpstreamProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Upstream struct {
	URL           string        `mapstructure:"upstream_url"`
	Timeout       time.Duration `mapstructure:"upstream_timeout"`
	DefaultLimit  int           `mapstructure:"upstream_default_limit"`
	DefaultOffset int           `mapstructure:"upstream_default_offset"`
}

// FanOut controla o paralelismo das chamadas por dia. Zero significa sem limite.
type FanOut struct {
	MaxConcurrency int `mapstructure:"fanout_max_concurrency"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Metrics struct {
	Enabled   bool   `mapstructure:"metrics_enabled"`
	Namespace string `mapstructure:"metrics_namespace"`
}

type UpstreamProbe struct {
	CronSchedule string `mapstructure:"upstream_probe_cron"`
	Enabled      bool   `mapstructure:"upstream_probe_enabled"`
	APIKey       string `mapstructure:"upstream_probe_api_key"`
	SiteID       string `mapstructure:"upstream_probe_site_id"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("UPSTREAM_URL", DefaultUpstreamURL)
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")
	viper.SetDefault("UPSTREAM_DEFAULT_LIMIT", 200)
	viper.SetDefault("UPSTREAM_DEFAULT_OFFSET", 0)

	viper.SetDefault("FANOUT_MAX_CONCURRENCY", 0) // sem limite

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_NAMESPACE", "sales_proxy")

	viper.SetDefault("UPSTREAM_PROBE_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("UPSTREAM_PROBE_ENABLED", false)
	viper.SetDefault("UPSTREAM_PROBE_API_KEY", "")
	viper.SetDefault("UPSTREAM_PROBE_SITE_ID", "")
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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Upstream.DefaultLimit <= 0 {
		config.Upstream.DefaultLimit = 200
	}

	if config.Upstream.DefaultOffset < 0 {
		config.Upstream.DefaultOffset = 0
	}

	if config.FanOut.MaxConcurrency < 0 {
		config.FanOut.MaxConcurrency = 0
	}

	return config, nil
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
