package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Sheets      Sheets      `mapstructure:",squash"`
	OpenAI      OpenAI      `mapstructure:",squash"`
	CatalogSync CatalogSync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Sheets configura a planilha pública consultada como fonte secundária.
type Sheets struct {
	BaseURL       string `mapstructure:"sheets_base_url"`
	SpreadsheetID string `mapstructure:"sheets_spreadsheet_id"`
	Range         string `mapstructure:"sheets_range"`
}

// OpenAI configura a chamada de análise de criativos. Sem APIKey, o serviço
// de análise usa apenas a simulação determinística.
type OpenAI struct {
	URL         string  `mapstructure:"openai_url"`
	APIKey      string  `mapstructure:"openai_api_key"`
	Model       string  `mapstructure:"openai_model"`
	MaxTokens   int     `mapstructure:"openai_max_tokens"`
	Temperature float64 `mapstructure:"openai_temperature"`
}

// CatalogSync configura a sincronização periódica planilha -> banco.
type CatalogSync struct {
	CronSchedule string `mapstructure:"catalog_sync_cron"`
	Enabled      bool   `mapstructure:"catalog_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creatives")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHEETS_BASE_URL", "https://docs.google.com/spreadsheets")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "1mpo44BpnGFR2hrcwi8uOKd3H_qtQqN3LS4zRtCnyDR0")
	viper.SetDefault("SHEETS_RANGE", "SPY FB!A:D")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("OPENAI_API_KEY", "") // Vazio: análise simulada
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("OPENAI_MAX_TOKENS", 500)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)

	viper.SetDefault("CATALOG_SYNC_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
