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
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	Sheets                Sheets                `mapstructure:",squash"`
	Activity              Activity              `mapstructure:",squash"`
	ForecastRecalculation ForecastRecalculation `mapstructure:",squash"`
	SheetsSync            SheetsSync            `mapstructure:",squash"`
	SecretKey             string                `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

// Sheets configura o espelhamento dos pipelines na planilha do Google
type Sheets struct {
	Enabled         bool          `mapstructure:"sheets_enabled"`
	SpreadsheetID   string        `mapstructure:"sheets_spreadsheet_id"`
	SheetName       string        `mapstructure:"sheets_sheet_name"`
	CredentialsFile string        `mapstructure:"sheets_credentials_file"`
	CredentialsJSON string        `mapstructure:"sheets_credentials_json"`
	PushTimeout     time.Duration `mapstructure:"sheets_push_timeout"`
}

type Activity struct {
	// StatusLoggedByTrigger indica que a trigger do banco já registra as mudanças de status
	StatusLoggedByTrigger bool `mapstructure:"activity_status_logged_by_trigger"`
}

type ForecastRecalculation struct {
	CronSchedule      string `mapstructure:"forecast_recalculation_cron"`
	MaxConcurrentJobs int    `mapstructure:"forecast_recalculation_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"forecast_recalculation_enabled"`
}

type SheetsSync struct {
	CronSchedule       string `mapstructure:"sheets_sync_cron"`
	RequestDelayMillis int    `mapstructure:"sheets_sync_request_delay_millis"`
	Enabled            bool   `mapstructure:"sheets_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pipeline?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("APP_TIMEZONE", "Asia/Tokyo")

	// Planilha desabilitada por padrão, o serviço funciona sem credenciais do Google
	viper.SetDefault("SHEETS_ENABLED", false)
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_SHEET_NAME", "Pipeline")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("SHEETS_CREDENTIALS_JSON", "")
	viper.SetDefault("SHEETS_PUSH_TIMEOUT", "15s")

	viper.SetDefault("ACTIVITY_STATUS_LOGGED_BY_TRIGGER", true)

	viper.SetDefault("FORECAST_RECALCULATION_CRON", "0 2 * * *")      // Todos os dias às 2h da manhã
	viper.SetDefault("FORECAST_RECALCULATION_MAX_CONCURRENT_JOBS", 4) // 4 pipelines recalculados em paralelo
	viper.SetDefault("FORECAST_RECALCULATION_ENABLED", false)         // Habilitar recálculo noturno

	viper.SetDefault("SHEETS_SYNC_CRON", "30 2 * * *")          // Todos os dias às 2h30 da manhã
	viper.SetDefault("SHEETS_SYNC_REQUEST_DELAY_MILLIS", 1100) // Respeita a cota de escrita da API do Sheets
	viper.SetDefault("SHEETS_SYNC_ENABLED", false)

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

	if config.Auth.Secret == "" {
		config.Auth.Secret = config.SecretKey
	}

	if config.Sheets.Enabled && config.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("SHEETS_SPREADSHEET_ID é obrigatório quando SHEETS_ENABLED=true")
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

// Location retorna o fuso horário usado para resolver "hoje" no cálculo do trimestre
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido %q, usando horário local: %v", c.App.Timezone, err)
		return time.Local
	}

	return loc
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
