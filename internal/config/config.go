package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Modos de aquisição dos registros de vendas
const (
	SalesSourceModeStatic = "static"
	SalesSourceModeQuery  = "query"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	SalesSource         SalesSource         `mapstructure:",squash"`
	SalesSnapshotExport SalesSnapshotExport `mapstructure:",squash"`
	Cors                Cors                `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// SalesSource define de onde o dashboard obtém os agregados diários
type SalesSource struct {
	Mode           string        `mapstructure:"sales_source_mode"`
	StaticLocation string        `mapstructure:"sales_static_location"` // caminho local ou URL http(s)
	QueryURL       string        `mapstructure:"sales_query_url"`
	QueryPath      string        `mapstructure:"sales_query_path"`
	QueryToken     string        `mapstructure:"sales_query_token"`
	Timeout        time.Duration `mapstructure:"sales_source_timeout"`
}

type SalesSnapshotExport struct {
	CronSchedule string `mapstructure:"sales_snapshot_cron"`
	Path         string `mapstructure:"sales_snapshot_path"`
	Enabled      bool   `mapstructure:"sales_snapshot_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pos?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALES_SOURCE_MODE", SalesSourceModeQuery)
	viper.SetDefault("SALES_STATIC_LOCATION", "./salesData.json")
	viper.SetDefault("SALES_QUERY_URL", "http://localhost:8000")
	viper.SetDefault("SALES_QUERY_PATH", "/v1/sales/aggregates")
	viper.SetDefault("SALES_QUERY_TOKEN", "")
	viper.SetDefault("SALES_SOURCE_TIMEOUT", "30s")

	// Exportação do documento estático consumido pelo modo "static"
	viper.SetDefault("SALES_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SALES_SNAPSHOT_PATH", "./salesData.json")
	viper.SetDefault("SALES_SNAPSHOT_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
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

// Validate verifica as combinações de configuração que impedem o serviço de subir
func (c *Config) Validate() error {
	c.SalesSource.Mode = strings.ToLower(strings.TrimSpace(c.SalesSource.Mode))

	switch c.SalesSource.Mode {
	case SalesSourceModeStatic:
		if c.SalesSource.StaticLocation == "" {
			return fmt.Errorf("config: SALES_STATIC_LOCATION é obrigatório no modo %q", SalesSourceModeStatic)
		}
	case SalesSourceModeQuery:
		if c.SalesSource.QueryURL == "" {
			return fmt.Errorf("config: SALES_QUERY_URL é obrigatório no modo %q", SalesSourceModeQuery)
		}
	default:
		return fmt.Errorf("config: modo de origem de vendas inválido: %q", c.SalesSource.Mode)
	}

	if c.SalesSource.Timeout <= 0 {
		c.SalesSource.Timeout = 30 * time.Second
	}

	return nil
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
