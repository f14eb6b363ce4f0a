package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Google           Google           `mapstructure:",squash"`
	Optimizer        Optimizer        `mapstructure:",squash"`
	OptimizationSync OptimizationSync `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	Version        string        `mapstructure:"meta_version"`
	URL            string        `mapstructure:"-"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
	CampaignLimit  int           `mapstructure:"meta_campaign_limit"`
}

type Google struct {
	ServiceAccountPath    string `mapstructure:"google_application_credentials"`
	TemplateSpreadsheetID string `mapstructure:"google_template_spreadsheet_id"`
	PerformanceRange      string `mapstructure:"google_performance_range"`
	ResourcesRange        string `mapstructure:"google_resources_range"`
}

// Optimizer carrega as regras padrão de orçamento, sobrescritas por organização
type Optimizer struct {
	IncreaseThreshold  float64 `mapstructure:"optimizer_increase_threshold"`
	DecreaseThreshold  float64 `mapstructure:"optimizer_decrease_threshold"`
	IncreasePercentage float64 `mapstructure:"optimizer_increase_percentage"`
	DecreasePercentage float64 `mapstructure:"optimizer_decrease_percentage"`
	CostPerLead        float64 `mapstructure:"optimizer_cost_per_lead"`
	DryRun             bool    `mapstructure:"optimizer_dry_run"`
}

func (o Optimizer) BudgetRules() domain.BudgetRules {
	return domain.BudgetRules{
		IncreaseThreshold:  o.IncreaseThreshold,
		DecreaseThreshold:  o.DecreaseThreshold,
		IncreasePercentage: o.IncreasePercentage,
		DecreasePercentage: o.DecreasePercentage,
		CostPerLead:        o.CostPerLead,
	}
}

type OptimizationSync struct {
	CronSchedule      string `mapstructure:"optimization_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"optimization_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"optimization_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/unify?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("META_CAMPAIGN_LIMIT", 50)

	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "service_account.json")
	viper.SetDefault("GOOGLE_TEMPLATE_SPREADSHEET_ID", "1-nQ74vat4JXexflJdjQlMOIgymQHyvTMjLrBkdZXIGo")
	viper.SetDefault("GOOGLE_PERFORMANCE_RANGE", "Feuille 1!A1:Z10")
	viper.SetDefault("GOOGLE_RESOURCES_RANGE", "Ressources Sales!A1:C10")

	defaults := domain.DefaultBudgetRules()
	viper.SetDefault("OPTIMIZER_INCREASE_THRESHOLD", defaults.IncreaseThreshold)
	viper.SetDefault("OPTIMIZER_DECREASE_THRESHOLD", defaults.DecreaseThreshold)
	viper.SetDefault("OPTIMIZER_INCREASE_PERCENTAGE", defaults.IncreasePercentage)
	viper.SetDefault("OPTIMIZER_DECREASE_PERCENTAGE", defaults.DecreasePercentage)
	viper.SetDefault("OPTIMIZER_COST_PER_LEAD", defaults.CostPerLead)
	viper.SetDefault("OPTIMIZER_DRY_RUN", true)

	viper.SetDefault("OPTIMIZATION_SYNC_CRON", "0 7 * * *")      // Todos os dias às 7h
	viper.SetDefault("OPTIMIZATION_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 organizações em paralelo
	viper.SetDefault("OPTIMIZATION_SYNC_ENABLED", false)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	if err := config.Optimizer.BudgetRules().Validate(); err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
