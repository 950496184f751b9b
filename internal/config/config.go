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

const (
	LicenseModelCredits      = "credits"
	LicenseModelMonthlyQuota = "monthly_quota"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	License    License    `mapstructure:",squash"`
	QuotaReset QuotaReset `mapstructure:",squash"`
	Client     Client     `mapstructure:",squash"`
	Browser    Browser    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// License define o modelo de cobrança autoritativo do servidor.
// Apenas um modelo é aplicado por implantação.
type License struct {
	Model         string `mapstructure:"license_model"`
	CreditsPerRun int    `mapstructure:"credits_per_run"`
	TrialBatchCap int    `mapstructure:"trial_max_runs_per_batch"`
}

type QuotaReset struct {
	CronSchedule string `mapstructure:"quota_reset_cron"`
	Enabled      bool   `mapstructure:"quota_reset_enabled"`
}

// Client configura o executor local (cliente de licença e ledger)
type Client struct {
	LicenseAPIURL string        `mapstructure:"license_api_url"`
	HTTPTimeout   time.Duration `mapstructure:"license_http_timeout"`
	CacheTTL      time.Duration `mapstructure:"license_cache_ttl"`
	LedgerPath    string        `mapstructure:"ledger_path"`
}

type Browser struct {
	Headless         bool   `mapstructure:"browser_headless"`
	ProfilePath      string `mapstructure:"browser_profile_path"`
	Bin              string `mapstructure:"browser_bin"`
	SalesURL         string `mapstructure:"sales_url"`
	WizardConfigPath string `mapstructure:"wizard_config_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://dailysale.app")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dailysale?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("LICENSE_MODEL", LicenseModelCredits)
	viper.SetDefault("CREDITS_PER_RUN", 1)
	viper.SetDefault("TRIAL_MAX_RUNS_PER_BATCH", 3)

	// Só faz sentido com LICENSE_MODEL=monthly_quota
	viper.SetDefault("QUOTA_RESET_CRON", "0 0 1 * *") // Primeiro dia de cada mês à meia-noite
	viper.SetDefault("QUOTA_RESET_ENABLED", false)

	viper.SetDefault("LICENSE_API_URL", "https://api.dailysale.app/api/license")
	viper.SetDefault("LICENSE_HTTP_TIMEOUT", "15s")
	viper.SetDefault("LICENSE_CACHE_TTL", "60s")
	viper.SetDefault("LEDGER_PATH", defaultDataDir("ledger"))

	viper.SetDefault("BROWSER_HEADLESS", false)
	viper.SetDefault("BROWSER_PROFILE_PATH", defaultDataDir("browser-profile"))
	viper.SetDefault("BROWSER_BIN", "")
	viper.SetDefault("SALES_URL", "https://www.etsy.com/your/shops/me/sales-discounts")
	viper.SetDefault("WIZARD_CONFIG_PATH", defaultDataDir("wizard.yaml"))

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.validate(); err != nil {
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

func (c *Config) validate() error {
	switch c.License.Model {
	case LicenseModelCredits, LicenseModelMonthlyQuota:
	default:
		return fmt.Errorf("config: LICENSE_MODEL inválido %q (use %s ou %s)",
			c.License.Model, LicenseModelCredits, LicenseModelMonthlyQuota)
	}

	if c.License.CreditsPerRun <= 0 {
		logrus.Warnf("CREDITS_PER_RUN inválido (%d), usando 1", c.License.CreditsPerRun)
		c.License.CreditsPerRun = 1
	}

	if c.License.TrialBatchCap <= 0 {
		c.License.TrialBatchCap = 3
	}

	return nil
}

// defaultDataDir fica em ~/.dailysale; cai para o diretório atual se não houver home
func defaultDataDir(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".dailysale", name)
	}
	return filepath.Join(home, ".dailysale", name)
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
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
