package config

import (
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
	Warehouse   Warehouse   `mapstructure:",squash"`
	Report      Report      `mapstructure:",squash"`
	SecretStore SecretStore `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	CacheWarmup CacheWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Warehouse agrupa o apontamento da view de vendas e a origem da credencial.
// Os nomes das colunas são configuração, não contrato fixo, porque a view de
// origem pode expor nomes em outro alfabeto ou idioma.
type Warehouse struct {
	// Documento de credencial inline (ONLY LOCAL)
	CredentialJSON string `mapstructure:"warehouse_credential_json"`
	// Caminho de um arquivo local com o documento de credencial
	CredentialFile string `mapstructure:"warehouse_credential_file"`
	// Nome do secret no secret store que contém o documento
	CredentialSecretName string `mapstructure:"warehouse_credential_secret_name"`

	// View totalmente qualificada consultada pelo dashboard
	View string `mapstructure:"warehouse_view"`

	ColumnMonth          string `mapstructure:"warehouse_column_month"`
	ColumnRepresentative string `mapstructure:"warehouse_column_representative"`
	ColumnSaleAmount     string `mapstructure:"warehouse_column_sale_amount"`
	ColumnGrossProfit    string `mapstructure:"warehouse_column_gross_profit"`
}

type Report struct {
	CacheTTLSeconds       int `mapstructure:"report_cache_ttl_seconds"`
	RetryMaxAttempts      int `mapstructure:"report_retry_max_attempts"`
	RetryBaseDelaySeconds int `mapstructure:"report_retry_base_delay_seconds"`
}

type SecretStore struct {
	BaseURL   string `mapstructure:"secret_store_base_url"`
	APIKey    string `mapstructure:"secret_store_api_key"`
	ServiceID string `mapstructure:"secret_store_service_id"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	AccessKeyHash string `mapstructure:"dashboard_access_key_hash"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

type CacheWarmup struct {
	CronSchedule string `mapstructure:"cache_warmup_cron"`
	Enabled      bool   `mapstructure:"cache_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("WAREHOUSE_CREDENTIAL_JSON", "")
	viper.SetDefault("WAREHOUSE_CREDENTIAL_FILE", "")
	viper.SetDefault("WAREHOUSE_CREDENTIAL_SECRET_NAME", "warehouse_service_account")

	viper.SetDefault("WAREHOUSE_VIEW", "analytics.sales_performance")
	viper.SetDefault("WAREHOUSE_COLUMN_MONTH", "sales_month")
	viper.SetDefault("WAREHOUSE_COLUMN_REPRESENTATIVE", "sales_rep")
	viper.SetDefault("WAREHOUSE_COLUMN_SALE_AMOUNT", "sale_amount")
	viper.SetDefault("WAREHOUSE_COLUMN_GROSS_PROFIT", "gross_profit")

	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 600) // 10 minutos de cache de dados
	viper.SetDefault("REPORT_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("REPORT_RETRY_BASE_DELAY_SECONDS", 2)

	viper.SetDefault("SECRET_STORE_BASE_URL", "https://api.render.com/v1")
	viper.SetDefault("SECRET_STORE_API_KEY", "")
	viper.SetDefault("SECRET_STORE_SERVICE_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("DASHBOARD_ACCESS_KEY_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 12)

	viper.SetDefault("CACHE_WARMUP_CRON", "*/10 * * * *")
	viper.SetDefault("CACHE_WARMUP_ENABLED", false)

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
