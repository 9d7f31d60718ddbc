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

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	RowStore   RowStore   `mapstructure:",squash"`
	Reporting  Reporting  `mapstructure:",squash"`
	Shopify    Shopify    `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	AppsScript AppsScript `mapstructure:",squash"`
	Sync       Sync       `mapstructure:",squash"`
	HourlySync HourlySync `mapstructure:",squash"`
	Google     Google     `mapstructure:",squash"`
	GA4        GA4        `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string `mapstructure:"-"`
	Driver          string `mapstructure:"database_driver"`
	Password        string `mapstructure:"database_password"`
	URL             string `mapstructure:"database_url"`
	User            string `mapstructure:"database_user"`
	SSLMode         string `mapstructure:"database_sslmode"`
	AutoMigrate     bool   `mapstructure:"database_auto_migrate"`
	HourlyTable     string `mapstructure:"hourly_table"`
	OrdersTable     string `mapstructure:"orders_table"`
	OrderLinesTable string `mapstructure:"order_lines_table"`
}

type RowStore struct {
	PageSize int `mapstructure:"row_store_page_size"`
	MaxPages int `mapstructure:"row_store_max_pages"`
}

type Reporting struct {
	Timezone           string  `mapstructure:"reporting_timezone"`
	MonthlySalesTarget float64 `mapstructure:"monthly_sales_target"`
	TargetMultiplier   float64 `mapstructure:"sales_target_multiplier"`
}

type Shopify struct {
	StoreDomain            string `mapstructure:"shopify_store_domain"`
	AccessToken            string `mapstructure:"shopify_access_token"`
	APIVersion             string `mapstructure:"shopify_api_version"`
	AnalyticsAPIVersion    string `mapstructure:"shopify_analytics_api_version"`
	QueryCacheTTLMs        int    `mapstructure:"shopifyql_cache_ttl_ms"`
	AccessScopesCacheTTLMs int    `mapstructure:"shopify_access_scopes_cache_ttl_ms"`
	OrdersMaxPages         int    `mapstructure:"shopify_orders_max_pages"`
}

type Cache struct {
	RedisURL  string `mapstructure:"redis_url"`
	KeyPrefix string `mapstructure:"redis_key_prefix"`
}

type AppsScript struct {
	URL string `mapstructure:"apps_script_url"`
}

type Sync struct {
	Days            int `mapstructure:"sync_days"`
	UpsertChunkSize int `mapstructure:"sync_upsert_chunk_size"`
}

type HourlySync struct {
	CronSchedule string `mapstructure:"hourly_sync_cron"`
	Enabled      bool   `mapstructure:"hourly_sync_enabled"`
}

type Google struct {
	ClientID             string `mapstructure:"google_oauth_client_id"`
	ClientSecret         string `mapstructure:"google_oauth_client_secret"`
	RedirectURI          string `mapstructure:"google_oauth_redirect_uri"`
	Scopes               string `mapstructure:"google_oauth_scopes"`
	CalendarID           string `mapstructure:"google_calendar_id"`
	CalendarRefreshToken string `mapstructure:"google_calendar_refresh_token"`
}

type GA4 struct {
	PropertyID      string `mapstructure:"ga4_property_id"`
	CredentialsJSON string `mapstructure:"ga4_credentials_json"`
	CredentialsFile string `mapstructure:"ga4_credentials_file"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8787)
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)
	viper.SetDefault("HOURLY_TABLE", "hourly_metrics")
	viper.SetDefault("ORDERS_TABLE", "shopify_orders")
	viper.SetDefault("ORDER_LINES_TABLE", "shopify_order_lines")

	viper.SetDefault("ROW_STORE_PAGE_SIZE", 1000)
	viper.SetDefault("ROW_STORE_MAX_PAGES", 200)

	viper.SetDefault("REPORTING_TIMEZONE", "UTC")
	viper.SetDefault("MONTHLY_SALES_TARGET", 0)
	viper.SetDefault("SALES_TARGET_MULTIPLIER", 1)

	viper.SetDefault("SHOPIFY_STORE_DOMAIN", "")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "")
	viper.SetDefault("SHOPIFY_API_VERSION", "2024-10")
	viper.SetDefault("SHOPIFY_ANALYTICS_API_VERSION", "2025-10")
	viper.SetDefault("SHOPIFYQL_CACHE_TTL_MS", 60000)
	viper.SetDefault("SHOPIFY_ACCESS_SCOPES_CACHE_TTL_MS", 300000)
	viper.SetDefault("SHOPIFY_ORDERS_MAX_PAGES", 120)

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_KEY_PREFIX", "dashboard:")

	viper.SetDefault("APPS_SCRIPT_URL", "")

	viper.SetDefault("SYNC_DAYS", 90)
	viper.SetDefault("SYNC_UPSERT_CHUNK_SIZE", 500)

	viper.SetDefault("HOURLY_SYNC_CRON", "5 * * * *") // Cinco minutos após cada hora
	viper.SetDefault("HOURLY_SYNC_ENABLED", false)

	viper.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_OAUTH_REDIRECT_URI", "")
	viper.SetDefault("GOOGLE_OAUTH_SCOPES", "https://www.googleapis.com/auth/calendar.readonly")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_CALENDAR_REFRESH_TOKEN", "")

	viper.SetDefault("GA4_PROPERTY_ID", "")
	viper.SetDefault("GA4_CREDENTIALS_JSON", "")
	viper.SetDefault("GA4_CREDENTIALS_FILE", "")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

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

	config.normalize()

	return config, nil
}

// normalize aplica os limites documentados e deriva campos calculados
func (c *Config) normalize() {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
		c.Database.SSLMode,
	)

	c.RowStore.PageSize = clamp(c.RowStore.PageSize, 1, 5000, 1000)
	c.RowStore.MaxPages = clamp(c.RowStore.MaxPages, 1, 5000, 200)

	c.Sync.Days = clamp(c.Sync.Days, 7, 365, 90)
	if c.Sync.UpsertChunkSize <= 0 {
		c.Sync.UpsertChunkSize = 500
	}

	c.Shopify.StoreDomain = strings.TrimSpace(c.Shopify.StoreDomain)
	c.Shopify.AccessToken = strings.TrimSpace(c.Shopify.AccessToken)
	if c.Shopify.OrdersMaxPages <= 0 {
		c.Shopify.OrdersMaxPages = 120
	}

	if c.Reporting.TargetMultiplier <= 0 {
		c.Reporting.TargetMultiplier = 1
	}

	if strings.TrimSpace(c.Google.CalendarID) == "" {
		c.Google.CalendarID = "primary"
	}

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
}

// QueryCacheTTL respeita o mínimo de 5 segundos
func (s Shopify) QueryCacheTTL() time.Duration {
	return max(5*time.Second, time.Duration(s.QueryCacheTTLMs)*time.Millisecond)
}

// AccessScopesCacheTTL respeita o mínimo de 60 segundos
func (s Shopify) AccessScopesCacheTTL() time.Duration {
	return max(60*time.Second, time.Duration(s.AccessScopesCacheTTLMs)*time.Millisecond)
}

func (s Shopify) IsConfigured() bool {
	return s.StoreDomain != "" && s.AccessToken != ""
}

func (g Google) IsConfigured() bool {
	return strings.TrimSpace(g.ClientID) != "" && strings.TrimSpace(g.ClientSecret) != ""
}

func (g Google) ScopeList() []string {
	return strings.Fields(strings.ReplaceAll(g.Scopes, ",", " "))
}

func (g GA4) IsConfigured() bool {
	return g.PropertyID != "" && (g.CredentialsJSON != "" || g.CredentialsFile != "")
}

// clamp trata zero como "não informado" e usa o padrão
func clamp(v, lo, hi, fallback int) int {
	if v == 0 {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
