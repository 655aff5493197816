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

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ForecastSourceDatabase = "database"
	ForecastSourceCSV      = "csv"

	// AmountPolicyDropNegative mantém registros com valor zero e descarta negativos.
	AmountPolicyDropNegative = "drop-negative"
	// AmountPolicyPositiveOnly descarta qualquer registro com valor <= 0.
	AmountPolicyPositiveOnly = "positive-only"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	Gemini         Gemini         `mapstructure:",squash"`
	Forecast       Forecast       `mapstructure:",squash"`
	AlertGenerator AlertGenerator `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
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
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
	SSLMode  string `mapstructure:"database_sslmode"`
	// Path do arquivo quando o driver é sqlite (":memory:" para testes)
	Path string `mapstructure:"database_path"`
}

type Auth struct {
	Secret   string        `mapstructure:"jwt_secret"`
	TokenTTL time.Duration `mapstructure:"jwt_ttl"`
	Enabled  bool          `mapstructure:"auth_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Gemini struct {
	APIKey      string        `mapstructure:"gemini_api_key"`
	TextModel   string        `mapstructure:"gemini_text_model"`
	VisionModel string        `mapstructure:"gemini_vision_model"`
	Timeout     time.Duration `mapstructure:"gemini_timeout"`
}

type Forecast struct {
	Source       string `mapstructure:"forecast_source"`
	CSVPath      string `mapstructure:"sales_csv_path"`
	AmountPolicy string `mapstructure:"forecast_amount_policy"`
}

type AlertGenerator struct {
	Interval  time.Duration `mapstructure:"alert_generator_interval"`
	ImagesDir string        `mapstructure:"alert_images_dir"`
	MaxAlerts int           `mapstructure:"alert_max_alerts"`
	Enabled   bool          `mapstructure:"alert_generator_enabled"`
}

type Dashboard struct {
	CurrencyPrefix   string `mapstructure:"currency_prefix"`
	ExpiryWindowDays int    `mapstructure:"expiry_window_days"`
	Timezone         string `mapstructure:"timezone"`
}

// Location devolve o fuso configurado para o cálculo de "hoje". Fuso inválido cai para UTC.
func (d Dashboard) Location() *time.Location {
	if d.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", d.Timezone)
		return time.UTC
	}
	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/stockwise")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_PATH", "stockwise.db")

	viper.SetDefault("JWT_SECRET", "your_secret_key")
	viper.SetDefault("JWT_TTL", "1h")
	viper.SetDefault("AUTH_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_TEXT_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_VISION_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_TIMEOUT", "20s")

	viper.SetDefault("FORECAST_SOURCE", ForecastSourceDatabase)
	viper.SetDefault("SALES_CSV_PATH", "dataset/Sales Dataset.csv")
	viper.SetDefault("FORECAST_AMOUNT_POLICY", AmountPolicyDropNegative)

	viper.SetDefault("ALERT_GENERATOR_INTERVAL", "15s")
	viper.SetDefault("ALERT_IMAGES_DIR", "dataset/images")
	viper.SetDefault("ALERT_MAX_ALERTS", 10)
	viper.SetDefault("ALERT_GENERATOR_ENABLED", false)

	viper.SetDefault("CURRENCY_PREFIX", "R")
	viper.SetDefault("EXPIRY_WINDOW_DAYS", 7)
	viper.SetDefault("TIMEZONE", "Africa/Johannesburg")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	config := &Config{}
	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize valida combinações de valores e monta campos derivados.
func (c *Config) finalize() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverPostgres:
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s?sslmode=%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
			c.Database.SSLMode,
		)
	case DriverSQLite:
		c.Database.DSN = c.Database.Path
	default:
		return fmt.Errorf("driver de banco não suportado: %q", c.Database.Driver)
	}

	switch c.Forecast.Source {
	case ForecastSourceDatabase, ForecastSourceCSV:
	default:
		return fmt.Errorf("fonte de previsão inválida: %q", c.Forecast.Source)
	}

	switch c.Forecast.AmountPolicy {
	case AmountPolicyDropNegative, AmountPolicyPositiveOnly:
	default:
		return fmt.Errorf("política de valores inválida: %q", c.Forecast.AmountPolicy)
	}

	if c.AlertGenerator.MaxAlerts <= 0 {
		c.AlertGenerator.MaxAlerts = 10
	}

	origins := c.Cors.AllowedOrigins[:0]
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
