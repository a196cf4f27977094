package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
const EnvPrefix = "HOTEL"

// Режимы подтверждения бронирования после успешной оплаты
const (
	ConfirmModeBooking    = "booking"
	ConfirmModeAnyPending = "any_pending"
)

var (
	// ErrReadConfig ошибка чтения или разбора файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrEnvOverride ошибка разбора переменных окружения
	ErrEnvOverride = errors.New("config: failed to process environment overrides")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	Kafka    KafkaConfig    `toml:"kafka"`
	Booking  BookingConfig  `toml:"booking"`
	Payment  PaymentConfig  `toml:"payment"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`

	// TrustForwardedFor брать адрес клиента из X-Forwarded-For (только за своим прокси)
	TrustForwardedFor bool `toml:"trust_forwarded_for" split_words:"true"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// AuthConfig настройки провайдера идентификации (GoTrue API)
type AuthConfig struct {
	JWTSecret        string `toml:"jwt_secret" split_words:"true"`
	ProviderURL      string `toml:"provider_url" split_words:"true"`
	APIKey           string `toml:"api_key" split_words:"true"`
	Timeout          int    `toml:"timeout" split_words:"true"`
	OAuthRedirectURL string `toml:"oauth_redirect_url" split_words:"true"`
	TokenLeeway      int    `toml:"token_leeway" split_words:"true"`
}

// RedisConfig настройки Redis (кэш каталога и cool-down)
type RedisConfig struct {
	Enabled       bool   `toml:"enabled" split_words:"true"`
	Addr          string `toml:"addr" split_words:"true"`
	Password      string `toml:"password" split_words:"true"`
	DB            int    `toml:"db" split_words:"true"`
	RoomsCacheTTL int    `toml:"rooms_cache_ttl" split_words:"true"`
}

// KafkaConfig настройки публикации событий бронирования
type KafkaConfig struct {
	Enabled            bool     `toml:"enabled" split_words:"true"`
	Brokers            []string `toml:"brokers" split_words:"true"`
	BookingEventsTopic string   `toml:"booking_events_topic" split_words:"true"`
}

// BookingConfig настройки жизненного цикла бронирования
type BookingConfig struct {
	PreventOverlap   bool `toml:"prevent_overlap" split_words:"true"`
	SubmitCooldownMs int  `toml:"submit_cooldown_ms" split_words:"true"`
}

// SubmitCooldown минимальный интервал между отправками одной формы
func (c BookingConfig) SubmitCooldown() time.Duration {
	return time.Duration(c.SubmitCooldownMs) * time.Millisecond
}

// PaymentConfig настройки симулятора оплаты
type PaymentConfig struct {
	SuccessProbability float64 `toml:"success_probability" split_words:"true"`
	ConfirmMode        string  `toml:"confirm_mode" split_words:"true"`
}

// Default значения по умолчанию; файл и окружение их перекрывают
func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "hotel",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "hotel-booking-service",
		},
		Auth: AuthConfig{
			Timeout:     10,
			TokenLeeway: 30,
		},
		Redis: RedisConfig{
			Addr:          "localhost:6379",
			RoomsCacheTTL: 60,
		},
		Kafka: KafkaConfig{
			BookingEventsTopic: "booking-events",
		},
		Booking: BookingConfig{
			PreventOverlap:   true,
			SubmitCooldownMs: 2000,
		},
		Payment: PaymentConfig{
			SuccessProbability: 0.7,
			ConfirmMode:        ConfirmModeBooking,
		},
	}
}

// Load читает конфигурацию из TOML файла, применяет переопределения из окружения
// (HOTEL_<SECTION>_<KEY>, например HOTEL_PAYMENT_CONFIRM_MODE) и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		problems = append(problems, "auth.jwt_secret is required")
	}
	if c.Auth.ProviderURL == "" {
		problems = append(problems, "auth.provider_url is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.BookingEventsTopic == "") {
		problems = append(problems, "kafka.brokers and kafka.booking_events_topic are required when kafka is enabled")
	}
	if c.Booking.SubmitCooldownMs < 0 {
		problems = append(problems, "booking.submit_cooldown_ms must not be negative")
	}
	if c.Payment.SuccessProbability < 0 || c.Payment.SuccessProbability > 1 {
		problems = append(problems, "payment.success_probability must be in [0, 1]")
	}
	if c.Payment.ConfirmMode != ConfirmModeBooking && c.Payment.ConfirmMode != ConfirmModeAnyPending {
		problems = append(problems, fmt.Sprintf("payment.confirm_mode must be %q or %q", ConfirmModeBooking, ConfirmModeAnyPending))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
