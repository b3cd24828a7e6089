package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that must differ between environments (session secret)
// - default: Values common across all environments (port, file names, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Admin     AdminConfig
	Data      DataConfig
	SMTP      SMTPConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port  string `envconfig:"PORT" default:"5000"`
	Debug bool   `envconfig:"DEBUG" default:"false"`
}

type SessionConfig struct {
	Secret        string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"10m"`
	Cookie        CookieConfig
}

type CookieConfig struct {
	Domain   string `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

type AdminConfig struct {
	Password     string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" default:""`
}

type DataConfig struct {
	Dir        string `envconfig:"DATA_DIR" default:"."`
	File       string `envconfig:"DATA_FILE" default:"data.json"`
	PublicFull bool   `envconfig:"DATA_PUBLIC_FULL" default:"true"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:""`
	FromName string `envconfig:"SMTP_FROM_NAME" default:""`
	UseTLS   bool   `envconfig:"SMTP_USE_TLS" default:"true"`
}

type MailConfig struct {
	SendTimeout time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"15s"`
	QueueSize   int           `envconfig:"MAIL_QUEUE_SIZE" default:"64"`
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DataConfig) Path() string {
	return filepath.Join(c.Dir, c.File)
}

func (c *SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func (c *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		return Config{}, fmt.Errorf("either ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Session: SessionConfig{
			Secret:        "test-session-secret",
			TTL:           time.Hour,
			SweepInterval: time.Minute,
			Cookie: CookieConfig{
				SameSite: "Lax",
			},
		},
		Admin: AdminConfig{
			Password: "admin123",
		},
		Data: DataConfig{
			Dir:        ".",
			File:       "data.json",
			PublicFull: true,
		},
		Mail: MailConfig{
			SendTimeout: time.Second,
			QueueSize:   8,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 600,
			Burst:     100,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:5000"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
