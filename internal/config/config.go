package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Auth     AuthConfig     `mapstructure:"jwt"`
	Mail     MailConfig     `mapstructure:"smtp"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Storage  StorageConfig  `mapstructure:"oss"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Log      LogConfig      `mapstructure:"log"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type KafkaConfig struct {
	Broker        string        `mapstructure:"broker"`
	ConsumerGroup string        `mapstructure:"consumer_group"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
}

type AuthConfig struct {
	Secret string `mapstructure:"secret"`
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type SheetsConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Token                string `mapstructure:"token"`
	DefaultSpreadsheetID string `mapstructure:"default_spreadsheet_id"`
	RetryCount           int    `mapstructure:"retry_count"`
}

type StorageConfig struct {
	Endpoint        string        `mapstructure:"endpoint"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	AccessKeySecret string        `mapstructure:"access_key_secret"`
	Bucket          string        `mapstructure:"bucket"`
	KeyPrefix       string        `mapstructure:"key_prefix"`
	UploadTimeout   time.Duration `mapstructure:"upload_timeout"`
}

type NotifyConfig struct {
	FallbackRecipients string        `mapstructure:"fallback_recipients"`
	ChannelTimeout     time.Duration `mapstructure:"channel_timeout"`
	Locale             string        `mapstructure:"locale"`
}

// FallbackList splits the comma-separated fallback recipients.
func (n NotifyConfig) FallbackList() []string {
	var out []string
	for _, part := range strings.Split(n.FallbackRecipients, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables (DB_HOST -> db.host),
// falling back to defaults. A .env file is expected to be loaded by the caller.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "development")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "timeoff")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.auto_migrate", false)

	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.consumer_group", "go-timeoff-notifications")
	v.SetDefault("kafka.poll_interval", "3s")

	v.SetDefault("jwt.secret", "")

	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "no-reply@localhost")

	v.SetDefault("sheets.base_url", "https://sheets.googleapis.com/v4")
	v.SetDefault("sheets.token", "")
	v.SetDefault("sheets.default_spreadsheet_id", "")
	v.SetDefault("sheets.retry_count", 2)

	v.SetDefault("oss.endpoint", "")
	v.SetDefault("oss.access_key_id", "")
	v.SetDefault("oss.access_key_secret", "")
	v.SetDefault("oss.bucket", "")
	v.SetDefault("oss.key_prefix", "doctor-notes")
	v.SetDefault("oss.upload_timeout", "15s")

	v.SetDefault("notify.fallback_recipients", "")
	v.SetDefault("notify.channel_timeout", "10s")
	v.SetDefault("notify.locale", "en")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// PORT and APP_ENV keep their conventional names.
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("app.env", "APP_ENV")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("invalid config: JWT_SECRET is required")
	}
	if len(c.Auth.Secret) < 16 {
		return fmt.Errorf("invalid config: JWT_SECRET must be at least 16 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: PORT must be between 1 and 65535")
	}
	if c.Notify.ChannelTimeout <= 0 {
		return fmt.Errorf("invalid config: NOTIFY_CHANNEL_TIMEOUT must be positive")
	}
	return nil
}
