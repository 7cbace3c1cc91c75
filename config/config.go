package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// SMTPConfig is loaded from SMTP_* environment variables. The notification
// sender runs in disabled no-op mode when credentials are absent.
type SMTPConfig struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM"`
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != ""
}

// ClinicConfig carries the clinic display details used in notification
// emails, loaded from CLINIC_* environment variables.
type ClinicConfig struct {
	Name       string `envconfig:"NAME" default:"Shashank Skin Clinic"`
	Email      string `envconfig:"EMAIL"`
	Phone      string `envconfig:"PHONE"`
	Address    string `envconfig:"ADDRESS"`
	AdminEmail string `envconfig:"ADMIN_EMAIL"`
	WebsiteURL string `envconfig:"WEBSITE_URL"`
}

// RedisConfig enables the blog read cache when ADDR is set.
type RedisConfig struct {
	Addr     string `envconfig:"ADDR"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type AppointmentsConfig struct {
	StrictTransitions bool `envconfig:"STRICT_TRANSITIONS" default:"false"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Security struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"security"`
	RateLimit struct {
		Enabled           bool    `mapstructure:"enabled"`
		RequestsPerSecond float64 `mapstructure:"requests_per_second"`
		Burst             int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
	Monitoring struct {
		PrometheusEnabled bool   `mapstructure:"prometheus_enabled"`
		MetricsPath       string `mapstructure:"metrics_path"`
	} `mapstructure:"monitoring"`

	SMTP         SMTPConfig
	Clinic       ClinicConfig
	Redis        RedisConfig
	Appointments AppointmentsConfig
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")
	viper.AddConfigPath("/app/config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with environment variables if present
	if host := os.Getenv("DB_HOST"); host != "" {
		config.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		config.Database.Port, _ = strconv.Atoi(port)
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.Database.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.Database.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		config.Database.Name = name
	}
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port, _ = strconv.Atoi(port)
	}

	if err := envconfig.Process("smtp", &config.SMTP); err != nil {
		return nil, fmt.Errorf("failed to load SMTP config: %w", err)
	}
	if err := envconfig.Process("clinic", &config.Clinic); err != nil {
		return nil, fmt.Errorf("failed to load clinic config: %w", err)
	}
	if err := envconfig.Process("redis", &config.Redis); err != nil {
		return nil, fmt.Errorf("failed to load redis config: %w", err)
	}
	if err := envconfig.Process("appointments", &config.Appointments); err != nil {
		return nil, fmt.Errorf("failed to load appointments config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "clinic")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("security.allowed_origins", []string{"*"})
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 50.0)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("monitoring.prometheus_enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}
