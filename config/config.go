package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Identity     IdentityConfig     `mapstructure:"identity"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Subscription SubscriptionConfig `mapstructure:"subscription"`
	Report       ReportConfig       `mapstructure:"report"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	SSLMode      string `mapstructure:"ssl_mode"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type IdentityConfig struct {
	ExchangeURL    string `mapstructure:"exchange_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	SessionTTLDays int    `mapstructure:"session_ttl_days"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type SubscriptionConfig struct {
	Plans map[string]PlanConfig `mapstructure:"plans"`
}

// PlanConfig is one tier of the static plan catalog.
// AutoTripLimit < 0 means unlimited (never a large finite number).
type PlanConfig struct {
	Name          string   `mapstructure:"name"`
	Price         float64  `mapstructure:"price"`
	Interval      string   `mapstructure:"interval"`
	Popular       bool     `mapstructure:"popular"`
	Features      []string `mapstructure:"features"`
	Limitations   []string `mapstructure:"limitations"`
	AutoTripLimit int      `mapstructure:"auto_trip_limit"`
	BankLink      bool     `mapstructure:"bank_link"`
}

type ReportConfig struct {
	MileageRate float64 `mapstructure:"mileage_rate"`
	TaxRate     float64 `mapstructure:"tax_rate"`
}

func Load(configPath string) (*Config, error) {
	// Prefer config.local.yaml when present (real credentials, not committed)
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Environment variables override file values
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
