package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Redis holds Redis configuration. When disabled the profile store falls
// back to the local file blob.
type Redis struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// AlphaVantage holds the market data provider configuration.
type AlphaVantage struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	Timeout             string `mapstructure:"timeout"`
}

// Profile holds profile storage configuration.
type Profile struct {
	FilePath string `mapstructure:"file_path"`
	RedisKey string `mapstructure:"redis_key"`
}

// Watcher holds the per-symbol refresh configuration.
type Watcher struct {
	RefreshInterval string `mapstructure:"refresh_interval"`
}

// Market holds market overview configuration.
type Market struct {
	RefreshSchedule string `mapstructure:"refresh_schedule"`
}

// Telegram holds the optional advisory notifier configuration.
type Telegram struct {
	Enabled     bool   `mapstructure:"enabled"`
	BotToken    string `mapstructure:"bot_token"`
	ChatID      int64  `mapstructure:"chat_id"`
	DedupWindow string `mapstructure:"dedup_window"`
}

// Config holds the full configuration for the service.
type Config struct {
	App          App          `mapstructure:"app"`
	Logger       Logger       `mapstructure:"logger"`
	API          API          `mapstructure:"api"`
	Redis        Redis        `mapstructure:"redis"`
	AlphaVantage AlphaVantage `mapstructure:"alphavantage"`
	Profile      Profile      `mapstructure:"profile"`
	Watcher      Watcher      `mapstructure:"watcher"`
	Market       Market       `mapstructure:"market"`
	Telegram     Telegram     `mapstructure:"telegram"`
}

// Load loads configuration from a file into a Config, with environment
// variable overrides (dots replaced by underscores).
func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Failed to read config file, falling back to environment variables")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "wealthview")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.host", "0.0.0.0")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("alphavantage.base_url", "https://www.alphavantage.co/query")
	viper.SetDefault("alphavantage.api_key", "demo")
	viper.SetDefault("alphavantage.max_request_per_minute", 5)
	viper.SetDefault("alphavantage.timeout", "10s")
	viper.SetDefault("profile.file_path", "profile.json")
	viper.SetDefault("profile.redis_key", "wealthview:user_profile")
	viper.SetDefault("watcher.refresh_interval", "60s")
	viper.SetDefault("market.refresh_schedule", "@every 1m")
	viper.SetDefault("telegram.dedup_window", "5m")
}
