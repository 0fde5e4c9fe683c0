// Package config loads application configuration from config.yaml and
// QUAKE_-prefixed environment variables, and initializes the global logger.
package config

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Snapshot  SnapshotConfig  `yaml:"snapshot" mapstructure:"snapshot"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DataConfig points at the three input files.
type DataConfig struct {
	QuakesCSV    string `yaml:"quakes_csv" mapstructure:"quakes_csv"`
	DistrictsCSV string `yaml:"districts_csv" mapstructure:"districts_csv"`
	Boundaries   string `yaml:"boundaries" mapstructure:"boundaries"`
}

// ServerConfig configures the dashboard HTTP server.
type ServerConfig struct {
	Port           int     `yaml:"port" mapstructure:"port"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
}

// DashboardConfig configures the derived views.
type DashboardConfig struct {
	TopN int `yaml:"top_n" mapstructure:"top_n"`
}

// SnapshotConfig configures the optional SQLite dataset snapshot.
type SnapshotConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("QUAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"data.quakes_csv":        "data/nepal_earthquakes_2015_2025.csv",
		"data.districts_csv":     "data/nepal_districts.csv",
		"data.boundaries":        "data/nepal_districts.geojson",
		"server.port":            8080,
		"server.rate_limit_rps":  20.0,
		"server.rate_limit_burst": 40,
		"dashboard.top_n":        15,
		"snapshot.path":          "quakes.db",
		"log.level":              "info",
		"log.format":             "json",
	}
}

// Validate checks values a running server depends on.
func (c *Config) Validate() error {
	var problems []string
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be between 1 and 65535")
	}
	if c.Server.RateLimitRPS <= 0 {
		problems = append(problems, "server.rate_limit_rps must be > 0")
	}
	if c.Dashboard.TopN <= 0 {
		problems = append(problems, "dashboard.top_n must be > 0")
	}
	if c.Data.QuakesCSV == "" {
		problems = append(problems, "data.quakes_csv is required")
	}
	if c.Data.DistrictsCSV == "" {
		problems = append(problems, "data.districts_csv is required")
	}
	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// WriteDefault writes a config file populated with the default values.
// It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return eris.Errorf("config: %s already exists", path)
	}

	cfg := Config{
		Data: DataConfig{
			QuakesCSV:    "data/nepal_earthquakes_2015_2025.csv",
			DistrictsCSV: "data/nepal_districts.csv",
			Boundaries:   "data/nepal_districts.geojson",
		},
		Server:    ServerConfig{Port: 8080, RateLimitRPS: 20, RateLimitBurst: 40},
		Dashboard: DashboardConfig{TopN: 15},
		Snapshot:  SnapshotConfig{Path: "quakes.db"},
		Log:       LogConfig{Level: "info", Format: "json"},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return eris.Wrap(err, "config: marshal defaults")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "config: write file")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
