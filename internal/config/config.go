package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "hashanalyzer"
	envPrefix  = "HASHANALYZER"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Pool     PoolConfig     `mapstructure:"pool" yaml:"pool"`
	Limits   LimitsConfig   `mapstructure:"limits" yaml:"limits"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
	LogLevel string         `mapstructure:"log_level" yaml:"log_level"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
	Mode string `mapstructure:"mode" yaml:"mode"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// PoolConfig sizes the shared worker pool. Zero workers means one per CPU.
type PoolConfig struct {
	Workers   int `mapstructure:"workers" yaml:"workers"`
	QueueSize int `mapstructure:"queue_size" yaml:"queue_size"`
}

type LimitsConfig struct {
	MaxHashes       int `mapstructure:"max_hashes" yaml:"max_hashes"`
	MaxWordlistSize int `mapstructure:"max_wordlist_size" yaml:"max_wordlist_size"`
}

type MetricsConfig struct {
	Interval   time.Duration `mapstructure:"interval" yaml:"interval"`
	ReportPath string        `mapstructure:"report_path" yaml:"report_path"`
}

// Defaults holds every key Load knows about, so each one can be overridden from the
// environment.
func Defaults() map[string]any {
	db := NewDatabaseConfig()
	return map[string]any{
		"server.host":              "0.0.0.0",
		"server.port":              "8080",
		"server.mode":              "release",
		"database.driver":          db.Driver,
		"database.dsn":             db.DSN,
		"database.host":            db.Host,
		"database.port":            db.Port,
		"database.user":            db.User,
		"database.password":        db.Password,
		"database.name":            db.DBName,
		"pool.workers":             0,
		"pool.queue_size":          100,
		"limits.max_hashes":        1000,
		"limits.max_wordlist_size": 1000000,
		"metrics.interval":         "5s",
		"metrics.report_path":      "",
		"log_level":                "info",
	}
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"host":      "server.host",
	"port":      "server.port",
	"db-driver": "database.driver",
	"db-dsn":    "database.dsn",
	"workers":   "pool.workers",
}

// Load resolves configuration from defaults, an optional hashanalyzer.yaml, a .env
// file, HASHANALYZER_* environment variables and finally flags set on cmd.
// configFile, when non-empty, must exist.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config

	_ = godotenv.Load()

	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configName))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// WriteConfigFile stores c as YAML at path, creating parent directories.
func WriteConfigFile(c *Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	// may hold the database password
	return os.WriteFile(path, data, 0600)
}
