package config

import "fmt"

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" yaml:"driver"`
	DSN      string `mapstructure:"dsn" yaml:"dsn"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     string `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	DBName   string `mapstructure:"name" yaml:"name"`
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver: "sqlite",
		Host:   "localhost",
		Port:   "3306",
		User:   "root",
		DBName: "hash_analyzer",
	}
}

// GetDSN returns DSN when set. Otherwise MySQL gets a DSN built from the connection
// fields and SQLite a file named after DBName.
func (c *DatabaseConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			c.User,
			c.Password,
			c.Host,
			c.Port,
			c.DBName,
		)
	}
	return c.DBName + ".db"
}

// Enabled reports whether analyses should be persisted at all.
func (c *DatabaseConfig) Enabled() bool {
	return c.Driver != "" && c.Driver != "none"
}
