package confs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the service configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
	NewRelic NewRelicConfig
}

type ServerConfig struct {
	Port int
	Mode string // debug, release, test
}

type DatabaseConfig struct {
	URL          string
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxIdleConns int
	MaxOpenConns int
}

type MetricsConfig struct {
	Enabled bool
}

type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// LoadConfig loads environment variables from a .env file if present, then
// reads the optional config file. REPAIR_* variables override file values,
// e.g. REPAIR_DATABASE_HOST overrides database.host.
func LoadConfig(cfgFile string) (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/repair-server")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REPAIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "repair")
	v.SetDefault("database.password", "repair")
	v.SetDefault("database.dbname", "repair_shop")
	v.SetDefault("database.sslmode", "")
	v.SetDefault("database.maxidleconns", 10)
	v.SetDefault("database.maxopenconns", 100)

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("newrelic.appname", "Repair Server")
	v.SetDefault("newrelic.licensekey", "")
	v.SetDefault("newrelic.enabled", false)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port: v.GetInt("server.port"),
			Mode: v.GetString("server.mode"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("database.url"),
			Host:         v.GetString("database.host"),
			Port:         v.GetInt("database.port"),
			User:         v.GetString("database.user"),
			Password:     v.GetString("database.password"),
			DBName:       v.GetString("database.dbname"),
			SSLMode:      v.GetString("database.sslmode"),
			MaxIdleConns: v.GetInt("database.maxidleconns"),
			MaxOpenConns: v.GetInt("database.maxopenconns"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
		},
		NewRelic: NewRelicConfig{
			AppName:    v.GetString("newrelic.appname"),
			LicenseKey: v.GetString("newrelic.licensekey"),
			Enabled:    v.GetBool("newrelic.enabled"),
		},
	}
}

// DSN builds the postgres connection string. A full URL takes precedence over
// the individual parameters.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		dsn := c.URL
		if c.SSLMode != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=" + c.SSLMode
			} else {
				dsn += "?sslmode=" + c.SSLMode
			}
		}
		return dsn
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "require"
		if c.Host == "localhost" || c.Host == "127.0.0.1" {
			sslMode = "disable"
		}
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.DBName, c.Port, sslMode)
}
