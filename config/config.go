package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	DB        DBConfig        `mapstructure:"db"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

type AppConfig struct {
	Port            string        `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin_mode"`
	BasePath        string        `mapstructure:"base_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	DSN             string        `mapstructure:"dsn"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig is per client IP. RPS <= 0 disables the limiter.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// AuthConfig enables bearer-token auth on the API when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

var defaults = map[string]interface{}{
	"app.port":             "8080",
	"app.gin_mode":         "debug",
	"app.base_path":        "/api",
	"app.shutdown_timeout": "10s",

	"db.driver":            DriverSQLite,
	"db.host":              "localhost",
	"db.port":              "3306",
	"db.user":              "root",
	"db.password":          "",
	"db.name":              "restaurant",
	"db.dsn":               "",
	"db.sqlite_path":       "restaurant.db",
	"db.max_open_conns":    25,
	"db.max_idle_conns":    5,
	"db.conn_max_lifetime": "5m",

	"log.level":  "info",
	"log.format": "text",

	"cors.allowed_origins": []string{"*"},

	"rate_limit.rps":   50,
	"rate_limit.burst": 100,

	"auth.jwt_secret": "",
}

// Extra environment names accepted on top of the KEY_NAME form.
var envAliases = map[string][]string{
	"app.port":        {"APP_PORT", "PORT"},
	"app.gin_mode":    {"APP_GIN_MODE", "GIN_MODE"},
	"db.dsn":          {"DB_DSN", "DATABASE_URL"},
	"auth.jwt_secret": {"JWT_SECRET"},
}

// Load reads defaults, then config.yml from "." or "./config" if present,
// then the environment. Later sources win.
func Load() (*Config, error) {
	return load(viper.New(), "config", ".", "./config")
}

// LoadFile is Load with an explicit config file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, "")
}

func load(v *viper.Viper, name string, paths ...string) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("v.BindEnv -> %w", err)
		}
	}

	if name != "" {
		v.SetConfigName(name)
		v.SetConfigType("yaml")
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}

	if c.App.Port == "" {
		return errors.New("app.port must not be empty")
	}

	switch c.App.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported app.gin_mode %q", c.App.GinMode)
	}

	c.App.BasePath = "/" + strings.Trim(c.App.BasePath, "/")
	if c.App.BasePath == "/" {
		c.App.BasePath = ""
	}

	return nil
}
