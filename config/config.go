package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/shiva/reservation/internal/model"
)

// Config holds all configuration for the reservation server.
type Config struct {
	Db     DbConfig
	Server ServerConfig
	Redis  RedisConfig
}

// DbConfig holds PostgreSQL connection settings.
type DbConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_connections"`
	MinConns int32  `mapstructure:"min_connections"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// RedisConfig holds the change-feed/cache Redis connection settings —
// carried from the teacher's Redis wrapper, not present in the source's
// config shape because `listen` was never implemented there.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// DSN returns the PostgreSQL connection string.
func (d *DbConfig) DSN() string {
	if d.Password == "" {
		return fmt.Sprintf("postgres://%s@%s:%d/%s", d.User, d.Host, d.Port, d.Dbname)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", d.User, d.Password, d.Host, d.Port, d.Dbname)
}

// Addr returns the Redis address in host:port format.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ServerAddr returns the HTTP listen address in host:port format.
func (s *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// resolveConfigFile implements the same search order as the source's
// main(): an explicit RESERVATION_CONFIG env var wins outright, else the
// first of ./reservation.yml, ~/.config/reservation.yml,
// /etc/reservation.yml that exists on disk.
func resolveConfigFile() (string, *model.Error) {
	if p := os.Getenv("RESERVATION_CONFIG"); p != "" {
		return p, nil
	}

	candidates := []string{"./reservation.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "reservation.yml"))
	}
	candidates = append(candidates, "/etc/reservation.yml")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", model.WrapConfigReadError(fmt.Errorf("no config file found in %v", candidates))
}

// Load resolves the config file path and reads it with LoadFile, which
// fills in defaults for the server address, pool sizing and Redis.
func Load() (*Config, *model.Error) {
	filename, err := resolveConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFile(filename)
}

// LoadFile loads config from an explicit path, bypassing the search order
// — used directly by tests and by Load once it has resolved a path.
func LoadFile(filename string) (*Config, *model.Error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 50001)

	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_connections", 5)
	v.SetDefault("db.min_connections", 1)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)

	if readErr := v.ReadInConfig(); readErr != nil {
		return nil, model.WrapConfigReadError(readErr)
	}

	cfg := &Config{}
	if unmarshalErr := v.Unmarshal(cfg); unmarshalErr != nil {
		return nil, model.WrapConfigParseError(unmarshalErr)
	}

	return cfg, nil
}
