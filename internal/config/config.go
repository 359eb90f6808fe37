package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	Cache        CacheConfig        `toml:"cache"`
	StaffService StaffServiceConfig `toml:"staff_service"`
	Booking      BookingConfig      `toml:"booking"`
}

// ServerConfig HTTP-сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig подключение к Redis. Пустой Address отключает кеш.
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

// CacheConfig TTL кеша площадок в секундах
type CacheConfig struct {
	VenueTTL int `toml:"venue_ttl"`
}

type StaffServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig параметры движка доступности и каталога услуг
type BookingConfig struct {
	SlotStepMinutes           int `toml:"slot_step_minutes"`
	ServiceLengthChunkMinutes int `toml:"service_length_chunk_minutes"`
	TxMaxRetries              int `toml:"tx_max_retries"`
}

// Default конфигурация по умолчанию, поверх неё декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "salon_booking",
		},
		Redis: RedisConfig{
			PoolSize: 10,
		},
		Cache: CacheConfig{
			VenueTTL: 300,
		},
		StaffService: StaffServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
		Booking: BookingConfig{
			SlotStepMinutes:           15,
			ServiceLengthChunkMinutes: 15,
			TxMaxRetries:              3,
		},
	}
}

// Load читает TOML-файл поверх значений по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых сервис не стартует
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	case c.Database.Host == "":
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	case c.Metrics.Enabled && c.Metrics.Path == "":
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	case c.StaffService.URL == "":
		return fmt.Errorf("%w: staff_service.url is required", ErrInvalidConfig)
	case c.Booking.SlotStepMinutes <= 0:
		return fmt.Errorf("%w: booking.slot_step_minutes must be positive", ErrInvalidConfig)
	case c.Booking.ServiceLengthChunkMinutes <= 0:
		return fmt.Errorf("%w: booking.service_length_chunk_minutes must be positive", ErrInvalidConfig)
	case c.Booking.TxMaxRetries < 0:
		return fmt.Errorf("%w: booking.tx_max_retries must not be negative", ErrInvalidConfig)
	case c.Cache.VenueTTL < 0:
		return fmt.Errorf("%w: cache.venue_ttl must not be negative", ErrInvalidConfig)
	}
	return nil
}
