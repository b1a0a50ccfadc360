package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	OTP      OTPConfig      `mapstructure:"otp"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Admin    AdminConfig    `mapstructure:"admin"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	Log      LogConfig      `mapstructure:"log"`
}

type AppConfig struct {
	WelcomeMessage string `mapstructure:"welcome_message"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Mode         string `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// StorageConfig selects the account/ledger store.
type StorageConfig struct {
	Driver  string `mapstructure:"driver"`  // postgres, memory
	Migrate bool   `mapstructure:"migrate"` // apply schema.sql at boot
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// OTPConfig controls one-time passcode lifetime and storage.
type OTPConfig struct {
	TTL          time.Duration `mapstructure:"ttl"`
	Store        string        `mapstructure:"store"`         // redis, memory
	ReapInterval time.Duration `mapstructure:"reap_interval"` // memory store only; 0 disables
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key      string `mapstructure:"key"`       // 32-byte hex-encoded key for AES-256
	IndexKey string `mapstructure:"index_key"` // HMAC key for the national ID blind index
}

// AdminConfig describes the single administrative identity.
// PasswordHash (Argon2id) wins over Password when both are set.
type AdminConfig struct {
	Name         string `mapstructure:"name"`
	Email        string `mapstructure:"email"`
	CountryCode  string `mapstructure:"country_code"`
	PhoneNumber  string `mapstructure:"phone_number"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
	APIKey       string `mapstructure:"api_key"`
}

type RabbitMQConfig struct {
	URL      string `mapstructure:"url"` // empty = log-only publisher
	Exchange string `mapstructure:"exchange"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded first when present; real
// environment variables always win over it. Prefix: MBQ_.
// Nested keys use underscore: MBQ_DATABASE_HOST, MBQ_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("MBQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.welcome_message", "WELCOME TO MBANQ")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("storage.migrate", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "mbanq")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("otp.ttl", "3m")
	v.SetDefault("otp.store", DriverRedis)
	v.SetDefault("otp.reap_interval", "1m")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "30m")
	v.SetDefault("jwt.issuer", "mbanq-accounts")
	v.SetDefault("aes.key", "")
	v.SetDefault("aes.index_key", "")
	v.SetDefault("admin.name", "ADMIN")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.country_code", "")
	v.SetDefault("admin.phone_number", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.api_key", "")
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "mbanq.events")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// Validate reports configuration that would leave the service unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.JWT.Expiry <= 0 {
		errs = append(errs, errors.New("jwt.expiry must be positive"))
	}
	if c.AES.Key == "" {
		errs = append(errs, errors.New("aes.key is required"))
	}
	if c.AES.IndexKey == "" {
		errs = append(errs, errors.New("aes.index_key is required"))
	}
	if c.OTP.TTL <= 0 {
		errs = append(errs, errors.New("otp.ttl must be positive"))
	}
	switch c.Storage.Driver {
	case DriverPostgres, DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not one of postgres, memory", c.Storage.Driver))
	}
	switch c.OTP.Store {
	case DriverRedis:
		if !c.Redis.Enabled {
			errs = append(errs, errors.New("otp.store redis requires redis.enabled"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("otp.store %q is not one of redis, memory", c.OTP.Store))
	}
	return errors.Join(errs...)
}

// HasAdminLogin reports whether an administrator email login is configured.
func (a AdminConfig) HasAdminLogin() bool {
	return a.Email != "" && (a.Password != "" || a.PasswordHash != "")
}

// PhoneKey returns the admin's full phone identity, or "" when unset.
func (a AdminConfig) PhoneKey() string {
	if a.PhoneNumber == "" {
		return ""
	}
	return a.CountryCode + a.PhoneNumber
}
