package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Quota    QuotaConfig    `yaml:"quota"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Timezone,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MigrateOnStart  bool          `yaml:"migrate_on_start" env:"SERVER_MIGRATE_ON_START" env-default:"false"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and identity-provider settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"JWT_SECRET"          env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"JWT_ISSUER"          env-default:"habits"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"ACCESS_TOKEN_TTL"    env-default:"24h"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"REFRESH_TOKEN_TTL"   env-default:"168h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"PASSWORD_HASH_COST"  env-default:"10"`
	GoogleClientID   string        `yaml:"google_client_id"   env:"GOOGLE_CLIENT_ID"    env-required:"true"`
	GoogleTimeout    time.Duration `yaml:"google_timeout"     env:"GOOGLE_HTTP_TIMEOUT" env-default:"10s"`
}

// QuotaConfig holds the limits assigned to newly created accounts.
type QuotaConfig struct {
	MaxHabits     int `yaml:"max_habits"     env:"QUOTA_MAX_HABITS"     env-default:"5"`
	MaxCategories int `yaml:"max_categories" env:"QUOTA_MAX_CATEGORIES" env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
