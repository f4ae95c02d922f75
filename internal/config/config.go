package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Study       StudyConfig       `yaml:"study"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

// CORSConfig holds CORS settings. Credentials are on by default because the
// API authenticates with a cookie.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds password and session settings. AttemptsPerMinute caps
// signup and login requests per client host; zero disables the cap.
type AuthConfig struct {
	SessionTTL        time.Duration `yaml:"session_ttl"         env:"AUTH_SESSION_TTL"         env-default:"8760h"`
	PasswordHashCost  int           `yaml:"password_hash_cost"  env:"AUTH_PASSWORD_HASH_COST"  env-default:"12"`
	CookieName        string        `yaml:"cookie_name"         env:"AUTH_COOKIE_NAME"         env-default:"session"`
	CookieSecure      bool          `yaml:"cookie_secure"       env:"AUTH_COOKIE_SECURE"       env-default:"true"`
	MinPasswordLen    int           `yaml:"min_password_len"    env:"AUTH_MIN_PASSWORD_LEN"    env-default:"1"`
	AttemptsPerMinute int           `yaml:"attempts_per_minute" env:"AUTH_ATTEMPTS_PER_MINUTE" env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StudyConfig holds the day boundary used for due counts.
type StudyConfig struct {
	Timezone string `yaml:"timezone" env:"STUDY_TIMEZONE" env-default:"UTC"`
}

// CatalogConfig controls the public catalog reload. An empty Path uses the
// bundle compiled into the binary.
type CatalogConfig struct {
	Path        string `yaml:"path"          env:"CATALOG_PATH"`
	SeedOnStart bool   `yaml:"seed_on_start" env:"CATALOG_SEED_ON_START" env-default:"true"`
}

// MaintenanceConfig holds background job settings. A zero interval disables
// the expired-session sweep.
type MaintenanceConfig struct {
	SessionSweepInterval time.Duration `yaml:"session_sweep_interval" env:"MAINTENANCE_SESSION_SWEEP_INTERVAL" env-default:"1h"`
}
