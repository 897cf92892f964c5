package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable read by the app.
	EnvPrefix = "WASHLANE"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// devFallbackSecret keeps local development working without exported
// secrets. Production startup refuses to run with it.
const devFallbackSecret = "washlane-dev-only-secret"

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.DB.ensureDriver()
	if err := cfg.Session.ensureSecret(cfg.App); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"WASHLANE_APP_ENV" default:"development"`
	Port         string   `envconfig:"WASHLANE_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"WASHLANE_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"WASHLANE_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"WASHLANE_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	DSN        string `envconfig:"WASHLANE_DB_DSN"`
	Driver     string `envconfig:"WASHLANE_DB_DRIVER"`
	SQLitePath string `envconfig:"WASHLANE_DB_SQLITE_PATH" default:"bookings.db"`

	MaxOpenConns    int           `envconfig:"WASHLANE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WASHLANE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WASHLANE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WASHLANE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDriver picks Postgres when a DSN is supplied and falls back to the
// local SQLite file otherwise, matching the deployed-vs-local split.
func (db *DBConfig) ensureDriver() {
	if db.Driver != "" {
		db.Driver = strings.ToLower(db.Driver)
		return
	}
	if db.DSN != "" {
		db.Driver = DriverPostgres
		return
	}
	db.Driver = DriverSQLite
}

// IsSQLite reports whether the file-backed fallback store is in use.
func (db DBConfig) IsSQLite() bool {
	return db.Driver == DriverSQLite
}

type RedisConfig struct {
	URL          string        `envconfig:"WASHLANE_REDIS_URL"`
	Address      string        `envconfig:"WASHLANE_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"WASHLANE_REDIS_PASSWORD"`
	DB           int           `envconfig:"WASHLANE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WASHLANE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WASHLANE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WASHLANE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WASHLANE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WASHLANE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	Secret       string `envconfig:"WASHLANE_SESSION_SECRET"`
	Issuer       string `envconfig:"WASHLANE_SESSION_ISSUER" default:"washlane"`
	TTLMinutes   int    `envconfig:"WASHLANE_SESSION_TTL_MINUTES" default:"10080"`
	CookieName   string `envconfig:"WASHLANE_SESSION_COOKIE" default:"washlane_session"`
	CookieSecure bool   `envconfig:"WASHLANE_SESSION_COOKIE_SECURE" default:"false"`

	// UsingFallbackSecret is set when the insecure dev secret is active so
	// startup can log a warning.
	UsingFallbackSecret bool `ignored:"true"`
}

// TTL returns the session lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

// ensureSecret enforces an externally supplied signing secret in production
// and substitutes the insecure fallback everywhere else.
func (s *SessionConfig) ensureSecret(app AppConfig) error {
	if strings.TrimSpace(s.Secret) != "" {
		return nil
	}
	if app.IsProd() {
		return fmt.Errorf("WASHLANE_SESSION_SECRET is required in production")
	}
	s.Secret = devFallbackSecret
	s.UsingFallbackSecret = true
	return nil
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"WASHLANE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"WASHLANE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"WASHLANE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"WASHLANE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"WASHLANE_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WASHLANE_AUTO_MIGRATE" default:"false"`
}
