package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTKey is used when JWT_KEY is unset. It is public knowledge, so
// the application warns loudly when running with it.
const DefaultJWTKey = "secret"

const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	JWTKey    string `env:"JWT_KEY"    envDefault:"secret"`
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"charauth"`

	Env       string `env:"ENV"        envDefault:"dev"`  // dev, staging, prod
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"` // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json or text
	Port      int    `env:"PORT"       envDefault:"3000"`

	StoreDriver  string `env:"STORE_DRIVER"  envDefault:"memory"` // memory or sqlite
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"charauth.db"`

	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL"  envDefault:"1h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"24h"`

	BcryptCost  int `env:"BCRYPT_COST"  envDefault:"10"`
	HashWorkers int `env:"HASH_WORKERS"` // 0 means GOMAXPROCS

	MFAIssuer string `env:"MFA_ISSUER" envDefault:"charauth"`

	BootstrapAdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`

	// Comma separated. Empty allows any origin.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	RateLimits RateLimitConfig `envPrefix:"RATELIMIT_"`
}

// RateLimitConfig overrides the httpx profiles, e.g.
// RATELIMIT_STRICT_REQUESTS=10 or RATELIMIT_LENIENT_WINDOW=30s.
type RateLimitConfig struct {
	Strict   httpx.RateLimit `envPrefix:"STRICT_"`
	Moderate httpx.RateLimit `envPrefix:"MODERATE_"`
	Lenient  httpx.RateLimit `envPrefix:"LENIENT_"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.JWTKey == "" {
		errs = append(errs, errors.New("JWT_KEY must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q must be memory or sqlite", c.StoreDriver))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	if c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("REFRESH_TOKEN_TTL must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST %d outside %d..%d", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.HousekeepingInterval <= 0 {
		errs = append(errs, errors.New("HOUSEKEEPING_INTERVAL must be positive"))
	}

	return errors.Join(errs...)
}

// InsecureJWTKey reports whether the signing secret is the built-in default.
func (c Config) InsecureJWTKey() bool {
	return c.JWTKey == DefaultJWTKey
}
