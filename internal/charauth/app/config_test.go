package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, DefaultJWTKey, cfg.JWTKey)
	require.True(t, cfg.InsecureJWTKey())
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	require.Equal(t, time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Zero(t, cfg.RateLimits.Strict.Requests)
	require.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_KEY", "a-much-better-secret")
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATABASE_FILE", "/tmp/charauth.db")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "root@example.com")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "50")
	t.Setenv("RATELIMIT_LENIENT_WINDOW", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.False(t, cfg.InsecureJWTKey())
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	require.Equal(t, "/tmp/charauth.db", cfg.DatabaseFile)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, "root@example.com", cfg.BootstrapAdminEmail)
	require.Equal(t, 50, cfg.RateLimits.Strict.Requests)
	require.Equal(t, 30*time.Second, cfg.RateLimits.Lenient.Window)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			JWTKey:               "k",
			Port:                 3000,
			StoreDriver:          StoreDriverMemory,
			AccessTokenTTL:       time.Hour,
			RefreshTokenTTL:      24 * time.Hour,
			BcryptCost:           10,
			HousekeepingInterval: time.Hour,
		}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(*Config){
		"empty key":       func(c *Config) { c.JWTKey = "" },
		"port":            func(c *Config) { c.Port = 70000 },
		"driver":          func(c *Config) { c.StoreDriver = "postgres" },
		"sqlite needs db": func(c *Config) { c.StoreDriver = StoreDriverSQLite },
		"access ttl":      func(c *Config) { c.AccessTokenTTL = 0 },
		"refresh ttl":     func(c *Config) { c.RefreshTokenTTL = -time.Second },
		"bcrypt cost":     func(c *Config) { c.BcryptCost = 2 },
		"housekeeping":    func(c *Config) { c.HousekeepingInterval = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
