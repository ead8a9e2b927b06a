package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "userdeck", cfg.Issuer)
	require.Equal(t, 8*time.Hour, cfg.TokenTTL)
	require.Equal(t, "userdeck.db", cfg.DatabaseFile)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Empty(t, cfg.CORSOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AUTH_ISSUER", "my-issuer")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := LoadConfig()

	require.Equal(t, "my-issuer", cfg.Issuer)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 9999, cfg.Port)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("TOKEN_TTL", "soon")

	cfg := LoadConfig()

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 8*time.Hour, cfg.TokenTTL)
}

func TestNew_RefusesProdWithoutSecret(t *testing.T) {
	cfg := LoadConfig()
	cfg.Env = "prod"
	cfg.JWTSecret = ""

	_, err := New(cfg)
	require.ErrorIs(t, err, ErrNoSecret)
}
