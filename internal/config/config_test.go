package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/leadmail?sslmode=disable")
	t.Setenv("SUPABASE_JWT_SECRET", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.GuardLeadRegression)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, time.Hour, cfg.WarmupRampInterval)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/leadmail")
	t.Setenv("SUPABASE_JWT_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("GUARD_LEAD_REGRESSION", "true")
	t.Setenv("WARMUP_RAMP_INTERVAL", "15m")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.GuardLeadRegression)
	assert.Equal(t, 15*time.Minute, cfg.WarmupRampInterval)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoad_RequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SUPABASE_JWT_SECRET", "")

	_, err := Load()

	assert.Error(t, err)
}
