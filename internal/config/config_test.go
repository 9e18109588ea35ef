package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 3*time.Second, cfg.StatsOnlineInterval)
	assert.Equal(t, 5*time.Second, cfg.StatsVisitInterval)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.UTC, cfg.StatsLocation)
	assert.Equal(t, "gemini-3-flash-preview", cfg.GeminiModel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LWC_STORAGE_DRIVER", "postgres")
	t.Setenv("LWC_STATS_TIMEZONE", "Asia/Bangkok")
	t.Setenv("LWC_ADMIN_PASSWORD", "s3cret")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "Asia/Bangkok", cfg.StatsLocation.String())
	assert.Equal(t, "s3cret", cfg.AdminPassword)
}

func TestLoad_GeminiKeyFallbacks(t *testing.T) {
	t.Setenv("LWC_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "from-api-key")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "from-api-key", cfg.GeminiAPIKey)

	t.Setenv("GEMINI_API_KEY", "from-gemini")
	cfg, err = Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "from-gemini", cfg.GeminiAPIKey)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("LWC_STORAGE_DRIVER", "sqlite")

	_, err := Load(viper.New())
	assert.ErrorContains(t, err, "unknown driver")
}
