package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockgames/loadout-api/internal/config"
	"github.com/paddockgames/loadout-api/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, config.BackendFile, cfg.StorageBackend)
	assert.Equal(t, ".PQD_SavedLoadouts", cfg.StorageRoot)
	assert.True(t, cfg.SuppliesEnabled)
	assert.Equal(t, 1.0, cfg.BuyMultiplier)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOADOUT_API_PORT", "9000")
	t.Setenv("LOADOUT_API_STORAGE", "redis")
	t.Setenv("LOADOUT_API_REDIS_ADDRESS", "redis.internal:6379")
	t.Setenv("LOADOUT_API_BUY_MULTIPLIER", "1.5")
	t.Setenv("LOADOUT_API_SUPPLIES_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, config.BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "redis.internal:6379", cfg.RedisAddress)
	assert.Equal(t, 1.5, cfg.BuyMultiplier)
	assert.False(t, cfg.SuppliesEnabled)
}

func TestLoadRejectsMalformedValue(t *testing.T) {
	t.Setenv("LOADOUT_API_PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	t.Setenv("LOADOUT_API_STORAGE", "s3")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage_backend")
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("LOADOUT_API_PORT", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidateRejectsNegativeMultiplier(t *testing.T) {
	t.Setenv("LOADOUT_API_BUY_MULTIPLIER", "-0.5")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buy_multiplier")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	t.Setenv("LOADOUT_API_LOG_LEVEL", "trace")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}
