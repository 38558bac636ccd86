package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "socialmedia", cfg.DynamoDBTable)
	assert.Equal(t, "GSI1", cfg.GSI1Name)
	assert.Equal(t, "GSI2", cfg.GSI2Name)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.NotEmpty(t, cfg.JWTSecret, "development gets a fallback secret")
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("TABLE_NAME", "custom-table")
	t.Setenv("TOKEN_TTL_HOURS", "24")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, "custom-table", cfg.DynamoDBTable)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.EnableCORS)
}

func TestValidateProduction(t *testing.T) {
	t.Run("requires JWT secret", func(t *testing.T) {
		cfg := &Config{Environment: "production", DynamoDBTable: "t", MediaBucket: "b"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("requires table and bucket", func(t *testing.T) {
		cfg := &Config{Environment: "production", JWTSecret: "s"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("passes with everything set", func(t *testing.T) {
		cfg := &Config{
			Environment:   "production",
			JWTSecret:     "s",
			DynamoDBTable: "t",
			MediaBucket:   "b",
		}
		assert.NoError(t, cfg.Validate())
		assert.True(t, cfg.IsProduction())
	})
}
