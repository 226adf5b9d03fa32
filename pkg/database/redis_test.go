package database

import (
	"testing"

	"github.com/davidmoltin/command-center/pkg/config"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClientDisabled(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Enabled: false}}

	client, err := NewRedisClient(cfg, logger.NewForTesting())
	require.NoError(t, err)
	assert.Nil(t, client)

	// nil clients are safe to close and unwrap
	assert.Nil(t, client.Raw())
	assert.NoError(t, client.Close())
}

func TestNewRedisClientUnreachable(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}}

	_, err := NewRedisClient(cfg, logger.NewForTesting())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping redis")
}
