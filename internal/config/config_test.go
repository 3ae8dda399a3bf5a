package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, uint32(1), cfg.Kernel.Pid)
	assert.Equal(t, 1<<20, cfg.Kernel.HeapLimit)
	assert.Equal(t, 32, cfg.Kernel.MailboxCap)
	assert.Equal(t, uint32(60000), cfg.Kernel.MaxSleepMs)
	assert.False(t, cfg.Kernel.Trace)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MTOS_PID", "42")
	t.Setenv("MTOS_HEAP_LIMIT", "4096")
	t.Setenv("MTOS_TRACE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint32(42), cfg.Kernel.Pid)
	assert.Equal(t, 4096, cfg.Kernel.HeapLimit)
	assert.True(t, cfg.Kernel.Trace)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched keys keep their defaults.
	assert.Equal(t, 32, cfg.Kernel.MailboxCap)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("MTOS_HEAP_LIMIT", "not-a-number")

	_, err := Load()
	require.Error(t, err)

	cfg := LoadOrDefault()
	assert.Equal(t, 1<<20, cfg.Kernel.HeapLimit)
}
