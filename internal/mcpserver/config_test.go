package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASDOCEnv clears all OASDOC_* env vars to isolate tests from the ambient environment.
func clearOASDOCEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASDOC_CACHE_ENABLED", "OASDOC_CACHE_MAX_SIZE",
		"OASDOC_CACHE_FILE_TTL", "OASDOC_CACHE_URL_TTL",
		"OASDOC_CACHE_CONTENT_TTL", "OASDOC_CACHE_SWEEP_INTERVAL",
		"OASDOC_MAX_INLINE_SIZE", "OASDOC_MAX_SOURCE_SIZE",
		"OASDOC_ALLOW_PRIVATE_IPS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASDOCEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, int64(100*1024*1024), c.MaxSourceSize)
	assert.False(t, c.AllowPrivateIPs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASDOCEnv(t)
	t.Setenv("OASDOC_CACHE_ENABLED", "false")
	t.Setenv("OASDOC_CACHE_MAX_SIZE", "50")
	t.Setenv("OASDOC_CACHE_FILE_TTL", "30m")
	t.Setenv("OASDOC_CACHE_URL_TTL", "2m")
	t.Setenv("OASDOC_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OASDOC_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASDOC_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OASDOC_MAX_SOURCE_SIZE", "52428800")
	t.Setenv("OASDOC_ALLOW_PRIVATE_IPS", "true")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.Equal(t, int64(52428800), c.MaxSourceSize)
	assert.True(t, c.AllowPrivateIPs)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearOASDOCEnv(t)
	t.Setenv("OASDOC_CACHE_MAX_SIZE", "banana")
	t.Setenv("OASDOC_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("OASDOC_CACHE_ENABLED", "maybe")
	t.Setenv("OASDOC_CACHE_SWEEP_INTERVAL", "-10s")
	t.Setenv("OASDOC_MAX_INLINE_SIZE", "abc")
	t.Setenv("OASDOC_MAX_SOURCE_SIZE", "-1")

	c := loadConfig()

	// Invalid values should fall back to defaults.
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, int64(100*1024*1024), c.MaxSourceSize)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearOASDOCEnv(t)
	// Only override some values; others stay at defaults.
	t.Setenv("OASDOC_CACHE_MAX_SIZE", "42")
	t.Setenv("OASDOC_CACHE_URL_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.CacheMaxSize)
	assert.Equal(t, 10*time.Minute, c.CacheURLTTL)
	// Unchanged defaults:
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
	assert.False(t, c.AllowPrivateIPs)
}
