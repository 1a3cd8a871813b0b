package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	require.NotNil(t, cfg)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "admin", cfg.Auth.AdminPassword)
	assert.Equal(t, 1500*time.Millisecond, cfg.Auth.LoginDelay)
	assert.Equal(t, time.Second, cfg.Rooms.BulkDelay)
	assert.False(t, cfg.Dashboard.CacheEnabled)
	assert.True(t, cfg.Reports.Enabled)
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ROOMS_BULK_DELAY", "250ms")
	v.Set("AUTH_LOGIN_DELAY", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := fromViper(v)
	assert.Equal(t, 250*time.Millisecond, cfg.Rooms.BulkDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Auth.LoginDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}
