package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	HTTP struct {
		Port int `yaml:"port"`
	} `yaml:"http"`
	SecretKey struct {
		Access string `yaml:"access"`
	} `yaml:"secretKey"`
	Auth struct {
		TokenTTL time.Duration `yaml:"tokenTTL"`
	} `yaml:"auth"`
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := "http:\n  port: 8080\nsecretKey:\n  access: from-file\nauth:\n  tokenTTL: 1h\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte(content), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[sampleConfig]("sample", rel)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[sampleConfig]("does-not-exist")
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(defaultRateLimitRate), cfg.RateLimit.Rate)
	assert.Equal(t, defaultRateLimitBurst, cfg.RateLimit.Burst)
	assert.NotNil(t, cfg.Migration)
	assert.False(t, cfg.Migration.AutoMigrate)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitorPeriod, cfg.Database.PoolMonitorInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour},
		RateLimit: &RateLimitConfig{Enabled: false, Rate: 1, Burst: 2, ExpiresIn: time.Minute},
	}
	cfg.applyDefaults()

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2, cfg.RateLimit.Burst)
}
