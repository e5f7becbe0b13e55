package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultReconcileAttempts, cfg.Auth.ReconcileAttempts)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 200*time.Millisecond, cfg.Env.Log.SlowQuery)
	require.NotNil(t, cfg.Facebook)
	assert.Equal(t, "https://graph.facebook.com", cfg.Facebook.GraphURL)
	assert.Equal(t, defaultFacebookTimeout, cfg.Facebook.Timeout)
	assert.NotNil(t, cfg.GoogleOAuth)
	assert.NotNil(t, cfg.Migration)
	assert.Nil(t, cfg.PasswordStrength)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:     &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour, ReconcileAttempts: 5},
		Facebook: &FacebookConfig{GraphURL: "http://graph.local", Timeout: time.Second},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5, cfg.Auth.ReconcileAttempts)
	assert.Equal(t, "http://graph.local", cfg.Facebook.GraphURL)
	assert.Equal(t, time.Second, cfg.Facebook.Timeout)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
}
