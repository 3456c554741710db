package domain

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAtlassianEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvToken, "")
	t.Setenv(EnvDomain, "")
	os.Unsetenv(EnvEmail)
	os.Unsetenv(EnvToken)
	os.Unsetenv(EnvDomain)
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvEmail, "user@example.com")
	t.Setenv(EnvToken, "secret")
	t.Setenv(EnvDomain, "example")

	creds, err := CredentialsFromEnv(&Config{})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", creds.Email)
	assert.Equal(t, "secret", creds.Token)
	assert.Equal(t, "example", creds.Domain)
}

func TestCredentialsFromEnvMissingValues(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		token   string
		domain  string
		wantVar string
	}{
		{"missing email", "", "secret", "example", EnvEmail},
		{"missing token", "user@example.com", "", "example", EnvToken},
		{"missing domain", "user@example.com", "secret", "", EnvDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearAtlassianEnv(t)
			if tt.email != "" {
				t.Setenv(EnvEmail, tt.email)
			}
			if tt.token != "" {
				t.Setenv(EnvToken, tt.token)
			}
			if tt.domain != "" {
				t.Setenv(EnvDomain, tt.domain)
			}

			_, err := CredentialsFromEnv(&Config{})
			require.Error(t, err)

			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.wantVar, configErr.Variable)
			assert.Equal(t, tt.wantVar+" environment variable is required", err.Error())
		})
	}
}

func TestCredentialsFromEnvFileFallback(t *testing.T) {
	clearAtlassianEnv(t)
	t.Setenv(EnvEmail, "env@example.com")

	config := &Config{
		Atlassian: AtlassianConfig{
			Email:  "file@example.com",
			Token:  "file-token",
			Domain: "file-domain",
		},
	}

	creds, err := CredentialsFromEnv(config)
	require.NoError(t, err)
	// Environment wins over the file; the file fills the gaps.
	assert.Equal(t, "env@example.com", creds.Email)
	assert.Equal(t, "file-token", creds.Token)
	assert.Equal(t, "file-domain", creds.Domain)
}

func TestCredentialsBasicAuth(t *testing.T) {
	creds := &Credentials{Email: "user@example.com", Token: "secret", Domain: "example"}
	encoded := base64.StdEncoding.EncodeToString([]byte("user@example.com:secret"))
	assert.Equal(t, "Basic "+encoded, creds.BasicAuth())
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, &Config{}, config)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte("atlassian:\n  email: user@example.com\n  token: secret\n  domain: example\nlog:\n  level: debug\n")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", config.Atlassian.Email)
		assert.Equal(t, "debug", config.Log.Level)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("atlassian: ["), 0o600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
