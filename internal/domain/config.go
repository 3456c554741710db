package domain

import (
	"encoding/base64"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables holding Atlassian Cloud credentials.
const (
	EnvEmail  = "ATLASSIAN_EMAIL"
	EnvToken  = "ATLASSIAN_TOKEN"
	EnvDomain = "ATLASSIAN_DOMAIN"
)

// Config represents the optional server configuration file.
// Every value can also be supplied through the environment, which wins.
type Config struct {
	Atlassian AtlassianConfig `yaml:"atlassian"`
	Log       LogConfig       `yaml:"log"`
}

// AtlassianConfig holds fallback credentials for the Atlassian Cloud site.
type AtlassianConfig struct {
	Email  string `yaml:"email"`
	Token  string `yaml:"token"`
	Domain string `yaml:"domain"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name, default "info"
}

// LoadConfig reads the YAML configuration file at path. A missing file is
// not an error: the server can run on environment variables alone.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid YAML syntax in configuration file: %w", err)
	}

	return &config, nil
}

// Credentials holds the three values required for every outbound call.
// All three must be non-empty or client construction fails.
type Credentials struct {
	Email  string
	Token  string
	Domain string
}

// CredentialsFromEnv builds Credentials from the process environment,
// falling back to the configuration file for any value the environment does
// not set. The returned error names the missing environment variable so the
// operator knows exactly what to fix.
func CredentialsFromEnv(config *Config) (*Credentials, error) {
	var fallback AtlassianConfig
	if config != nil {
		fallback = config.Atlassian
	}

	creds := &Credentials{
		Email:  firstNonEmpty(os.Getenv(EnvEmail), fallback.Email),
		Token:  firstNonEmpty(os.Getenv(EnvToken), fallback.Token),
		Domain: firstNonEmpty(os.Getenv(EnvDomain), fallback.Domain),
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// Validate checks that every credential field is present.
func (c *Credentials) Validate() error {
	switch {
	case c.Email == "":
		return &ConfigError{Variable: EnvEmail}
	case c.Token == "":
		return &ConfigError{Variable: EnvToken}
	case c.Domain == "":
		return &ConfigError{Variable: EnvDomain}
	}
	return nil
}

// BasicAuth returns the precomputed Basic authentication header value
// derived from email:token.
func (c *Credentials) BasicAuth() string {
	encoded := base64.StdEncoding.EncodeToString([]byte(c.Email + ":" + c.Token))
	return "Basic " + encoded
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
