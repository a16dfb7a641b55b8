// Package config loads CLI configuration from an optional YAML file and
// MINFRAUD_-prefixed environment variables, with env taking precedence.
package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Account Account `koanf:"account"`
	Service Service `koanf:"service"`
	Audit   Audit   `koanf:"audit"`
}

type Account struct {
	ID         int    `koanf:"id"`
	LicenseKey string `koanf:"license_key"`
}

type Service struct {
	Host      string   `koanf:"host"`
	Timeout   string   `koanf:"timeout"`
	Locales   []string `koanf:"locales"`
	Proxy     string   `koanf:"proxy"`
	HashEmail bool     `koanf:"hash_email"`
	// SkipValidation sends records without client-side schema checks.
	SkipValidation bool `koanf:"skip_validation"`
}

type Audit struct {
	// Path of the SQLite submission log. Empty disables auditing.
	Path string `koanf:"path"`
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Try to load from the config file first
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		// File not found is OK, we'll use env vars
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Load environment variables (can override file config)
	if err := k.Load(env.Provider("MINFRAUD_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "MINFRAUD_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("service.host") {
		k.Set("service.host", "minfraud.maxmind.com")
	}
	if !k.Exists("service.timeout") {
		k.Set("service.timeout", "60s")
	}
	if !k.Exists("service.locales") {
		k.Set("service.locales", []string{"en"})
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	// Substitute environment variables in the license key so config files
	// can reference ${MINFRAUD_LICENSE_KEY} without embedding the secret
	cfg.Account.LicenseKey = substituteEnvVars(cfg.Account.LicenseKey)

	return &cfg, nil
}

func substituteEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
