/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/pkg/utils"
)

const (
	// DirName is the directory created under the configuration home
	DirName = "snowman"
	// FileName is the configuration file inside DirName
	FileName = "snowman.toml"

	APIVersionSession = "session"
	APIVersionPublic  = "public"
)

// Config mirrors snowman.toml. It is read from the file only: SNOWMAN_* names in the
// environment belong to activated variables, not to settings.
type Config struct {
	Cookie      string `toml:"cookie" json:"cookie" yaml:"cookie"`
	Domain      string `toml:"domain" json:"domain" yaml:"domain"`
	APIKey      string `toml:"api_key,omitempty" json:"api_key,omitempty" yaml:"api_key,omitempty"`
	APIURL      string `toml:"api_url,omitempty" json:"api_url,omitempty" yaml:"api_url,omitempty"`
	APIVersion  string `toml:"api_version,omitempty" json:"api_version,omitempty" yaml:"api_version,omitempty"`
	Workspace   string `toml:"workspace,omitempty" json:"workspace,omitempty" yaml:"workspace,omitempty"`
	Environment string `toml:"environment,omitempty" json:"environment,omitempty" yaml:"environment,omitempty"`
	Team        string `toml:"team,omitempty" json:"team,omitempty" yaml:"team,omitempty"`
}

// Credential is the token and endpoint the API client authenticates with.
type Credential struct {
	Token      string
	BaseURL    string
	APIVersion string
}

// Path returns the configuration file location, honouring XDG_CONFIG_HOME.
func Path() (string, error) {
	if dir := utils.LookupEnvOrDefault(utils.ConfigHomeEnv, ""); dir != "" {
		return filepath.Join(dir, DirName, FileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", DirName, FileName), nil
}

// LoadConfig loads a configuration from a TOML file
func LoadConfig(path string) (Config, error) {
	return load(path, "")
}

// load reads path and, when apiVersion is set, replaces the file's api_version before validation.
func load(path, apiVersion string) (Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, utils.ConfigMissing.WithDetails("%s does not exist", path)
		}

		return cfg, fmt.Errorf("%w: %w", utils.ConfigMissing.WithDetails("cannot access %s", path), err)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", utils.ConfigInvalid.WithDetails("cannot parse %s", path), err)
	}

	if apiVersion != "" {
		cfg.APIVersion = apiVersion
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Cookie = strings.TrimSpace(c.Cookie)
	c.Domain = strings.TrimRight(strings.TrimSpace(c.Domain), "/")
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")

	c.APIVersion = strings.ToLower(strings.TrimSpace(c.APIVersion))
	if c.APIVersion == "" {
		c.APIVersion = APIVersionSession
	}
}

// Validate checks the credential fields required by the selected API version.
func (c Config) Validate() error {
	switch c.APIVersion {
	case APIVersionSession:
		if c.Cookie == "" {
			return utils.ConfigInvalid.WithDetails("cookie is required")
		}

		if c.Domain == "" {
			return utils.ConfigInvalid.WithDetails("domain is required")
		}
	case APIVersionPublic:
		if c.APIKey == "" {
			return utils.ConfigInvalid.WithDetails("api_key is required when api_version is %q", APIVersionPublic)
		}
	default:
		return utils.ConfigInvalid.WithDetails("unsupported api_version %q", c.APIVersion)
	}

	return nil
}

// Credential returns the token for the configured API version.
func (c Config) Credential() Credential {
	if c.APIVersion == APIVersionPublic {
		return Credential{Token: c.APIKey, BaseURL: c.APIURL, APIVersion: c.APIVersion}
	}

	return Credential{Token: c.Cookie, BaseURL: c.Domain, APIVersion: c.APIVersion}
}

// Resolver loads the configuration, bootstrapping it once when it is missing or invalid.
// A non-empty APIVersion takes precedence over the file.
type Resolver struct {
	Path         string
	APIVersion   string
	Bootstrapper Bootstrapper
}

// Resolve returns a valid configuration or the error that prevented one.
func (r Resolver) Resolve() (Config, error) {
	cfg, err := load(r.Path, r.APIVersion)
	if err == nil {
		return cfg, nil
	}

	if r.Bootstrapper == nil || !(errors.Is(err, utils.ConfigMissing) || errors.Is(err, utils.ConfigInvalid)) {
		return cfg, err
	}

	log.Warnf("Configuration unavailable (%v), starting bootstrap", err)

	if berr := r.Bootstrapper.Bootstrap(r.Path); berr != nil {
		return cfg, fmt.Errorf("%w: %w", utils.ConfigInvalid.WithDetails("bootstrap failed"), berr)
	}

	return load(r.Path, r.APIVersion)
}
