/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package cli provides the Kong command line and seeds flag defaults from snowman.toml.
//
// Values remembered in the configuration file (api_version, workspace, environment)
// become the defaults of the matching flags. Flags given on the command line win.
package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/snowman-cli/snowman/internal/config"
)

// ConfigResolver creates a resolver that maps snowman.toml values to Kong flags.
// A missing file yields a resolver that resolves nothing.
func ConfigResolver(configPath string) (kong.Resolver, error) {
	if configPath == "" {
		return emptyResolver(), nil
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return emptyResolver(), nil
	}

	var cfg config.Config

	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return nil, err
	}

	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		switch flag.Name {
		case "api-version":
			if cfg.APIVersion != "" {
				return cfg.APIVersion, nil
			}

		case "workspace":
			if cfg.Workspace != "" {
				return cfg.Workspace, nil
			}

		case "environment":
			if cfg.Environment != "" {
				return cfg.Environment, nil
			}
		}

		return nil, nil
	}), nil
}

func emptyResolver() kong.Resolver {
	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		return nil, nil
	})
}
