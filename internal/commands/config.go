/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/config"
	"github.com/snowman-cli/snowman/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ConfigCmd prints the resolved configuration. It never writes the file itself;
// only a missing or invalid file triggers the bootstrap editor.
type ConfigCmd struct {
	ConfigBaseCmd

	Format string `help:"Output format" enum:"toml,json,yaml" default:"toml" short:"f" name:"format"`
	Redact bool   `help:"Mask the cookie and API key in the output" name:"redact"`
}

// Run executes the config command
func (cmd *ConfigCmd) Run(ctx *Context) error {
	cfg, err := cmd.EnsureConfig(ctx)
	if err != nil {
		return err
	}

	if cmd.Redact {
		cfg.Cookie = utils.RedactSecret(cfg.Cookie)
		cfg.APIKey = utils.RedactSecret(cfg.APIKey)
	}

	format := cmd.Format
	if ctx.JsonOutput {
		format = FormatJSON
	}

	out, err := RenderConfig(cfg, format)
	if err != nil {
		return err
	}

	log.Tracef("Rendered configuration as %s", format)

	_, err = ctx.Out().Write(out)

	return err
}

// RenderConfig encodes cfg in the given format.
func RenderConfig(cfg config.Config, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML, "":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	default:
		return nil, utils.IncorrectCommandLineParameters.WithDetails("unsupported format %q", format)
	}
}
