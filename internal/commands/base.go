/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/config"
	"github.com/snowman-cli/snowman/internal/orchestrator"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// ResolverFunc adapts a function to orchestrator.ConfigResolver.
type ResolverFunc func() (config.Config, error)

// Resolve calls f.
func (f ResolverFunc) Resolve() (config.Config, error) {
	return f()
}

// ConfigBaseCmd provides the resolved configuration to every command that needs
// credentials, resolving (and possibly bootstrapping) it at most once per run.
type ConfigBaseCmd struct {
	Resolved config.Config `kong:"-"`
	// resolved ensures the resolver, and any editor it opens, runs once.
	resolved bool `kong:"-"`
}

// EnsureConfig resolves the configuration through ctx.Resolver on first use.
func (cmd *ConfigBaseCmd) EnsureConfig(ctx *Context) (config.Config, error) {
	if cmd.resolved {
		return cmd.Resolved, nil
	}

	if ctx.Resolver == nil {
		return config.Config{}, utils.ConfigMissing.WithDetails("no configuration source")
	}

	log.Trace("Resolving configuration")

	cfg, err := ctx.Resolver.Resolve()
	if err != nil {
		return cfg, err
	}

	cmd.Resolved = cfg
	cmd.resolved = true

	return cfg, nil
}

// Resolver exposes EnsureConfig to code that expects an orchestrator.ConfigResolver.
func (cmd *ConfigBaseCmd) Resolver(ctx *Context) orchestrator.ConfigResolver {
	return ResolverFunc(func() (config.Config, error) {
		return cmd.EnsureConfig(ctx)
	})
}
