/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"io"
	"os"

	"github.com/snowman-cli/snowman/internal/orchestrator"
	"github.com/snowman-cli/snowman/internal/selector"
)

// Context holds shared dependencies injected into commands
type Context struct {
	LogLevel   string
	JsonOutput bool
	Verbose    bool
	ConfigPath string

	Resolver  orchestrator.ConfigResolver
	NewClient orchestrator.ClientFactory
	Selector  selector.Selector
	Executor  orchestrator.ShellExecutor

	// Stdout receives user-facing output; logs stay on stderr.
	Stdout io.Writer
}

// Out returns Stdout, or os.Stdout when unset.
func (c *Context) Out() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}

	return c.Stdout
}
