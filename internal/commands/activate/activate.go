/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package activate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/commands"
	"github.com/snowman-cli/snowman/internal/environment"
	"github.com/snowman-cli/snowman/internal/orchestrator"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// ActivateCmd picks a workspace and environment, prints the variables it exports and
// opens a subshell with them. --workspace and --environment skip the matching prompt.
type ActivateCmd struct {
	commands.ConfigBaseCmd

	Workspace   string `help:"Workspace id or name to use without prompting" short:"w" name:"workspace"`
	Environment string `help:"Environment id or name to use without prompting" short:"e" name:"environment"`
	DryRun      bool   `help:"Print the variables without starting a subshell" name:"dry-run"`
}

// Validate normalizes the preselection queries
func (cmd *ActivateCmd) Validate() error {
	cmd.Workspace = strings.TrimSpace(cmd.Workspace)
	cmd.Environment = strings.TrimSpace(cmd.Environment)

	return nil
}

// Run executes the activate command
func (cmd *ActivateCmd) Run(ctx *commands.Context) error {
	if ctx.NewClient == nil || ctx.Selector == nil {
		return utils.GenericFailure.WithDetails("activation requires an API client and a selector")
	}

	orch := orchestrator.NewActivationOrchestrator(orchestrator.Options{
		Resolver:    cmd.Resolver(ctx),
		NewClient:   ctx.NewClient,
		Selector:    ctx.Selector,
		Workspace:   cmd.Workspace,
		Environment: cmd.Environment,
	})

	activation, err := orch.Execute(context.Background())
	if err != nil {
		return err
	}

	if err := cmd.report(ctx, activation.Result); err != nil {
		return err
	}

	if cmd.DryRun {
		log.Info("Dry run, no subshell started")

		return nil
	}

	if ctx.Executor == nil {
		return utils.ShellSpawnFailed.WithDetails("no shell executor configured")
	}

	log.Debugf("Opening subshell for %q", activation.Result.Name())

	return ctx.Executor.Exec(context.Background(), activation.Result)
}

// report prints the audit list, or the raw mapping when JSON output is requested.
func (cmd *ActivateCmd) report(ctx *commands.Context, result environment.Result) error {
	if !ctx.JsonOutput {
		return environment.WriteAudit(ctx.Out(), result)
	}

	outBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.Out(), string(outBytes))

	return err
}
