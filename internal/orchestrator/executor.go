/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/environment"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// ShellExecutor hands an activation result to a child process.
type ShellExecutor interface {
	Exec(ctx context.Context, result environment.Result) error
}

// SubshellExecutor starts the user's shell with the inherited environment plus the result
// and waits for it. The shell's own exit status is not reported.
type SubshellExecutor struct {
	Shell   string
	Args    []string
	Environ func() []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewSubshellExecutor uses $SHELL attached to the current terminal.
func NewSubshellExecutor() *SubshellExecutor {
	return &SubshellExecutor{
		Shell:   utils.LookupEnv(utils.ShellEnv),
		Environ: os.Environ,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Exec runs the shell to completion. Only a failure to start it is an error.
func (e *SubshellExecutor) Exec(ctx context.Context, result environment.Result) error {
	if e.Shell == "" {
		return utils.ShellSpawnFailed.WithDetails("$%s is not set", utils.ShellEnv)
	}

	environ := e.Environ
	if environ == nil {
		environ = os.Environ
	}

	cmd := exec.CommandContext(ctx, e.Shell, e.Args...)
	cmd.Env = result.Merge(environ())
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	// Interrupts typed in the subshell belong to it, not to us.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", utils.ShellSpawnFailed.WithDetails("cannot start %s", e.Shell), err)
	}

	log.Debugf("Started %s (pid %d) for environment %q", e.Shell, cmd.Process.Pid, result.Name())

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debugf("Subshell exited with status %d", exitErr.ExitCode())
		} else {
			log.Warnf("Subshell ended abnormally: %v", err)
		}
	}

	return nil
}

// DirectExecutor executes through a function (for testing or embedded use)
type DirectExecutor struct {
	ExecFunc func(ctx context.Context, result environment.Result) error
}

// Exec calls ExecFunc when set.
func (e *DirectExecutor) Exec(ctx context.Context, result environment.Result) error {
	if e.ExecFunc != nil {
		return e.ExecFunc(ctx, result)
	}

	return nil
}
