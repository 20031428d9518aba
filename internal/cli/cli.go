/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/commands"
	"github.com/snowman-cli/snowman/internal/commands/activate"
	"github.com/snowman-cli/snowman/internal/config"
	"github.com/snowman-cli/snowman/internal/orchestrator"
	"github.com/snowman-cli/snowman/internal/selector"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// Global flags that apply to all commands
type Globals struct {
	ConfigPath string `help:"Path to the configuration file (default $XDG_CONFIG_HOME/snowman/snowman.toml)" name:"config" type:"path"`
	APIVersion string `help:"Postman API to talk to: session (cookie) or public (API key)" name:"api-version"`

	LogLevel   string `help:"Set log level" default:"info" enum:"trace,debug,info,warn,error,fatal,panic"`
	JsonOutput bool   `help:"Output in JSON format" name:"json" short:"j"`
	Verbose    bool   `help:"Enable verbose logging" name:"verbose" short:"v"`
}

// CLI represents the complete command line interface
type CLI struct {
	Globals

	Activate activate.ActivateCmd `cmd:"activate" help:"Activate a subshell with the variables of a Postman environment"`
	Config   commands.ConfigCmd   `cmd:"config" help:"Print the current configuration to stdout"`
	Version  commands.VersionCmd  `cmd:"version" help:"Display the current version of snowman"`
}

// AfterApply sets up the context and applies global settings after flags are parsed
func (g *Globals) AfterApply(ctx *kong.Context) error {
	// Configure logging based on flags
	if g.Verbose {
		log.SetLevel(log.TraceLevel)
	} else {
		lvl, err := log.ParseLevel(g.LogLevel)
		if err != nil {
			log.Warn(err)
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(lvl)
		}
	}

	// Configure log format
	if g.JsonOutput {
		log.SetFormatter(&log.JSONFormatter{
			DisableHTMLEscape: true,
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	g.APIVersion = strings.ToLower(strings.TrimSpace(g.APIVersion))
	switch g.APIVersion {
	case "", config.APIVersionSession, config.APIVersionPublic:
	default:
		return utils.IncorrectCommandLineParameters.WithDetails("--api-version must be %q or %q, got %q",
			config.APIVersionSession, config.APIVersionPublic, g.APIVersion)
	}

	return nil
}

// Dependencies are the collaborators handed to commands through commands.Context.
type Dependencies struct {
	Bootstrapper config.Bootstrapper
	NewClient    orchestrator.ClientFactory
	Selector     selector.Selector
	Executor     orchestrator.ShellExecutor
	Stdout       io.Writer
}

// DefaultDependencies talks to Postman over HTTP, prompts on the terminal and opens $SHELL.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Bootstrapper: config.NewEditorBootstrapper(),
		NewClient:    orchestrator.NewPostmanClient(),
		Selector:     selector.NewFuzzySelector(),
		Executor:     orchestrator.NewSubshellExecutor(),
		Stdout:       os.Stdout,
	}
}

// Parse creates a new Kong parser and parses the command line
func Parse(args []string) (*kong.Context, *CLI, error) {
	var cli CLI

	configFile := configPathFromArgs(args)

	log.Debugf("Using configuration file: %s", configFile)

	options := []kong.Option{
		kong.Name(utils.ProjectName),
		kong.Description(strings.TrimSpace(utils.HelpHeader)),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}

	if resolver, err := ConfigResolver(configFile); err != nil {
		log.Debugf("Ignoring configuration file for flag defaults: %v", err)
	} else {
		options = append(options, kong.Resolvers(resolver))
	}

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return nil, nil, err
	}

	// Slice off program name if present
	var parseArgs []string
	if len(args) > 1 {
		parseArgs = args[1:]
	} else {
		parseArgs = []string{}
	}

	ctx, perr := parser.Parse(parseArgs)
	if perr != nil {
		return nil, nil, perr
	}

	// Commands load the same file that seeded the flag defaults
	cli.ConfigPath = configFile

	return ctx, &cli, nil
}

// configPathFromArgs finds --config ahead of parsing, falling back to the default location.
// Only the command line overrides the location; flags never come from the environment.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}

		if arg == "--config" && i+1 < len(args) {
			return kong.ExpandPath(args[i+1])
		}

		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			return kong.ExpandPath(value)
		}
	}

	p, err := config.Path()
	if err != nil {
		log.Debugf("No default configuration location: %v", err)

		return ""
	}

	return p
}

// Execute runs the parsed command with the default dependencies
func Execute(args []string) error {
	return ExecuteWith(args, DefaultDependencies())
}

// ExecuteWith runs the parsed command with the given dependencies (useful for testing)
func ExecuteWith(args []string, deps Dependencies) error {
	kctx, cli, err := Parse(args)
	if err != nil {
		return fmt.Errorf("%w: %w", utils.IncorrectCommandLineParameters, err)
	}

	configPath := cli.ConfigPath
	if configPath == "" {
		return utils.ConfigMissing.WithDetails("cannot locate the configuration file")
	}

	// Create shared context
	appCtx := &commands.Context{
		LogLevel:   cli.LogLevel,
		JsonOutput: cli.JsonOutput,
		Verbose:    cli.Verbose,
		ConfigPath: configPath,
		Resolver: config.Resolver{
			Path:         configPath,
			APIVersion:   cli.APIVersion,
			Bootstrapper: deps.Bootstrapper,
		},
		NewClient: deps.NewClient,
		Selector:  deps.Selector,
		Executor:  deps.Executor,
		Stdout:    deps.Stdout,
	}

	return kctx.Run(appCtx)
}
