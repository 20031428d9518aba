/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package orchestrator

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/config"
	"github.com/snowman-cli/snowman/internal/environment"
	"github.com/snowman-cli/snowman/internal/postman"
	"github.com/snowman-cli/snowman/internal/selector"
)

const (
	WorkspacePrompt   = "Pick your workspace"
	EnvironmentPrompt = "Pick your environment"

	suggestionLimit = 3
)

// State is a step of the activation. Steps only ever move forward.
type State int

const (
	StateStart State = iota
	StateResolveConfig
	StateFetchWorkspaces
	StateSelectWorkspace
	StateFetchEnvironments
	StateSelectEnvironment
	StateFetchEnvironmentDetail
	StateMaterialize
	StateSucceeded
	StateFailed
)

var stateNames = map[State]string{
	StateStart:                  "Start",
	StateResolveConfig:          "ResolveConfig",
	StateFetchWorkspaces:        "FetchWorkspaces",
	StateSelectWorkspace:        "SelectWorkspace",
	StateFetchEnvironments:      "FetchEnvironments",
	StateSelectEnvironment:      "SelectEnvironment",
	StateFetchEnvironmentDetail: "FetchEnvironmentDetail",
	StateMaterialize:            "Materialize",
	StateSucceeded:              "Succeeded",
	StateFailed:                 "Failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// ConfigResolver yields the credentials for a run.
type ConfigResolver interface {
	Resolve() (config.Config, error)
}

// APIClient is the read-only remote surface used by an activation.
type APIClient interface {
	ListWorkspaces(ctx context.Context) ([]postman.Workspace, error)
	ListEnvironments(ctx context.Context, workspaceID string) ([]postman.EnvironmentDigest, error)
	FetchEnvironment(ctx context.Context, environmentID string) (postman.Environment, error)
}

// ClientFactory builds an APIClient once the credential is known.
type ClientFactory func(cred config.Credential) (APIClient, error)

// NewPostmanClient is the ClientFactory backed by the HTTP client.
func NewPostmanClient(opts ...postman.Option) ClientFactory {
	return func(cred config.Credential) (APIClient, error) {
		return postman.New(cred, opts...)
	}
}

// Options wires the collaborators of an ActivationOrchestrator.
type Options struct {
	Resolver  ConfigResolver
	NewClient ClientFactory
	Selector  selector.Selector
	// Workspace and Environment preselect by id or name; empty falls back to the
	// values remembered in the config file.
	Workspace   string
	Environment string
}

// Activation is everything chosen and produced by a successful run.
type Activation struct {
	Config      config.Config
	Workspace   postman.Workspace
	Environment postman.Environment
	Result      environment.Result
}

// ActivationOrchestrator sequences config, remote lookups and selections into an environment.
type ActivationOrchestrator struct {
	opts        Options
	state       State
	transitions []State
}

// NewActivationOrchestrator creates an orchestrator in the Start state.
func NewActivationOrchestrator(opts Options) *ActivationOrchestrator {
	return &ActivationOrchestrator{opts: opts, state: StateStart, transitions: []State{StateStart}}
}

// State returns the current step.
func (o *ActivationOrchestrator) State() State {
	return o.state
}

// Transitions returns every state entered so far, in order.
func (o *ActivationOrchestrator) Transitions() []State {
	return append([]State(nil), o.transitions...)
}

// Execute runs every step up to Materialize. The first failing step ends the run.
func (o *ActivationOrchestrator) Execute(ctx context.Context) (Activation, error) {
	var activation Activation

	// Step 1: Credentials
	o.enter(StateResolveConfig)

	cfg, err := o.opts.Resolver.Resolve()
	if err != nil {
		return activation, o.fail(err)
	}

	activation.Config = cfg

	client, err := o.opts.NewClient(cfg.Credential())
	if err != nil {
		return activation, o.fail(err)
	}

	// Step 2: Workspaces
	o.enter(StateFetchWorkspaces)

	workspaces, err := client.ListWorkspaces(ctx)
	if err != nil {
		return activation, o.fail(fmt.Errorf("failed to list workspaces: %w", err))
	}

	o.enter(StateSelectWorkspace)

	ids, names := make([]string, len(workspaces)), make([]string, len(workspaces))
	for i, w := range workspaces {
		ids[i], names[i] = w.ID, w.Name
	}

	idx, err := o.choose(WorkspacePrompt, firstNonEmpty(o.opts.Workspace, cfg.Workspace), ids, names)
	if err != nil {
		return activation, o.fail(err)
	}

	activation.Workspace = workspaces[idx]
	log.Infof("Using workspace %q", activation.Workspace.Name)

	// Step 3: Environments of the chosen workspace
	o.enter(StateFetchEnvironments)

	digests, err := client.ListEnvironments(ctx, activation.Workspace.ID)
	if err != nil {
		return activation, o.fail(fmt.Errorf("failed to list environments: %w", err))
	}

	o.enter(StateSelectEnvironment)

	ids, names = make([]string, len(digests)), make([]string, len(digests))
	for i, d := range digests {
		ids[i], names[i] = d.ID, d.DisplayName()
	}

	idx, err = o.choose(EnvironmentPrompt, firstNonEmpty(o.opts.Environment, cfg.Environment), ids, names)
	if err != nil {
		return activation, o.fail(err)
	}

	// Step 4: Variables of the chosen environment
	o.enter(StateFetchEnvironmentDetail)

	env, err := client.FetchEnvironment(ctx, digests[idx].ID)
	if err != nil {
		return activation, o.fail(fmt.Errorf("failed to fetch environment: %w", err))
	}

	activation.Environment = env
	log.Infof("Using environment %q with %d variables", env.DisplayName(), len(env.Values))

	// Step 5: Materialize
	o.enter(StateMaterialize)

	activation.Result = environment.Materialize(env)

	o.enter(StateSucceeded)

	return activation, nil
}

// choose resolves a preselection query against ids then exact names, and prompts otherwise.
func (o *ActivationOrchestrator) choose(prompt, query string, ids, names []string) (int, error) {
	if query != "" && len(names) > 0 {
		for i, id := range ids {
			if id == query {
				return i, nil
			}
		}

		if i, ok := selector.MatchByName(query, names); ok {
			log.Debugf("%s: %q matched %q", prompt, query, names[i])

			return i, nil
		}

		if similar := selector.Suggest(query, names, suggestionLimit); len(similar) > 0 {
			log.Warnf("%s: nothing is named %q (similar: %s), asking instead", prompt, query, strings.Join(similar, ", "))
		} else {
			log.Warnf("%s: nothing is named %q, asking instead", prompt, query)
		}
	}

	return selector.Pick(o.opts.Selector, prompt, names)
}

func (o *ActivationOrchestrator) enter(s State) {
	log.Debugf("Activation %s -> %s", o.state, s)

	o.state = s
	o.transitions = append(o.transitions, s)
}

func (o *ActivationOrchestrator) fail(err error) error {
	log.Debugf("Activation failed during %s: %v", o.state, err)

	o.enter(StateFailed)

	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
