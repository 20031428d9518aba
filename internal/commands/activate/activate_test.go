/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package activate

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/snowman-cli/snowman/internal/commands"
	"github.com/snowman-cli/snowman/internal/config"
	"github.com/snowman-cli/snowman/internal/environment"
	"github.com/snowman-cli/snowman/internal/orchestrator"
	"github.com/snowman-cli/snowman/internal/postman"
	"github.com/snowman-cli/snowman/internal/selector"
	"github.com/snowman-cli/snowman/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAPIClient is a mock implementation of orchestrator.APIClient
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) ListWorkspaces(ctx context.Context) ([]postman.Workspace, error) {
	args := m.Called(ctx)

	return args.Get(0).([]postman.Workspace), args.Error(1)
}

func (m *MockAPIClient) ListEnvironments(ctx context.Context, workspaceID string) ([]postman.EnvironmentDigest, error) {
	args := m.Called(ctx, workspaceID)

	return args.Get(0).([]postman.EnvironmentDigest), args.Error(1)
}

func (m *MockAPIClient) FetchEnvironment(ctx context.Context, environmentID string) (postman.Environment, error) {
	args := m.Called(ctx, environmentID)

	return args.Get(0).(postman.Environment), args.Error(1)
}

type recordingExecutor struct {
	results []environment.Result
	err     error
}

func (e *recordingExecutor) Exec(_ context.Context, result environment.Result) error {
	e.results = append(e.results, result)

	return e.err
}

func newTestContext(client *MockAPIClient, executor orchestrator.ShellExecutor, out *bytes.Buffer) *commands.Context {
	return &commands.Context{
		Resolver: commands.ResolverFunc(func() (config.Config, error) {
			return config.Config{Cookie: "tok-1", Domain: "https://team.postman.co", APIVersion: config.APIVersionSession}, nil
		}),
		NewClient: func(config.Credential) (orchestrator.APIClient, error) { return client, nil },
		Selector:  &selector.Scripted{},
		Executor:  executor,
		Stdout:    out,
	}
}

func happyClient() *MockAPIClient {
	client := &MockAPIClient{}
	client.On("ListWorkspaces", mock.Anything).Return([]postman.Workspace{{ID: "w1", Name: "Team A"}}, nil)
	client.On("ListEnvironments", mock.Anything, "w1").Return([]postman.EnvironmentDigest{{ID: "e1", Name: "Prod"}}, nil)
	client.On("FetchEnvironment", mock.Anything, "e1").Return(postman.Environment{
		ID:     "e1",
		Name:   "Prod",
		Values: []postman.Variable{{Key: "HOST", Value: "api.example.com", Enabled: true}},
	}, nil)

	return client
}

func TestActivateCmd_Run(t *testing.T) {
	var out bytes.Buffer

	executor := &recordingExecutor{}
	cmd := &ActivateCmd{}

	err := cmd.Run(newTestContext(happyClient(), executor, &out))
	require.NoError(t, err)

	expected := environment.Result{"SNOWMAN_HOST": "api.example.com", "_SNOWMAN_ENVIRONMENT_NAME": "Prod"}

	require.Len(t, executor.results, 1)
	assert.Equal(t, expected, executor.results[0])
	assert.Equal(t,
		"\nThe following environment variables have been set:\nSNOWMAN_HOST: api.example.com\n_SNOWMAN_ENVIRONMENT_NAME: Prod\n",
		out.String())
}

func TestActivateCmd_Run_DryRun(t *testing.T) {
	var out bytes.Buffer

	executor := &recordingExecutor{}
	cmd := &ActivateCmd{DryRun: true}

	require.NoError(t, cmd.Run(newTestContext(happyClient(), executor, &out)))

	assert.Empty(t, executor.results)
	assert.Contains(t, out.String(), environment.AuditHeader)
}

func TestActivateCmd_Run_JSON(t *testing.T) {
	var out bytes.Buffer

	ctx := newTestContext(happyClient(), nil, &out)
	ctx.JsonOutput = true

	cmd := &ActivateCmd{DryRun: true}
	require.NoError(t, cmd.Run(ctx))

	var result map[string]string

	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "api.example.com", result["SNOWMAN_HOST"])
}

func TestActivateCmd_Run_UnauthorizedNeverSpawns(t *testing.T) {
	var out bytes.Buffer

	client := &MockAPIClient{}
	client.On("ListWorkspaces", mock.Anything).Return([]postman.Workspace{{ID: "w1", Name: "Team A"}}, nil)
	client.On("ListEnvironments", mock.Anything, "w1").Return([]postman.EnvironmentDigest{{ID: "e1", Name: "Prod"}}, nil)
	client.On("FetchEnvironment", mock.Anything, "e1").Return(postman.Environment{}, &postman.RemoteError{Status: 401})

	executor := &recordingExecutor{}

	err := (&ActivateCmd{}).Run(newTestContext(client, executor, &out))

	var remoteErr *postman.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 401, remoteErr.Status)
	assert.ErrorIs(t, err, utils.RemoteRequestFailed)
	assert.Empty(t, executor.results)
	assert.Empty(t, out.String())
}

func TestActivateCmd_Run_MissingDependencies(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*commands.Context)
		expectedError error
	}{
		{
			name:          "no client factory",
			mutate:        func(c *commands.Context) { c.NewClient = nil },
			expectedError: utils.GenericFailure,
		},
		{
			name:          "no executor",
			mutate:        func(c *commands.Context) { c.Executor = nil },
			expectedError: utils.ShellSpawnFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			ctx := newTestContext(happyClient(), &recordingExecutor{}, &out)
			tt.mutate(ctx)

			err := (&ActivateCmd{}).Run(ctx)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestActivateCmd_Run_ExecutorError(t *testing.T) {
	var out bytes.Buffer

	executor := &recordingExecutor{err: utils.ShellSpawnFailed}

	err := (&ActivateCmd{}).Run(newTestContext(happyClient(), executor, &out))
	assert.ErrorIs(t, err, utils.ShellSpawnFailed)
}

func TestActivateCmd_Validate(t *testing.T) {
	cmd := &ActivateCmd{Workspace: "  Team A ", Environment: "\tProd\n"}

	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Team A", cmd.Workspace)
	assert.Equal(t, "Prod", cmd.Environment)
}
