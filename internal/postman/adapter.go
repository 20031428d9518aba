/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package postman

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/snowman-cli/snowman/internal/config"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// Adapter maps the three read operations onto one API version: where they live,
// how they authenticate and how their bodies decode into the shared model.
type Adapter interface {
	Name() string
	DefaultBaseURL() string
	AuthHeader() string

	WorkspacesPath() string
	EnvironmentsPath(workspaceID string) string
	EnvironmentPath(environmentID string) string

	DecodeWorkspaces(body []byte) ([]Workspace, error)
	DecodeEnvironments(body []byte) ([]EnvironmentDigest, error)
	DecodeEnvironment(body []byte) (Environment, error)
}

// AdapterFor returns the adapter registered for an API version name.
func AdapterFor(version string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(version)) {
	case "", config.APIVersionSession:
		return SessionAdapter{}, nil
	case config.APIVersionPublic:
		return PublicAdapter{}, nil
	default:
		return nil, utils.ConfigInvalid.WithDetails("unsupported api version %q", version)
	}
}

func withWorkspace(path, workspaceID string) string {
	return fmt.Sprintf("%s?%s", path, url.Values{"workspace": {workspaceID}}.Encode())
}

func requireID(op, id string, index int) error {
	if strings.TrimSpace(id) == "" {
		return &DecodeError{Op: op, Err: fmt.Errorf("entry %d has no id", index)}
	}

	return nil
}
