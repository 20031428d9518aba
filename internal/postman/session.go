/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package postman

import (
	"encoding/json"
	"errors"
	"net/url"
)

// SessionAdapter speaks the browser session API served from a team domain,
// authenticated with the postman.sid cookie.
type SessionAdapter struct{}

type sessionMeta struct {
	Model      string             `json:"model"`
	Action     string             `json:"action"`
	ForkedFrom *sessionForkedFrom `json:"forkedFrom"`
}

type sessionForkedFrom struct {
	ID        string `json:"id"`
	ForkName  string `json:"forkName"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type sessionWorkspace struct {
	Meta    sessionMeta `json:"meta"`
	ModelID string      `json:"model_id"`
	Data    struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		Type             string `json:"type"`
		VisibilityStatus string `json:"visibilityStatus"`
	} `json:"data"`
}

type sessionEnvironment struct {
	Meta    sessionMeta `json:"meta"`
	ModelID string      `json:"model_id"`
	Data    *struct {
		ID            string           `json:"id"`
		Name          string           `json:"name"`
		Owner         string           `json:"owner"`
		Team          *string          `json:"team"`
		LastUpdatedBy string           `json:"lastUpdatedBy"`
		CreatedAt     string           `json:"createdAt"`
		UpdatedAt     string           `json:"updatedAt"`
		Values        []publicVariable `json:"values"`
	} `json:"data"`
}

func (SessionAdapter) Name() string { return "session" }

func (SessionAdapter) DefaultBaseURL() string { return "" }

func (SessionAdapter) AuthHeader() string { return "Cookie" }

func (SessionAdapter) WorkspacesPath() string { return "/_api/workspace" }

func (SessionAdapter) EnvironmentsPath(workspaceID string) string {
	return withWorkspace("/_api/environment", workspaceID)
}

func (SessionAdapter) EnvironmentPath(environmentID string) string {
	return "/_api/environment/" + url.PathEscape(environmentID)
}

func (SessionAdapter) DecodeWorkspaces(body []byte) ([]Workspace, error) {
	const op = "workspaces"

	var raw []sessionWorkspace
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	workspaces := make([]Workspace, 0, len(raw))

	for i, w := range raw {
		id := firstNonEmpty(w.ModelID, w.Data.ID)
		if err := requireID(op, id, i); err != nil {
			return nil, err
		}

		workspaces = append(workspaces, Workspace{
			ID:         id,
			Name:       w.Data.Name,
			Type:       w.Data.Type,
			Visibility: w.Data.VisibilityStatus,
		})
	}

	return workspaces, nil
}

func (SessionAdapter) DecodeEnvironments(body []byte) ([]EnvironmentDigest, error) {
	const op = "environments"

	var raw []sessionEnvironment
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	digests := make([]EnvironmentDigest, 0, len(raw))

	for i, e := range raw {
		env, err := e.toEnvironment(op, i)
		if err != nil {
			return nil, err
		}

		digests = append(digests, EnvironmentDigest{
			ID:         env.ID,
			Name:       env.Name,
			Owner:      env.Owner,
			CreatedAt:  env.CreatedAt,
			UpdatedAt:  env.UpdatedAt,
			ForkedFrom: env.ForkedFrom,
		})
	}

	return digests, nil
}

func (SessionAdapter) DecodeEnvironment(body []byte) (Environment, error) {
	const op = "environment"

	var raw sessionEnvironment
	if err := json.Unmarshal(body, &raw); err != nil {
		return Environment{}, &DecodeError{Op: op, Err: err}
	}

	return raw.toEnvironment(op, 0)
}

func (e sessionEnvironment) toEnvironment(op string, index int) (Environment, error) {
	if e.Data == nil {
		return Environment{}, &DecodeError{Op: op, Err: errors.New("missing data object")}
	}

	id := firstNonEmpty(e.ModelID, e.Data.ID)
	if err := requireID(op, id, index); err != nil {
		return Environment{}, err
	}

	env := Environment{
		ID:        id,
		Name:      e.Data.Name,
		Values:    toVariables(e.Data.Values),
		Owner:     e.Data.Owner,
		CreatedAt: e.Data.CreatedAt,
		UpdatedAt: e.Data.UpdatedAt,
	}

	if f := e.Meta.ForkedFrom; f != nil {
		env.ForkedFrom = &ForkedFrom{ID: f.ID, ForkName: f.ForkName, Name: f.Name, CreatedAt: f.CreatedAt}
	}

	return env, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
