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

// PublicAPIURL is the default base URL of the public Postman API.
const PublicAPIURL = "https://api.getpostman.com"

// PublicAdapter speaks the public Postman API authenticated with an API key.
type PublicAdapter struct{}

type publicVariable struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
}

type publicEnvironment struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Owner     string           `json:"owner"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	IsPublic  bool             `json:"isPublic"`
	Values    []publicVariable `json:"values"`
}

type publicWorkspacesResponse struct {
	Workspaces *[]struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Type       string `json:"type"`
		Visibility string `json:"visibility"`
	} `json:"workspaces"`
}

type publicEnvironmentsResponse struct {
	Environments *[]publicEnvironment `json:"environments"`
}

type publicEnvironmentResponse struct {
	Environment *publicEnvironment `json:"environment"`
}

func (PublicAdapter) Name() string { return "public" }

func (PublicAdapter) DefaultBaseURL() string { return PublicAPIURL }

func (PublicAdapter) AuthHeader() string { return "X-Api-Key" }

func (PublicAdapter) WorkspacesPath() string { return "/workspaces" }

func (PublicAdapter) EnvironmentsPath(workspaceID string) string {
	return withWorkspace("/environments", workspaceID)
}

func (PublicAdapter) EnvironmentPath(environmentID string) string {
	return "/environments/" + url.PathEscape(environmentID)
}

func (PublicAdapter) DecodeWorkspaces(body []byte) ([]Workspace, error) {
	const op = "workspaces"

	var resp publicWorkspacesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	if resp.Workspaces == nil {
		return nil, &DecodeError{Op: op, Err: errors.New("missing workspaces field")}
	}

	workspaces := make([]Workspace, 0, len(*resp.Workspaces))

	for i, w := range *resp.Workspaces {
		if err := requireID(op, w.ID, i); err != nil {
			return nil, err
		}

		workspaces = append(workspaces, Workspace{ID: w.ID, Name: w.Name, Type: w.Type, Visibility: w.Visibility})
	}

	return workspaces, nil
}

func (PublicAdapter) DecodeEnvironments(body []byte) ([]EnvironmentDigest, error) {
	const op = "environments"

	var resp publicEnvironmentsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	if resp.Environments == nil {
		return nil, &DecodeError{Op: op, Err: errors.New("missing environments field")}
	}

	digests := make([]EnvironmentDigest, 0, len(*resp.Environments))

	for i, e := range *resp.Environments {
		if err := requireID(op, e.ID, i); err != nil {
			return nil, err
		}

		digests = append(digests, EnvironmentDigest{
			ID:        e.ID,
			Name:      e.Name,
			Owner:     e.Owner,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}

	return digests, nil
}

func (PublicAdapter) DecodeEnvironment(body []byte) (Environment, error) {
	const op = "environment"

	var resp publicEnvironmentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Environment{}, &DecodeError{Op: op, Err: err}
	}

	if resp.Environment == nil {
		return Environment{}, &DecodeError{Op: op, Err: errors.New("missing environment field")}
	}

	e := resp.Environment
	if err := requireID(op, e.ID, 0); err != nil {
		return Environment{}, err
	}

	return Environment{
		ID:        e.ID,
		Name:      e.Name,
		Values:    toVariables(e.Values),
		Owner:     e.Owner,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		IsPublic:  e.IsPublic,
	}, nil
}

func toVariables(raw []publicVariable) []Variable {
	vars := make([]Variable, 0, len(raw))
	for _, v := range raw {
		vars = append(vars, Variable{Key: v.Key, Value: v.Value, Enabled: v.Enabled, Type: v.Type})
	}

	return vars
}
