/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package postman

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/config"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// RequestIDHeader carries a per-request id so failures can be matched to debug logs.
const RequestIDHeader = "X-Request-Id"

// Client issues the read-only calls of an activation. It never retries.
type Client struct {
	baseURL    string
	token      string
	adapter    Adapter
	httpClient *http.Client
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client, which only has transport timeouts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithAdapter overrides the adapter selected from the credential's API version.
func WithAdapter(a Adapter) Option {
	return func(c *Client) {
		if a != nil {
			c.adapter = a
		}
	}
}

// New constructs a Client bound to a credential.
func New(cred config.Credential, opts ...Option) (*Client, error) {
	adapter, err := AdapterFor(cred.APIVersion)
	if err != nil {
		return nil, err
	}

	c := &Client{
		token:      strings.TrimSpace(cred.Token),
		adapter:    adapter,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	base := strings.TrimSpace(cred.BaseURL)
	if base == "" {
		base = c.adapter.DefaultBaseURL()
	}

	if base == "" {
		return nil, utils.ConfigInvalid.WithDetails("no base url for %s api", c.adapter.Name())
	}

	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	if _, err := url.Parse(base); err != nil {
		return nil, utils.ConfigInvalid.WithDetails("invalid base url: %v", err)
	}

	c.baseURL = strings.TrimRight(base, "/")

	return c, nil
}

// ListWorkspaces returns every workspace visible to the credential, in server order.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	body, err := c.get(ctx, c.adapter.WorkspacesPath())
	if err != nil {
		return nil, err
	}

	return c.adapter.DecodeWorkspaces(body)
}

// ListEnvironments returns the environment digests of one workspace, in server order.
func (c *Client) ListEnvironments(ctx context.Context, workspaceID string) ([]EnvironmentDigest, error) {
	body, err := c.get(ctx, c.adapter.EnvironmentsPath(workspaceID))
	if err != nil {
		return nil, err
	}

	return c.adapter.DecodeEnvironments(body)
}

// FetchEnvironment returns the full environment including its variables.
func (c *Client) FetchEnvironment(ctx context.Context, environmentID string) (Environment, error) {
	body, err := c.get(ctx, c.adapter.EnvironmentPath(environmentID))
	if err != nil {
		return Environment{}, err
	}

	return c.adapter.DecodeEnvironment(body)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	endpoint := c.baseURL + path
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(c.adapter.AuthHeader(), c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	logger := log.WithFields(log.Fields{"url": endpoint, "request_id": requestID})
	logger.Debug("Sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.RemoteRequestFailed.WithDetails("GET %s", path), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.RemoteRequestFailed.WithDetails("reading %s", path), err)
	}

	logger.WithField("status", resp.StatusCode).Debug("Received response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RemoteError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}
