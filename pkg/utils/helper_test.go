/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupEnvOrString_Default(t *testing.T) {
	result := LookupEnv("SNOWMAN_TEST_UNSET_VARIABLE")
	assert.Equal(t, "", result)
}

func TestLookupEnvOrDefault(t *testing.T) {
	t.Setenv("SNOWMAN_TEST_SET", "  value  ")
	t.Setenv("SNOWMAN_TEST_BLANK", "   ")

	assert.Equal(t, "value", LookupEnvOrDefault("SNOWMAN_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", LookupEnvOrDefault("SNOWMAN_TEST_BLANK", "fallback"))
	assert.Equal(t, "fallback", LookupEnvOrDefault("SNOWMAN_TEST_UNSET_VARIABLE", "fallback"))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "SNOWMAN_HOST", EnvKey("HOST"))
	assert.Equal(t, "SNOWMAN_", EnvKey(""))
}

func TestRedactSecret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"Short", "abc", "***"},
		{"Boundary", "abcd", "****"},
		{"Long", "postman.sid=xyz", "po***********yz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RedactSecret(tt.input))
		})
	}
}

func TestCustomError(t *testing.T) {
	t.Run("Error without details", func(t *testing.T) {
		assert.Equal(t, "ConfigMissing", ConfigMissing.Error())
	})

	t.Run("Error with details", func(t *testing.T) {
		err := NoItemsAvailable.WithDetails("no %s to choose from", "workspaces")
		assert.Equal(t, "NoItemsAvailable: no workspaces to choose from", err.Error())
		assert.Equal(t, 81, err.Code)
	})

	t.Run("Is matches by code through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading: %w", ConfigInvalid.WithDetails("bad toml"))
		assert.True(t, errors.Is(wrapped, ConfigInvalid))
		assert.False(t, errors.Is(wrapped, ConfigMissing))
	})

	t.Run("As recovers the exit code", func(t *testing.T) {
		wrapped := fmt.Errorf("spawn: %w", ShellSpawnFailed)

		var customErr CustomError
		assert.True(t, errors.As(wrapped, &customErr))
		assert.Equal(t, 90, customErr.Code)
	})
}
