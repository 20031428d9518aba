/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package postman

import "fmt"

// Workspace is a named container of environments.
type Workspace struct {
	ID         string
	Name       string
	Type       string
	Visibility string
}

// ForkedFrom describes the environment a fork was created from.
type ForkedFrom struct {
	ID        string
	ForkName  string
	Name      string
	CreatedAt string
}

// EnvironmentDigest is a listing entry used for selection. It never carries values.
type EnvironmentDigest struct {
	ID         string
	Name       string
	Owner      string
	CreatedAt  string
	UpdatedAt  string
	ForkedFrom *ForkedFrom
}

// Variable is one key/value entry of an environment.
type Variable struct {
	Key     string
	Value   string
	Enabled bool
	Type    string
}

// Environment is the full record including its ordered variables.
type Environment struct {
	ID         string
	Name       string
	Values     []Variable
	Owner      string
	CreatedAt  string
	UpdatedAt  string
	IsPublic   bool
	ForkedFrom *ForkedFrom
}

// DisplayName is the name shown to the user; forks read "<fork> [<source>]".
func (e EnvironmentDigest) DisplayName() string {
	return displayName(e.Name, e.ForkedFrom)
}

// DisplayName is the name shown to the user; forks read "<fork> [<source>]".
func (e Environment) DisplayName() string {
	return displayName(e.Name, e.ForkedFrom)
}

func displayName(name string, fork *ForkedFrom) string {
	if fork == nil {
		return name
	}

	return fmt.Sprintf("%s [%s]", fork.ForkName, fork.Name)
}
