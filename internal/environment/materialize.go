/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package environment turns a fetched Postman environment into process environment variables.
package environment

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/snowman-cli/snowman/internal/postman"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// AuditHeader precedes the printed list of exported variables.
const AuditHeader = "The following environment variables have been set:"

// Result maps exported variable names to their values.
type Result map[string]string

// Materialize exports every variable under the SNOWMAN_ prefix, in source order, so a
// repeated key keeps its last value. Disabled and secret variables are exported as is.
func Materialize(env postman.Environment) Result {
	result := make(Result, len(env.Values)+1)

	for _, v := range env.Values {
		result[utils.EnvKey(v.Key)] = v.Value
	}

	result[utils.EnvironmentNameVar] = env.DisplayName()

	return result
}

// Name returns the display name of the environment the result came from.
func (r Result) Name() string {
	return r[utils.EnvironmentNameVar]
}

// Names returns the exported names in lexicographic order.
func (r Result) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// AuditLines renders "NAME: value" pairs sorted by name.
func (r Result) AuditLines() []string {
	lines := make([]string, 0, len(r))
	for _, name := range r.Names() {
		lines = append(lines, fmt.Sprintf("%s: %s", name, r[name]))
	}

	return lines
}

// Merge overlays the result on an inherited KEY=value environment. Inherited entries
// with an overridden name are dropped so the child sees exactly one value per name.
func (r Result) Merge(base []string) []string {
	merged := make([]string, 0, len(base)+len(r))

	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, overridden := r[name]; overridden {
			continue
		}

		merged = append(merged, kv)
	}

	for _, name := range r.Names() {
		merged = append(merged, name+"="+r[name])
	}

	return merged
}

// WriteAudit prints the header and the sorted audit lines.
func WriteAudit(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", AuditHeader, strings.Join(r.AuditLines(), "\n"))

	return err
}
