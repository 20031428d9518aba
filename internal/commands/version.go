/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/snowman-cli/snowman/pkg/utils"
)

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	out := ctx.Out()

	if ctx.JsonOutput {
		info := map[string]string{
			"app":     strings.ToUpper(utils.ProjectName),
			"version": utils.ProjectVersion,
			"runtime": runtime.Version(),
		}

		outBytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(out, string(outBytes))
	} else {
		fmt.Fprintln(out, strings.ToUpper(utils.ProjectName))
		fmt.Fprintf(out, "Version %s\n", utils.ProjectVersion)
		fmt.Fprintf(out, "Runtime %s\n", runtime.Version())
	}

	return nil
}
