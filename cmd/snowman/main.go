/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/internal/cli"
	"github.com/snowman-cli/snowman/pkg/utils"
)

func main() {
	if err := cli.Execute(os.Args); err != nil {
		handleErrorAndExit(err)
	}
}

func handleErrorAndExit(err error) {
	os.Exit(exitCode(err))
}

// exitCode logs err and returns the code of the catalogued error it wraps.
func exitCode(err error) int {
	var customErr utils.CustomError
	if errors.As(err, &customErr) {
		if !errors.Is(err, utils.HelpRequested) {
			log.Error(err.Error())
		}

		return customErr.Code
	}

	log.Error(err.Error())

	return utils.GenericFailure.Code
}
