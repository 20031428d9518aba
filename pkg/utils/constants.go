/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

type ReturnCode int

var ProjectVersion string = "Development Build"

const (
	// ProjectName is the name of the executable
	ProjectName = "snowman"
	// ClientName is the name shown in help output
	ClientName = "Snowman"

	HelpHeader = "\nSnowman - bring Postman environments into your terminal\n\n"

	CommandActivate = "activate"
	CommandConfig   = "config"
	CommandVersion  = "version"

	// EnvPrefix is prepended to every exported environment variable key
	EnvPrefix = "SNOWMAN_"
	// EnvironmentNameVar carries the display name of the activated environment
	EnvironmentNameVar = "_SNOWMAN_ENVIRONMENT_NAME"

	// ShellEnv selects the subshell binary
	ShellEnv = "SHELL"
	// ConfigHomeEnv overrides the per-user configuration directory
	ConfigHomeEnv = "XDG_CONFIG_HOME"

	// Return Codes
	Success ReturnCode = 0
)

// (1-19) Basic errors
var (
	HelpRequested  = CustomError{Code: 5, Message: "flag: help requested"}
	GenericFailure = CustomError{Code: 10, Message: "GenericFailure"}
)

// (20-69) Input errors
var (
	ConfigMissing                  = CustomError{Code: 20, Message: "ConfigMissing"}
	ConfigInvalid                  = CustomError{Code: 21, Message: "ConfigInvalid"}
	IncorrectCommandLineParameters = CustomError{Code: 28, Message: "IncorrectCommandLineParameters"}
)

// (70-79) Remote API errors
var (
	RemoteRequestFailed = CustomError{Code: 70, Message: "RemoteRequestFailed"}
	DecodeFailed        = CustomError{Code: 71, Message: "DecodeFailed", Details: "response did not match the expected shape"}
)

// (80-89) Selection errors
var (
	SelectionAborted = CustomError{Code: 80, Message: "SelectionAborted"}
	NoItemsAvailable = CustomError{Code: 81, Message: "NoItemsAvailable"}
)

// (90-99) Activation errors
var (
	ShellSpawnFailed = CustomError{Code: 90, Message: "ShellSpawnFailed"}
)
