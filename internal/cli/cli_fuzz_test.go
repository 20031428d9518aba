/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"strings"
	"testing"
)

// recoverPanic recovers from panics during fuzzing and logs them
func recoverPanic(t *testing.T, input string) {
	if r := recover(); r != nil {
		t.Errorf("Parse panicked with input %q: %v", input, r)
	}
}

// requestsHelp reports inputs that would make Kong print help and exit the process
func requestsHelp(fields []string) bool {
	for _, f := range fields {
		if strings.HasPrefix(f, "--help") {
			return true
		}

		// Short flags may be combined, as in -vh
		if strings.HasPrefix(f, "-") && !strings.HasPrefix(f, "--") && strings.ContainsRune(f, 'h') {
			return true
		}
	}

	return false
}

// FuzzActivate tests the activate command with various flag combinations and inputs
func FuzzActivate(f *testing.F) {
	seeds := []string{
		"",
		"--dry-run",
		"--workspace Team",
		"-w Team -e Prod",
		"--workspace w1 --environment e1 --dry-run",
		"--environment \"Prod [fork]\"",

		// Combined with global flags
		"--json --dry-run",
		"--verbose --workspace Team",
		"--log-level debug -e Prod",
		"--api-version public",
		"--api-version nonsense",

		// Edge cases
		"--workspace " + strings.Repeat("a", 500),
		"--environment",
		"-w",
		"--workspace=Team=A",
		"--dry-run=false",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, flags string) {
		// Skip extremely long inputs to prevent resource exhaustion
		if len(flags) > 10000 {
			t.Skip("Input too long")
		}

		fields := strings.Fields(flags)
		if requestsHelp(fields) {
			t.Skip("help exits the process")
		}

		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		args := append([]string{"snowman", "activate"}, fields...)

		defer recoverPanic(t, flags)

		// Invalid input may fail to parse, but must never panic
		_, _, _ = Parse(args)
	})
}

// FuzzConfigFormat tests format validation of the config command
func FuzzConfigFormat(f *testing.F) {
	seeds := []string{"toml", "json", "yaml", "TOML", "xml", "", "yaml ", "j\x00son"}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, format string) {
		if requestsHelp([]string{format}) {
			t.Skip("help exits the process")
		}

		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		defer recoverPanic(t, format)

		_, cli, err := Parse([]string{"snowman", "config", "--format", format})
		if err != nil {
			return
		}

		switch cli.Config.Format {
		case "toml", "json", "yaml":
		default:
			t.Errorf("accepted unsupported format %q", cli.Config.Format)
		}
	})
}
