/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/pkg/utils"
)

const defaultEditor = "vi"

// Template is written to a fresh configuration file before the editor opens it.
const Template = `# Snowman Config
#
# The value of your cookie should look something like: 'postman.sid=...'
cookie = ""

# The value of your domain is the url you use for your workspace.
# An example would be 'https://dark-trinity-5058.postman.co'
domain = ""

# Set api_version = "public" and api_key to use the Postman API with an API key instead.
# api_version = "public"
# api_key = ""
`

// Bootstrapper produces a configuration file at path.
type Bootstrapper interface {
	Bootstrap(path string) error
}

// EditorBootstrapper seeds the file with Template and opens it in the user's editor.
type EditorBootstrapper struct {
	Editor string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditorBootstrapper uses $VISUAL, then $EDITOR, then vi.
func NewEditorBootstrapper() *EditorBootstrapper {
	editor := utils.LookupEnvOrDefault("VISUAL", utils.LookupEnvOrDefault("EDITOR", defaultEditor))

	return &EditorBootstrapper{
		Editor: editor,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Bootstrap creates the config directory, writes the template when no file exists and runs the editor.
func (b *EditorBootstrapper) Bootstrap(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Infof("Writing to %s", path)

		if err := os.WriteFile(path, []byte(Template), 0o600); err != nil {
			return fmt.Errorf("failed to write config template: %w", err)
		}
	}

	fields := strings.Fields(b.Editor)
	if len(fields) == 0 {
		fields = []string{defaultEditor}
	}

	cmd := exec.CommandContext(context.Background(), fields[0], append(fields[1:], path)...)
	cmd.Stdin = b.Stdin
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", fields[0], err)
	}

	return nil
}
