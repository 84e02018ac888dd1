// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

// Package hooks implements the shell hooks themselves. Each hook validates
// its configuration, prints a banner, and delegates the decision whether to
// invoke the external tool to the checksum gate in the ensure package.
package hooks

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/vlaci/nix-shell-hooks/internal/envir"
)

// stateDirName is created in the project directory to hold checksum records.
// It must stay outside the virtualenv: creating it there would materialize a
// non-empty directory before uv ever runs, and uv refuses to turn a non-empty
// non-venv directory into an environment.
const stateDirName = ".nix-shell-hooks"

// Config carries the shared hook configuration, resolved once by the CLI
// instead of each hook consulting global environment state.
type Config struct {
	// ProjectDir is the directory the shell was entered in. Relative
	// inputs and the default virtualenv location resolve against it.
	ProjectDir string

	// VenvDir overrides the virtualenv location. When empty,
	// UV_PROJECT_ENVIRONMENT and then ".venv" apply.
	VenvDir string

	// Verbose disables filtering of the wrapped tools' diagnostic output.
	Verbose bool

	Stdout io.Writer
	Stderr io.Writer
}

func (c *Config) venv() string {
	dir := c.VenvDir
	if dir == "" {
		dir = os.Getenv(envir.UvProjectEnvironment)
	}
	if dir == "" {
		dir = ".venv"
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.ProjectDir, dir)
	}
	return dir
}

func (c *Config) stateDir() string {
	return filepath.Join(c.ProjectDir, stateDirName)
}

// tagged prefixes each value with the name of the flag or group it came
// from. Extras from different groups must stay distinguishable in the
// fingerprint: `--libs a b` and `--libs a --ignore-missing b` are different
// work.
func tagged(tag string, values []string) []string {
	return lo.Map(values, func(v string, _ int) string {
		return tag + "=" + v
	})
}

func (c *Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Config) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

// command builds an exec.Cmd rooted in the project directory with the
// configured output streams. Hooks replace Stdout when they filter.
func (c *Config) command(ctx context.Context, name string, arg ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Dir = c.ProjectDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()
	return cmd
}
