// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hooks

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vlaci/nix-shell-hooks/internal/cmdutil"
	"github.com/vlaci/nix-shell-hooks/internal/ensure"
	"github.com/vlaci/nix-shell-hooks/internal/envir"
	"github.com/vlaci/nix-shell-hooks/internal/fileutil"
	"github.com/vlaci/nix-shell-hooks/internal/hookcli/usererr"
	"github.com/vlaci/nix-shell-hooks/internal/manifest"
	"github.com/vlaci/nix-shell-hooks/internal/ux"
)

// SyncVenv keeps the project virtualenv in sync with pyproject.toml and
// uv.lock by running `uv sync`. Extra arguments are forwarded to uv and take
// part in the fingerprint, so changing them re-triggers the sync.
func SyncVenv(ctx context.Context, cfg *Config, extraArgs []string) error {
	pyprojectPath := filepath.Join(cfg.ProjectDir, manifest.PyProjectFile)
	if !fileutil.IsFile(pyprojectPath) {
		return usererr.New("no %s in %s, the uv hook only works inside a uv project", manifest.PyProjectFile, cfg.ProjectDir)
	}
	if !cmdutil.Exists("uv") {
		return usererr.New("uv is not on PATH, add it to the development shell")
	}

	name := cfg.ProjectDir
	if p, err := manifest.LoadPyProject(cfg.ProjectDir); err == nil && p.Project.Name != "" {
		name = p.Project.Name
	}
	venv := cfg.venv()
	ux.Finfo(cfg.stderr(), "Syncing virtualenv for %s\n", name)

	lockPath := filepath.Join(cfg.ProjectDir, "uv.lock")
	if !fileutil.IsFile(lockPath) {
		ux.Fwarning(cfg.stderr(), "No uv.lock found, uv will resolve dependencies from scratch\n")
	}

	ran, err := ensure.Ensure(ctx, ensure.Opts{
		Inputs: []string{
			pyprojectPath,
			lockPath,
			// pyvenv.cfg marks an initialized virtualenv. Hashing it
			// re-triggers the sync after the venv is deleted or
			// recreated, since the record itself lives outside it.
			filepath.Join(venv, "pyvenv.cfg"),
		},
		Extra:        append([]string{"venv=" + venv}, tagged("arg", extraArgs)...),
		ChecksumPath: filepath.Join(cfg.stateDir(), "uv-sync.checksum"),
		Work: func(ctx context.Context) error {
			cmd := cfg.command(ctx, "uv", append([]string{"sync"}, extraArgs...)...)
			cmd.Env = append(os.Environ(), envir.UvProjectEnvironment+"="+venv)
			return usererr.NewExecError(cmd.Run())
		},
	})
	if err != nil {
		return err
	}
	if !ran {
		ux.Finfo(cfg.stderr(), "Virtualenv %s is up to date\n", venv)
		return nil
	}
	ux.Fsuccess(cfg.stderr(), "Virtualenv %s synced\n", venv)
	return nil
}
