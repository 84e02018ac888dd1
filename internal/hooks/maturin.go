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

// MaturinDevelop builds the project's Rust extension module into the
// virtualenv via `maturin develop`. The crate sources and both manifests make
// up the fingerprint, so editing Rust code re-triggers the build while a
// plain shell re-entry does not.
func MaturinDevelop(ctx context.Context, cfg *Config, extraArgs []string) error {
	cargoPath := filepath.Join(cfg.ProjectDir, manifest.CargoFile)
	if !fileutil.IsFile(cargoPath) {
		return usererr.New("no %s in %s, the maturin hook only works inside a Rust crate", manifest.CargoFile, cfg.ProjectDir)
	}
	venv := cfg.venv()
	if !fileutil.IsDir(venv) {
		return usererr.New("virtualenv %s does not exist, run the uv hook first", venv)
	}
	if !cmdutil.Exists("maturin") {
		return usererr.New("maturin is not on PATH, add it to the development shell")
	}

	name := cfg.ProjectDir
	if c, err := manifest.LoadCargo(cfg.ProjectDir); err == nil && c.Package.Name != "" {
		name = c.Package.Name
	}
	ux.Finfo(cfg.stderr(), "Building extension module %s\n", name)

	ran, err := ensure.Ensure(ctx, ensure.Opts{
		Inputs: []string{
			cargoPath,
			filepath.Join(cfg.ProjectDir, "Cargo.lock"),
			filepath.Join(cfg.ProjectDir, manifest.PyProjectFile),
			filepath.Join(cfg.ProjectDir, "src"),
		},
		Extra:        append([]string{"venv=" + venv}, tagged("arg", extraArgs)...),
		ChecksumPath: filepath.Join(cfg.stateDir(), "maturin-develop.checksum"),
		Work: func(ctx context.Context) error {
			cmd := cfg.command(ctx, "maturin", append([]string{"develop"}, extraArgs...)...)
			cmd.Env = append(os.Environ(), envir.VirtualEnv+"="+venv)
			return usererr.NewExecError(cmd.Run())
		},
	})
	if err != nil {
		return err
	}
	if !ran {
		ux.Finfo(cfg.stderr(), "Extension module %s is up to date\n", name)
		return nil
	}
	ux.Fsuccess(cfg.stderr(), "Built extension module %s\n", name)
	return nil
}
