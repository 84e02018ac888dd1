// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hooks

import (
	"context"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/vlaci/nix-shell-hooks/internal/cmdutil"
	"github.com/vlaci/nix-shell-hooks/internal/ensure"
	"github.com/vlaci/nix-shell-hooks/internal/envir"
	"github.com/vlaci/nix-shell-hooks/internal/fileutil"
	"github.com/vlaci/nix-shell-hooks/internal/hookcli/usererr"
	"github.com/vlaci/nix-shell-hooks/internal/ux"
)

// PatchOpts configures the auto-patchelf invocation. The flag surface
// mirrors auto-patchelf's own.
type PatchOpts struct {
	// Libs are directories searched for shared libraries, in addition to
	// NIX_SHELL_HOOKS_LIBS.
	Libs []string

	// IgnoreMissing lists dependency names that may stay unresolved
	// without failing the patch run.
	IgnoreMissing []string

	// ExtraArgs are passed through to patchelf.
	ExtraArgs []string
}

// PatchVenv runs auto-patchelf over the virtualenv so that prebuilt wheels
// find their native dependencies in the Nix store. Progress lines about
// skipped files are suppressed unless the hook runs verbose; they carry no
// signal about success.
func PatchVenv(ctx context.Context, cfg *Config, opts PatchOpts) error {
	venv := cfg.venv()
	if !fileutil.IsDir(venv) {
		return usererr.New("virtualenv %s does not exist, run the uv hook first", venv)
	}
	if !cmdutil.Exists("auto-patchelf") {
		return usererr.New("auto-patchelf is not on PATH, add it to the development shell")
	}

	libs := lo.Uniq(append(envir.LibraryPaths(), opts.Libs...))
	if len(libs) == 0 {
		return usererr.New("no library search paths, set %s or pass --libs", envir.HooksLibs)
	}

	ux.Finfo(cfg.stderr(), "Patching ELF binaries in %s\n", venv)

	ran, err := ensure.Ensure(ctx, ensure.Opts{
		// bin holds entry point executables, lib the platlib tree with
		// the wheels' shared objects. Hashing both means a re-sync or
		// a rebuilt wheel re-triggers the patch run.
		Inputs: []string{
			filepath.Join(venv, "bin"),
			filepath.Join(venv, "lib"),
		},
		Extra: lo.Flatten([][]string{
			tagged("--libs", libs),
			tagged("--ignore-missing", opts.IgnoreMissing),
			tagged("--extra-args", opts.ExtraArgs),
		}),
		ChecksumPath: filepath.Join(cfg.stateDir(), "auto-patchelf.checksum"),
		Work: func(ctx context.Context) error {
			args := []string{"--paths", venv, "--libs"}
			args = append(args, libs...)
			if len(opts.IgnoreMissing) > 0 {
				args = append(args, "--ignore-missing")
				args = append(args, opts.IgnoreMissing...)
			}
			if len(opts.ExtraArgs) > 0 {
				args = append(args, "--extra-args")
				args = append(args, opts.ExtraArgs...)
			}

			cmd := cfg.command(ctx, "auto-patchelf", args...)
			var fw *ux.FilterWriter
			if !cfg.Verbose {
				fw = ux.NewFilterWriter(cfg.stdout(), "skipping ")
				cmd.Stdout = fw
			}
			err := cmd.Run()
			if fw != nil {
				fw.Flush()
			}
			return usererr.NewExecError(err)
		},
	})
	if err != nil {
		return err
	}
	if !ran {
		ux.Finfo(cfg.stderr(), "ELF binaries in %s are up to date\n", venv)
		return nil
	}
	ux.Fsuccess(cfg.stderr(), "Patched ELF binaries in %s\n", venv)
	return nil
}
