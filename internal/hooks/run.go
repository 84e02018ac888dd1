// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hooks

import (
	"context"
	"strings"

	"github.com/vlaci/nix-shell-hooks/internal/ensure"
	"github.com/vlaci/nix-shell-hooks/internal/hookcli/usererr"
	"github.com/vlaci/nix-shell-hooks/internal/ux"
)

// RunOpts configures the generic gated runner.
type RunOpts struct {
	// ChecksumPath is where the record for this command lives.
	ChecksumPath string

	// Inputs are fingerprinted files and directories.
	Inputs []string

	// Extra strings folded into the fingerprint, for inputs that are not
	// files (tool versions, interpreter paths, ...).
	Extra []string

	// Argv is the command to run. It is part of the fingerprint: the same
	// inputs processed by a different command line is different work.
	Argv []string
}

// RunGated runs an arbitrary command behind the checksum gate. It is the raw
// executor for shells that wrap tools the named hooks don't cover.
func RunGated(ctx context.Context, cfg *Config, opts RunOpts) error {
	if opts.ChecksumPath == "" {
		return usererr.New("a checksum file is required, pass --checksum-file")
	}
	if len(opts.Argv) == 0 {
		return usererr.New("no command given, pass one after --")
	}

	ux.Finfo(cfg.stderr(), "Running %s\n", strings.Join(opts.Argv, " "))

	ran, err := ensure.Ensure(ctx, ensure.Opts{
		Inputs:       opts.Inputs,
		Extra:        append(tagged("extra", opts.Extra), tagged("argv", opts.Argv)...),
		ChecksumPath: opts.ChecksumPath,
		Work: func(ctx context.Context) error {
			cmd := cfg.command(ctx, opts.Argv[0], opts.Argv[1:]...)
			return usererr.NewExecError(cmd.Run())
		},
	})
	if err != nil {
		return err
	}
	if !ran {
		ux.Finfo(cfg.stderr(), "Nothing to do, inputs unchanged\n")
	}
	return nil
}
