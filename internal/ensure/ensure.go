// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

// Package ensure gates a unit of work behind a content checksum so that
// re-entering a shell does not redo work whose inputs are unchanged.
package ensure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"

	"github.com/vlaci/nix-shell-hooks/internal/cachehash"
	"github.com/vlaci/nix-shell-hooks/internal/debug"
)

// Opts describes one gated unit of work.
type Opts struct {
	// Inputs are the files and directories whose content determines
	// whether Work needs to run. Every input that affects the outcome of
	// Work must be listed here, otherwise a stale checksum can skip
	// required work.
	Inputs []string

	// Extra strings folded into the fingerprint after the inputs, in
	// order. Callers forward command arguments here.
	Extra []string

	// ChecksumPath is where the fingerprint of the last successful run is
	// persisted. The file holds a single opaque string.
	ChecksumPath string

	// Work performs the actual operation. It is only invoked when the
	// current fingerprint differs from the persisted one.
	Work func(ctx context.Context) error
}

// Ensure runs opts.Work unless the fingerprint of opts.Inputs and opts.Extra
// matches the checksum stored at opts.ChecksumPath. It reports whether the
// work ran.
//
// On success the fingerprint is recomputed before being persisted, since the
// work may mutate the very inputs it was gated on. On failure the stored
// checksum is left untouched so the next invocation retries. The whole
// read-compute-write sequence holds an OS file lock next to ChecksumPath, so
// concurrent shells entering the same project serialize instead of racing.
func Ensure(ctx context.Context, opts Opts) (ran bool, err error) {
	if opts.ChecksumPath == "" {
		return false, errors.New("ensure: missing checksum path")
	}
	if opts.Work == nil {
		return false, errors.New("ensure: missing work function")
	}

	if err := os.MkdirAll(filepath.Dir(opts.ChecksumPath), 0o755); err != nil {
		return false, errors.WithStack(err)
	}
	unlock, err := lockedfile.MutexAt(opts.ChecksumPath + ".lock").Lock()
	if err != nil {
		return false, errors.WithStack(err)
	}
	defer unlock()

	stored, err := readRecord(opts.ChecksumPath)
	if err != nil {
		return false, err
	}
	sum, err := cachehash.Paths(opts.Inputs, opts.Extra...)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if sum == stored {
		debug.Log("ensure: %s up to date (%s)", opts.ChecksumPath, sum)
		return false, nil
	}
	debug.Log("ensure: %s stale (stored %q, current %q)", opts.ChecksumPath, stored, sum)

	if err := opts.Work(ctx); err != nil {
		return false, err
	}

	// The work may have rewritten files we hashed above, e.g. uv sync
	// updating uv.lock. Persist the converged state, not the stale one.
	sum, err = cachehash.Paths(opts.Inputs, opts.Extra...)
	if err != nil {
		return true, errors.WithStack(err)
	}
	return true, writeRecord(opts.ChecksumPath, sum)
}
