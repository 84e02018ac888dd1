// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package ensure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureFirstRunCreatesRecord(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "pyproject.toml", "[project]\nname = \"demo\"\n")
	checksum := filepath.Join(dir, ".venv", "uv-sync.checksum")

	calls := 0
	ran, err := Ensure(context.Background(), Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work: func(context.Context) error {
			calls++
			return nil
		},
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, calls)

	record, err := os.ReadFile(checksum)
	require.NoError(t, err)
	assert.NotEmpty(t, record)
}

func TestEnsureSkipsWhenUpToDate(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "uv.lock", "version = 1\n")
	checksum := filepath.Join(dir, "sync.checksum")

	calls := 0
	work := func(context.Context) error {
		calls++
		return nil
	}
	opts := Opts{Inputs: []string{input}, ChecksumPath: checksum, Work: work}

	ran, err := Ensure(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, ran)

	// Second call with unchanged inputs must be a no-op.
	ran, err = Ensure(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, 1, calls)
}

func TestEnsureRerunsOnInputChange(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "uv.lock", "version = 1\n")
	checksum := filepath.Join(dir, "sync.checksum")

	calls := 0
	opts := Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work: func(context.Context) error {
			calls++
			return nil
		},
	}

	_, err := Ensure(context.Background(), opts)
	require.NoError(t, err)

	writeInput(t, dir, "uv.lock", "version = 2\n")
	ran, err := Ensure(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 2, calls)
}

func TestEnsureRerunsOnExtraArgChange(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "uv.lock", "version = 1\n")
	checksum := filepath.Join(dir, "sync.checksum")

	calls := 0
	work := func(context.Context) error {
		calls++
		return nil
	}

	_, err := Ensure(context.Background(), Opts{
		Inputs: []string{input}, ChecksumPath: checksum, Work: work,
	})
	require.NoError(t, err)

	ran, err := Ensure(context.Background(), Opts{
		Inputs: []string{input}, Extra: []string{"--all-extras"},
		ChecksumPath: checksum, Work: work,
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 2, calls)
}

func TestEnsureFailureLeavesRecordUntouched(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "uv.lock", "version = 1\n")
	checksum := filepath.Join(dir, "sync.checksum")

	_, err := Ensure(context.Background(), Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work:         func(context.Context) error { return nil },
	})
	require.NoError(t, err)
	before, err := os.ReadFile(checksum)
	require.NoError(t, err)

	writeInput(t, dir, "uv.lock", "version = 2\n")
	workErr := errors.New("sync failed")
	_, err = Ensure(context.Background(), Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work:         func(context.Context) error { return workErr },
	})
	require.ErrorIs(t, err, workErr)

	after, err := os.ReadFile(checksum)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed work must not update the checksum")

	// The stale record means the next invocation retries.
	calls := 0
	ran, err := Ensure(context.Background(), Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work: func(context.Context) error {
			calls++
			return nil
		},
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, calls)
}

func TestEnsureFailureWithoutRecord(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "uv.lock", "version = 1\n")
	checksum := filepath.Join(dir, "sync.checksum")

	_, err := Ensure(context.Background(), Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work:         func(context.Context) error { return errors.New("boom") },
	})
	require.Error(t, err)
	assert.NoFileExists(t, checksum)
}

func TestEnsurePersistsPostWorkFingerprint(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "libdemo.so", "unpatched")
	checksum := filepath.Join(dir, "patch.checksum")

	// The work mutates the input it is fingerprinted on, like a binary
	// patcher rewriting the files it scans.
	opts := Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work: func(context.Context) error {
			return os.WriteFile(input, []byte("patched"), 0o644)
		},
	}
	ran, err := Ensure(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, ran)

	// The stored checksum reflects the patched state, so the next call
	// must not re-patch.
	calls := 0
	opts.Work = func(context.Context) error {
		calls++
		return nil
	}
	ran, err = Ensure(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, 0, calls)
}

func TestEnsureTrailingNewlineTolerated(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "uv.lock", "version = 1\n")
	checksum := filepath.Join(dir, "sync.checksum")

	_, err := Ensure(context.Background(), Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work:         func(context.Context) error { return nil },
	})
	require.NoError(t, err)

	record, err := os.ReadFile(checksum)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(checksum, append(record, '\n'), 0o644))

	ran, err := Ensure(context.Background(), Opts{
		Inputs:       []string{input},
		ChecksumPath: checksum,
		Work:         func(context.Context) error { return errors.New("must not run") },
	})
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestEnsureMissingOpts(t *testing.T) {
	_, err := Ensure(context.Background(), Opts{Work: func(context.Context) error { return nil }})
	assert.Error(t, err)

	_, err = Ensure(context.Background(), Opts{ChecksumPath: filepath.Join(t.TempDir(), "c")})
	assert.Error(t, err)
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
