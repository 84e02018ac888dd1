// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

// Package cachehash generates non-cryptographic cache keys.
//
// The functions in this package make no guarantees about the underlying
// hashing algorithm. It should only be used for caching, where it's ok if the
// hash for a given input changes.
package cachehash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File returns a hex-encoded hash of a file's contents. A missing file hashes
// to the empty string.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := newHash()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Paths returns a hex-encoded hash over the contents of paths, in argument
// order, followed by the extra strings in argument order. Files contribute
// their content, directories the relative name and content of every regular
// file under them in lexical order, and symlinks their target. A path that
// does not exist contributes an absence marker so that it can appear later
// without reordering the digest; any other read error is returned.
func Paths(paths []string, extra ...string) (string, error) {
	h := newHash()
	for _, path := range paths {
		if err := hashPath(h, path); err != nil {
			return "", err
		}
	}
	// Length framing keeps the digest unambiguous even for strings that
	// contain the separator bytes themselves.
	for _, s := range extra {
		fmt.Fprintf(h, "\x00arg:%d\x00", len(s))
		io.WriteString(h, s)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashPath(h hash.Hash, path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		io.WriteString(h, "\x00absent\x00")
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return hashEntry(h, path, filepath.Base(path), info.Mode())
	}

	// WalkDir visits entries in lexical order, which keeps the digest
	// deterministic across runs.
	return filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(path, entry)
		if err != nil {
			return err
		}
		return hashEntry(h, entry, rel, d.Type())
	})
}

func hashEntry(h hash.Hash, path, name string, mode fs.FileMode) error {
	io.WriteString(h, "\x00entry\x00")
	io.WriteString(h, name)
	io.WriteString(h, "\x00")

	if mode&fs.ModeSymlink != 0 {
		target, err := os.Readlink(path)
		if err != nil {
			return err
		}
		io.WriteString(h, target)
		return nil
	}
	if !mode.IsRegular() {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(h, f)
	return err
}

func newHash() hash.Hash { return fnv.New64a() }
