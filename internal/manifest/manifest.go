// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

// Package manifest reads the slices of pyproject.toml and Cargo.toml that the
// hooks care about.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	PyProjectFile = "pyproject.toml"
	CargoFile     = "Cargo.toml"
)

type PyProject struct {
	Project struct {
		Name           string `toml:"name"`
		Version        string `toml:"version"`
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
}

type Cargo struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// LoadPyProject parses dir/pyproject.toml.
func LoadPyProject(dir string) (*PyProject, error) {
	b, err := os.ReadFile(filepath.Join(dir, PyProjectFile))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	p := &PyProject{}
	if err := toml.Unmarshal(b, p); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", PyProjectFile)
	}
	return p, nil
}

// LoadCargo parses dir/Cargo.toml.
func LoadCargo(dir string) (*Cargo, error) {
	b, err := os.ReadFile(filepath.Join(dir, CargoFile))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c := &Cargo{}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", CargoFile)
	}
	return c, nil
}
