// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

// Package build holds metadata stamped in at build time.
package build

// Set via ldflags when building a release.
var (
	Version    = "0.0.0-dev"
	Commit     = "unknown"
	CommitDate = "unknown"
)
