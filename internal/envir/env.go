// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package envir

const (
	// UvProjectEnvironment is uv's own override for the virtualenv
	// location, relative paths resolve against the project directory.
	UvProjectEnvironment = "UV_PROJECT_ENVIRONMENT"

	// HooksLibs is a PATH-style list of directories searched for shared
	// libraries when patching ELF binaries in the virtualenv.
	HooksLibs = "NIX_SHELL_HOOKS_LIBS"

	HooksDebug = "NIX_SHELL_HOOKS_DEBUG"
	HooksQuiet = "NIX_SHELL_HOOKS_QUIET"

	// VirtualEnv is the conventional activation variable; maturin uses it
	// to locate the interpreter to build against.
	VirtualEnv = "VIRTUAL_ENV"
)
