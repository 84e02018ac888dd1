// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

// Package hookcli is the command line frontend. Each shell hook is a
// subcommand, so a Nix shellHook reduces to a one-line invocation.
package hookcli

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vlaci/nix-shell-hooks/internal/debug"
	"github.com/vlaci/nix-shell-hooks/internal/envir"
	"github.com/vlaci/nix-shell-hooks/internal/hookcli/usererr"
	"github.com/vlaci/nix-shell-hooks/internal/hooks"
	"github.com/vlaci/nix-shell-hooks/internal/ux"
)

type rootCmdFlags struct {
	quiet   bool
	verbose bool
	debug   bool

	projectDir string
	venvDir    string
}

func RootCmd() *cobra.Command {
	flags := rootCmdFlags{}
	command := &cobra.Command{
		Use:   "nix-shell-hooks",
		Short: "Checksum-gated shell hooks for Nix development shells",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.debug {
				debug.Enable()
			}
			if flags.quiet || envir.IsQuiet() {
				cmd.SetErr(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.AddCommand(venvCmd(&flags))
	command.AddCommand(autoPatchelfCmd(&flags))
	command.AddCommand(maturinCmd(&flags))
	command.AddCommand(runCmd(&flags))
	command.AddCommand(versionCmd())

	command.PersistentFlags().BoolVarP(
		&flags.quiet, "quiet", "q", false, "suppresses hook banners")
	command.PersistentFlags().BoolVarP(
		&flags.verbose, "verbose", "v", false, "relays all diagnostic output of the wrapped tools")
	command.PersistentFlags().BoolVar(
		&flags.debug, "debug", false, "prints debug logs")
	command.PersistentFlags().StringVarP(
		&flags.projectDir, "project-dir", "C", "", "project directory (default: current directory)")
	command.PersistentFlags().StringVar(
		&flags.venvDir, "venv", "", "virtualenv directory (default: $"+envir.UvProjectEnvironment+" or .venv)")

	return command
}

// hookConfig resolves the shared flags into an explicit configuration for the
// hooks, so they never consult global state themselves.
func (flags *rootCmdFlags) hookConfig(cmd *cobra.Command) (*hooks.Config, error) {
	projectDir := flags.projectDir
	if projectDir == "" {
		var err error
		projectDir, err = os.Getwd()
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return &hooks.Config{
		ProjectDir: projectDir,
		VenvDir:    flags.venvDir,
		Verbose:    flags.verbose,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}, nil
}

// Execute runs the command tree and maps errors to the process exit code. A
// failing wrapped tool exits with that tool's own status.
func Execute(ctx context.Context, args []string) int {
	cmd := RootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var userExitErr *usererr.ExitError
	if errors.As(err, &userExitErr) {
		// The tool already wrote its own diagnostics.
		return userExitErr.ExitCode()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	if debug.IsEnabled() {
		ux.Ferror(os.Stderr, "%+v\n", err)
	} else {
		ux.Ferror(os.Stderr, "%s\n", err)
	}
	return 1
}

func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:]))
}
