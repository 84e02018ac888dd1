// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hookcli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vlaci/nix-shell-hooks/internal/build"
)

type versionFlags struct {
	verbose bool
}

func versionCmd() *cobra.Command {
	flags := versionFlags{}
	command := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionCmdFunc(cmd, flags)
		},
	}

	command.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"displays additional version information")
	return command
}

func versionCmdFunc(cmd *cobra.Command, flags versionFlags) error {
	w := cmd.OutOrStdout()
	if flags.verbose {
		fmt.Fprintf(w, "Version:     %v\n", build.Version)
		fmt.Fprintf(w, "Platform:    %s_%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(w, "Commit:      %v\n", build.Commit)
		fmt.Fprintf(w, "Commit Time: %v\n", build.CommitDate)
		fmt.Fprintf(w, "Go Version:  %v\n", runtime.Version())
	} else {
		fmt.Fprintf(w, "%v\n", build.Version)
	}
	return nil
}
