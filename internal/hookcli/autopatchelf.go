// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hookcli

import (
	"github.com/spf13/cobra"

	"github.com/vlaci/nix-shell-hooks/internal/envir"
	"github.com/vlaci/nix-shell-hooks/internal/hooks"
)

type autoPatchelfFlags struct {
	libs          []string
	ignoreMissing []string
	extraArgs     []string
}

func autoPatchelfCmd(rootFlags *rootCmdFlags) *cobra.Command {
	flags := autoPatchelfFlags{}
	command := &cobra.Command{
		Use:   "autopatchelf",
		Short: "Patch ELF binaries in the virtualenv against Nix store libraries",
		Long: "Runs auto-patchelf over the virtualenv so that prebuilt wheels " +
			"link against libraries from the development shell, unless the " +
			"virtualenv content is unchanged since the last successful run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootFlags.hookConfig(cmd)
			if err != nil {
				return err
			}
			return hooks.PatchVenv(cmd.Context(), cfg, hooks.PatchOpts{
				Libs:          flags.libs,
				IgnoreMissing: flags.ignoreMissing,
				ExtraArgs:     flags.extraArgs,
			})
		},
	}

	command.Flags().StringSliceVar(&flags.libs, "libs", nil,
		"library search paths, in addition to $"+envir.HooksLibs)
	command.Flags().StringSliceVar(&flags.ignoreMissing, "ignore-missing", nil,
		"dependency names that may stay unresolved")
	command.Flags().StringSliceVar(&flags.extraArgs, "extra-args", nil,
		"extra arguments passed through to patchelf")
	return command
}
