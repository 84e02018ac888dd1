// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hookcli

import (
	"github.com/spf13/cobra"

	"github.com/vlaci/nix-shell-hooks/internal/hooks"
)

type runFlags struct {
	checksumFile string
	inputs       []string
	extra        []string
}

func runCmd(rootFlags *rootCmdFlags) *cobra.Command {
	flags := runFlags{}
	command := &cobra.Command{
		Use:   "run --checksum-file FILE [--input PATH]... -- CMD [ARGS...]",
		Short: "Run an arbitrary command gated by a checksum of its inputs",
		Long: "Runs the command given after -- only when the fingerprint of " +
			"the inputs, the extra strings and the command line itself " +
			"differs from the stored checksum. On success the checksum is " +
			"updated; on failure it is left alone so the next run retries.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootFlags.hookConfig(cmd)
			if err != nil {
				return err
			}
			return hooks.RunGated(cmd.Context(), cfg, hooks.RunOpts{
				ChecksumPath: flags.checksumFile,
				Inputs:       flags.inputs,
				Extra:        flags.extra,
				Argv:         args,
			})
		},
	}

	command.Flags().StringVar(&flags.checksumFile, "checksum-file", "",
		"file holding the checksum of the last successful run")
	command.Flags().StringArrayVar(&flags.inputs, "input", nil,
		"file or directory taking part in the fingerprint, repeatable")
	command.Flags().StringArrayVar(&flags.extra, "extra", nil,
		"extra string folded into the fingerprint, repeatable")
	_ = command.MarkFlagRequired("checksum-file")
	return command
}
