// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hookcli

import (
	"github.com/spf13/cobra"

	"github.com/vlaci/nix-shell-hooks/internal/hooks"
)

func maturinCmd(flags *rootCmdFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "maturin [-- maturin develop args...]",
		Short: "Build the Rust extension module into the virtualenv if the crate changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.hookConfig(cmd)
			if err != nil {
				return err
			}
			return hooks.MaturinDevelop(cmd.Context(), cfg, args)
		},
	}
}
