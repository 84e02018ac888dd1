// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package hookcli

import (
	"github.com/spf13/cobra"

	"github.com/vlaci/nix-shell-hooks/internal/hooks"
)

func venvCmd(flags *rootCmdFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "venv [-- uv sync args...]",
		Short: "Sync the uv-managed virtualenv if pyproject.toml or uv.lock changed",
		Long: "Runs `uv sync` with any arguments given after --, unless the " +
			"fingerprint of pyproject.toml, uv.lock and the arguments matches " +
			"the last successful sync.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.hookConfig(cmd)
			if err != nil {
				return err
			}
			return hooks.SyncVenv(cmd.Context(), cfg, args)
		},
	}
}
