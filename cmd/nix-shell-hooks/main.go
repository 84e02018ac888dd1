// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package main

import (
	"github.com/vlaci/nix-shell-hooks/internal/hookcli"
)

func main() {
	hookcli.Main()
}
