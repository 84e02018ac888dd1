// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package cmdutil

import (
	"os/exec"
)

// Exists indicates if the command exists on PATH.
func Exists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
