// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package envir

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"
)

func IsDebugEnabled() bool {
	enabled, _ := strconv.ParseBool(os.Getenv(HooksDebug))
	return enabled
}

func IsQuiet() bool {
	quiet, _ := strconv.ParseBool(os.Getenv(HooksQuiet))
	return quiet
}

// LibraryPaths returns the directories listed in NIX_SHELL_HOOKS_LIBS, empty
// elements removed.
func LibraryPaths() []string {
	return lo.Compact(filepath.SplitList(os.Getenv(HooksLibs)))
}
