// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package debug

import (
	"fmt"
	"io"
	"log"

	"github.com/vlaci/nix-shell-hooks/internal/envir"
)

var enabled bool

func init() {
	if envir.IsDebugEnabled() {
		Enable()
	}
}

func IsEnabled() bool { return enabled }

func Enable() {
	enabled = true
	log.SetPrefix("[DEBUG] ")
	log.SetFlags(log.Lshortfile | log.Ltime)
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Log(format string, v ...any) {
	if !enabled {
		return
	}
	_ = log.Output(2, fmt.Sprintf(format, v...))
}
