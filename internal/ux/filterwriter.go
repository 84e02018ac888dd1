// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

package ux

import (
	"bytes"
	"io"
)

// FilterWriter drops lines that contain any of the configured substrings and
// forwards everything else to the underlying writer. It buffers partial
// lines, so a line split across multiple writes is still matched as a whole.
// Call Flush once the producing command has exited to forward a trailing
// unterminated line.
type FilterWriter struct {
	w        io.Writer
	filtered [][]byte
	buf      bytes.Buffer
}

// NewFilterWriter returns a writer that filters out all lines containing any
// of the given substrings.
func NewFilterWriter(w io.Writer, substrings ...string) *FilterWriter {
	fw := &FilterWriter{w: w}
	for _, s := range substrings {
		fw.filtered = append(fw.filtered, []byte(s))
	}
	return fw
}

func (fw *FilterWriter) Write(p []byte) (int, error) {
	fw.buf.Write(p)
	for {
		line, err := fw.buf.ReadBytes('\n')
		if err != nil {
			// Partial line, keep it buffered for the next write.
			fw.buf.Write(line)
			return len(p), nil
		}
		if err := fw.forward(line); err != nil {
			return len(p), err
		}
	}
}

// Flush forwards any buffered partial line.
func (fw *FilterWriter) Flush() error {
	if fw.buf.Len() == 0 {
		return nil
	}
	line := fw.buf.Bytes()
	fw.buf.Reset()
	return fw.forward(line)
}

func (fw *FilterWriter) forward(line []byte) error {
	for _, f := range fw.filtered {
		if bytes.Contains(line, f) {
			return nil
		}
	}
	_, err := fw.w.Write(line)
	return err
}
