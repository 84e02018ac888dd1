// SPDX-FileCopyrightText: 2025 László Vaskó <vlaci@fastmail.com>
//
// SPDX-License-Identifier: EUPL-1.2

// Package usererr distinguishes errors caused by the user's environment or
// configuration from internal ones, so the CLI can print them without a stack
// trace.
package usererr

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type combined struct {
	source      error
	userMessage string
}

// New creates a new user error with the given message.
func New(msg string, args ...any) error {
	return errors.WithStack(&combined{
		userMessage: fmt.Sprintf(msg, args...),
	})
}

// WithUserMessage annotates source with a user-facing message. If source
// already has one, it is returned unchanged so the original message is not
// obscured.
func WithUserMessage(source error, msg string, args ...any) error {
	if source == nil || HasUserMessage(source) {
		return source
	}
	return &combined{
		source:      source,
		userMessage: fmt.Sprintf(msg, args...),
	}
}

// HasUserMessage reports whether err carries a user-facing message.
func HasUserMessage(err error) bool {
	c := &combined{}
	return errors.As(err, &c)
}

func (c *combined) Error() string {
	if c.source == nil {
		return c.userMessage
	}
	return c.userMessage + "\nsource: " + c.source.Error()
}

// Is uses the source error for comparisons.
func (c *combined) Is(target error) bool {
	return errors.Is(c.source, target)
}

// Unwrap provides compatibility for Go 1.13 error chains.
func (c *combined) Unwrap() error { return c.Cause() }

// Cause leverages the functionality of errors.Cause.
func (c *combined) Cause() error { return errors.Cause(c.source) }

// Format allows us to use %+v as implemented by github.com/pkg/errors.
func (c *combined) Format(s fmt.State, verb rune) {
	if c.source == nil {
		_, _ = io.WriteString(s, c.userMessage)
		return
	}
	errors.Wrap(c.source, c.userMessage).(interface { //nolint:errorlint
		Format(s fmt.State, verb rune)
	}).Format(s, verb)
}
