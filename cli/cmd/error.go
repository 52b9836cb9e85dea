package cmd

import (
	"log/slog"

	"github.com/ardnew/stache/mustache"
)

// Error is the structured error type of package mustache.
type Error = mustache.Error

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return mustache.NewError(msg)
}

var (
	ErrReadInput   = NewError("read input")
	ErrWriteOutput = NewError("write output")
	ErrServe       = NewError("serve")
)

// withCommand attaches the command name to err if it is an [Error].
func withCommand(err error, name string) error {
	if e, ok := err.(*Error); ok {
		return e.With(slog.String("command", name))
	}

	return err
}
