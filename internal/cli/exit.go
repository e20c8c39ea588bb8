package cli

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
)

// InvocationError reports command line usage that cannot be run.
type InvocationError struct {
	Message string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps the error returned by Cli to a process exit status.
func ExitCode(err error) int {
	if err == nil || flags.WroteHelp(err) {
		return ExitSuccess
	}
	var invocationErr *InvocationError
	var flagsErr *flags.Error
	if errors.As(err, &invocationErr) || errors.As(err, &flagsErr) {
		return ExitInvalidInvocation
	}
	return ExitFailure
}

// Reported tells whether err was already printed by the flags parser.
func Reported(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr)
}
