// Copyright 2016 Aleksandr Demakin. All rights reserved.

package commands

import "fmt"

// UsageError is returned when the command line is incomplete or malformed.
type UsageError struct {
	msg string
}

func newUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return "invalid usage: " + e.msg
}

// UnknownCommandError is returned for an unsupported action.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("invalid action %q", e.Name)
}
