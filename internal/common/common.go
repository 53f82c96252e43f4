// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package common contains errno helpers shared by the queue packages.
package common

import (
	"syscall"

	"github.com/pkg/errors"
)

// SyscallErrHasCode returns true, if err is, or wraps, the given errno.
// It sees through *os.SyscallError, *os.PathError and pkg/errors wrappers.
func SyscallErrHasCode(err error, code syscall.Errno) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == code
	}
	return false
}

// IsExistErr returns true, if err was caused by EEXIST.
func IsExistErr(err error) bool {
	return SyscallErrHasCode(err, syscall.EEXIST)
}

// IsBusyErr returns true, if err was caused by EBUSY.
func IsBusyErr(err error) bool {
	return SyscallErrHasCode(err, syscall.EBUSY)
}

// Reason returns the system-provided description of the error.
// If err wraps an errno, its strerror text is returned, otherwise err.Error().
func Reason(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}
	return err.Error()
}
