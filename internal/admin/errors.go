// Copyright 2016 Aleksandr Demakin. All rights reserved.

package admin

import (
	"fmt"

	"github.com/nxgtw/pq/internal/common"
)

// Op identifies the step of an operation that failed.
type Op int

// Failing steps.
const (
	OpMkdir Op = iota
	OpMount
	OpList
	OpOpen
	OpQuery
	OpUnlink
	OpUnmount
	OpRmdir
)

// OpError is returned when a system call fails for a reason
// that cannot be tolerated.
type OpError struct {
	Op Op
	// Arg is the mount point or the queue name the call referred to.
	Arg string
	Err error
}

func (e *OpError) Error() string {
	var what string
	switch e.Op {
	case OpMkdir:
		what = fmt.Sprintf("couldn't create posix filesystem mount point %s", e.Arg)
	case OpMount:
		what = "couldn't mount the posix queue filesystem"
	case OpList:
		what = "couldn't read from the posix queue filesystem"
	case OpOpen:
		what = fmt.Sprintf("couldn't open queue %s", e.Arg)
	case OpQuery:
		what = fmt.Sprintf("failed to query queue %s for its parameters", e.Arg)
	case OpUnlink:
		what = fmt.Sprintf("failed to unlink queue %s", e.Arg)
	case OpUnmount:
		what = "couldn't unmount the posix queue filesystem"
	case OpRmdir:
		what = fmt.Sprintf("couldn't remove posix filesystem mount point %s", e.Arg)
	default:
		what = fmt.Sprintf("operation %d on %s failed", int(e.Op), e.Arg)
	}
	return fmt.Sprintf("%s (%s)", what, common.Reason(e.Err))
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error for github.com/pkg/errors.
func (e *OpError) Cause() error {
	return e.Err
}
