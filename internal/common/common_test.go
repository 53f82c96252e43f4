// Copyright 2016 Aleksandr Demakin. All rights reserved.

package common

import (
	"os"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSyscallErrHasCode(t *testing.T) {
	type td struct {
		err  error
		code syscall.Errno
		out  bool
	}
	data := []td{
		{err: nil, code: syscall.EBUSY, out: false},
		{err: syscall.EBUSY, code: syscall.EBUSY, out: true},
		{err: syscall.EBUSY, code: syscall.EEXIST, out: false},
		{err: os.NewSyscallError("mount", syscall.EBUSY), code: syscall.EBUSY, out: true},
		{err: &os.PathError{Op: "mkdir", Path: "/dev/mqueue", Err: syscall.EEXIST}, code: syscall.EEXIST, out: true},
		{err: errors.Wrap(os.NewSyscallError("umount", syscall.EBUSY), "umount failed"), code: syscall.EBUSY, out: true},
		{err: errors.New("device or resource busy"), code: syscall.EBUSY, out: false},
	}
	for i, d := range data {
		assert.Equal(t, d.out, SyscallErrHasCode(d.err, d.code), "case %d", i)
	}
}

func TestIsExistAndBusy(t *testing.T) {
	a := assert.New(t)
	a.True(IsExistErr(&os.PathError{Op: "mkdir", Path: "x", Err: syscall.EEXIST}))
	a.False(IsExistErr(&os.PathError{Op: "mkdir", Path: "x", Err: syscall.EACCES}))
	a.True(IsBusyErr(os.NewSyscallError("mount", syscall.EBUSY)))
	a.False(IsBusyErr(os.NewSyscallError("mount", syscall.EPERM)))
}

func TestReason(t *testing.T) {
	a := assert.New(t)
	a.Equal(syscall.ENOENT.Error(), Reason(os.NewSyscallError("mq_open", syscall.ENOENT)))
	a.Equal(syscall.EACCES.Error(), Reason(&os.PathError{Op: "mkdir", Path: "/dev/mqueue", Err: syscall.EACCES}))
	a.Equal("boom", Reason(errors.New("boom")))
}
