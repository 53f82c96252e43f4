// Copyright 2015 Aleksandr Demakin. All rights reserved.

//go:build linux

package mq

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// syscalls

func mq_open(name string, flags int, mode uint32, attrs *linuxMqAttr) (int, error) {
	kname, err := kernelName(name)
	if err != nil {
		return -1, os.NewSyscallError("mq_open", err)
	}
	nameBytes, err := unix.BytePtrFromString(kname)
	if err != nil {
		return -1, err
	}
	id, _, errno := unix.Syscall6(unix.SYS_MQ_OPEN,
		uintptr(unsafe.Pointer(nameBytes)),
		uintptr(flags),
		uintptr(mode),
		uintptr(unsafe.Pointer(attrs)),
		0,
		0)
	if errno != 0 {
		return -1, os.NewSyscallError("mq_open", errno)
	}
	return int(id), nil
}

func mq_getsetattr(id int, attrs, oldAttrs *linuxMqAttr) error {
	_, _, errno := unix.Syscall(unix.SYS_MQ_GETSETATTR,
		uintptr(id),
		uintptr(unsafe.Pointer(attrs)),
		uintptr(unsafe.Pointer(oldAttrs)))
	if errno != 0 {
		return os.NewSyscallError("mq_getsetattr", errno)
	}
	return nil
}

func mq_unlink(name string) error {
	kname, err := kernelName(name)
	if err != nil {
		return os.NewSyscallError("mq_unlink", err)
	}
	nameBytes, err := unix.BytePtrFromString(kname)
	if err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_MQ_UNLINK, uintptr(unsafe.Pointer(nameBytes)), 0, 0)
	if errno != 0 {
		// the kernel reports EPERM where posix requires EACCES.
		if errno == unix.EPERM {
			errno = unix.EACCES
		}
		return os.NewSyscallError("mq_unlink", errno)
	}
	return nil
}
