// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package mq

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

const (
	// O_NONBLOCK flag makes the queue handle non-blocking.
	O_NONBLOCK = unix.O_NONBLOCK
)

// Attrs is a snapshot of the queue's configuration.
type Attrs struct {
	Flags   int `json:"flags" yaml:"flags"`     // 0 or O_NONBLOCK
	MaxMsg  int `json:"maxmsg" yaml:"maxmsg"`   // max # of messages on queue
	MsgSize int `json:"msgsize" yaml:"msgsize"` // max message size (bytes)
	CurMsgs int `json:"curmsgs" yaml:"curmsgs"` // # of messages currently in queue
}

func checkMqPerm(perm os.FileMode) bool {
	return uint(perm)&0111 == 0
}

// kernelName converts a queue name into the form expected by mq_* syscalls.
func kernelName(name string) (string, error) {
	if !strings.HasPrefix(name, "/") {
		return "", unix.EINVAL
	}
	return name[1:], nil
}

func accessFlags(flag int) int {
	return flag&(os.O_RDONLY|os.O_WRONLY|os.O_RDWR) | flag&O_NONBLOCK
}
