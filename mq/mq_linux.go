// Copyright 2015 Aleksandr Demakin. All rights reserved.

//go:build linux

package mq

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	// DefaultLinuxMqMaxSize is the default linux mq queue size.
	DefaultLinuxMqMaxSize = 10
	// DefaultLinuxMqMessageSize is the linux mq message size.
	// Its max value can be set via procfs.
	DefaultLinuxMqMessageSize = 8192
)

// LinuxMessageQueue is an open handle to a linux posix message queue.
type LinuxMessageQueue struct {
	id   int
	name string
}

// linuxMqAttr is the kernel's struct mq_attr.
type linuxMqAttr struct {
	Flags    int /* Flags: 0 or O_NONBLOCK */
	Maxmsg   int /* Max. # of messages on queue */
	Msgsize  int /* Max. message size (bytes) */
	Curmsgs  int /* # of messages currently in queue */
	reserved [4]int
}

// CreateLinuxMessageQueue creates new queue with the given name and permissions.
//	name - unique mq name, starting with '/'.
//	flag - flag is a combination of os.O_EXCL and O_NONBLOCK.
//	perm - object's permission bits.
//	maxQueueSize - queue capacity.
//	maxMsgSize - maximum message size.
func CreateLinuxMessageQueue(name string, flag int, perm os.FileMode, maxQueueSize, maxMsgSize int) (*LinuxMessageQueue, error) {
	if !checkMqPerm(perm) {
		return nil, errors.New("invalid mq permissions")
	}
	sysflags := unix.O_CREAT | unix.O_RDWR | unix.O_CLOEXEC | flag&O_NONBLOCK
	if flag&os.O_EXCL != 0 {
		sysflags |= unix.O_EXCL
	}
	attrs := &linuxMqAttr{Maxmsg: maxQueueSize, Msgsize: maxMsgSize}
	id, err := mq_open(name, sysflags, uint32(perm), attrs)
	if err != nil {
		return nil, errors.Wrap(err, "mq_open failed")
	}
	return &LinuxMessageQueue{id: id, name: name}, nil
}

// OpenLinuxMessageQueue opens an existing message queue. It returns an error, if it does not exist.
//	name - unique mq name, starting with '/'.
//	flag - flag is a combination of (os.O_RDONLY or os.O_WRONLY or os.O_RDWR) and O_NONBLOCK.
func OpenLinuxMessageQueue(name string, flag int) (*LinuxMessageQueue, error) {
	id, err := mq_open(name, accessFlags(flag)|unix.O_CLOEXEC, uint32(0), nil)
	if err != nil {
		return nil, errors.Wrap(err, "mq_open failed")
	}
	return &LinuxMessageQueue{id: id, name: name}, nil
}

// ID returns the descriptor of the queue.
func (mq *LinuxMessageQueue) ID() int {
	return mq.id
}

// Name returns the name the queue was opened with.
func (mq *LinuxMessageQueue) Name() string {
	return mq.name
}

// Attrs returns current attributes of the queue.
func (mq *LinuxMessageQueue) Attrs() (Attrs, error) {
	var attrs linuxMqAttr
	if err := mq_getsetattr(mq.ID(), nil, &attrs); err != nil {
		return Attrs{}, errors.Wrap(err, "mq_getsetattr failed")
	}
	return Attrs{
		Flags:   attrs.Flags,
		MaxMsg:  attrs.Maxmsg,
		MsgSize: attrs.Msgsize,
		CurMsgs: attrs.Curmsgs,
	}, nil
}

// Cap returns the size of the mq buffer.
func (mq *LinuxMessageQueue) Cap() int {
	attrs, err := mq.Attrs()
	if err != nil {
		return 0
	}
	return attrs.MaxMsg
}

// Close closes the queue handle. The queue itself stays in the system.
func (mq *LinuxMessageQueue) Close() error {
	if mq.id < 0 {
		return errors.New("mq is already closed")
	}
	err := unix.Close(mq.id)
	mq.id = -1
	return err
}

// Destroy closes the queue and removes it permanently.
func (mq *LinuxMessageQueue) Destroy() error {
	name := mq.name
	if err := mq.Close(); err != nil {
		return errors.Wrap(err, "mq close failed")
	}
	return DestroyLinuxMessageQueue(name)
}

// UnlinkLinuxMessageQueue removes the queue name from the system.
// Unlike DestroyLinuxMessageQueue, it fails if the queue does not exist.
// Handles opened before the call remain valid until closed.
func UnlinkLinuxMessageQueue(name string) error {
	if err := mq_unlink(name); err != nil {
		return errors.Wrap(err, "mq_unlink failed")
	}
	return nil
}

// DestroyLinuxMessageQueue removes the queue permanently.
// It is not an error if the queue does not exist.
func DestroyLinuxMessageQueue(name string) error {
	err := mq_unlink(name)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
		} else {
			err = errors.Wrap(err, "mq_unlink failed")
		}
	}
	return err
}
