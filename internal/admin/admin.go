// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

// Package admin implements administration of posix message queues:
// mounting the queue filesystem, listing, inspecting and unlinking queues,
// and unmounting the filesystem.
package admin

import (
	"os"
	"strings"

	"github.com/nxgtw/pq/internal/common"
	"github.com/nxgtw/pq/internal/log"
	"github.com/nxgtw/pq/mq"
	"github.com/nxgtw/pq/mqfs"
)

// Queue is an open queue handle.
type Queue interface {
	Attrs() (mq.Attrs, error)
	Close() error
}

// Queues is the message queue subsystem.
type Queues interface {
	// Open opens an existing queue for reading.
	Open(name string) (Queue, error)
	// Unlink removes the queue name.
	Unlink(name string) error
}

// LinuxQueues is the Queues implementation backed by linux mq syscalls.
type LinuxQueues struct{}

// Open opens the queue in read-only mode.
func (LinuxQueues) Open(name string) (Queue, error) {
	q, err := mq.OpenLinuxMessageQueue(name, os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Unlink removes the queue name. It fails if there is no such queue.
func (LinuxQueues) Unlink(name string) error {
	return mq.UnlinkLinuxMessageQueue(name)
}

// Config holds the dependencies of Admin.
type Config struct {
	// MountPoint is the directory the queue filesystem is mounted on.
	// Defaults to mqfs.DefaultMountPoint.
	MountPoint string
	// FS defaults to mqfs.Host.
	FS mqfs.FileSystem
	// Queues defaults to LinuxQueues.
	Queues Queues
}

// Admin performs administrative operations on queues.
// Every method issues its system calls once, it never retries.
type Admin struct {
	mountPoint string
	fs         mqfs.FileSystem
	queues     Queues
}

// New returns an Admin for the given config.
func New(cfg Config) *Admin {
	a := &Admin{
		mountPoint: cfg.MountPoint,
		fs:         cfg.FS,
		queues:     cfg.Queues,
	}
	if a.mountPoint == "" {
		a.mountPoint = mqfs.DefaultMountPoint
	}
	if a.fs == nil {
		a.fs = mqfs.Host{}
	}
	if a.queues == nil {
		a.queues = LinuxQueues{}
	}
	return a
}

// MountPoint returns the directory the admin works with.
func (a *Admin) MountPoint() string {
	return a.mountPoint
}

// EnsureMounted creates the mount point and mounts the queue filesystem on it.
// An existing directory (EEXIST) and an existing mount (EBUSY) are not errors,
// so the call is idempotent.
func (a *Admin) EnsureMounted() error {
	if err := a.fs.Mkdir(a.mountPoint, mqfs.MountPointPerm); err != nil {
		if !common.IsExistErr(err) {
			return &OpError{Op: OpMkdir, Arg: a.mountPoint, Err: err}
		}
		log.Debugf("mount point %s already exists", a.mountPoint)
	}
	if err := a.fs.Mount(a.mountPoint); err != nil {
		if !common.IsBusyErr(err) {
			return &OpError{Op: OpMount, Arg: a.mountPoint, Err: err}
		}
		log.Debugf("queue filesystem is already mounted on %s", a.mountPoint)
		return nil
	}
	log.Debugf("mounted queue filesystem on %s", a.mountPoint)
	return nil
}

// List calls fn with the name of every queue, in directory order.
// Directories and hidden entries are skipped. It returns the number of queues seen.
// An error returned by fn stops the listing and is returned as is.
func (a *Admin) List(fn func(name string) error) (int, error) {
	var count int
	var emitErr error
	err := a.fs.Entries(a.mountPoint, func(entry os.DirEntry) error {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		count++
		emitErr = fn(entry.Name())
		return emitErr
	})
	if emitErr != nil {
		return count, emitErr
	}
	if err != nil {
		return count, &OpError{Op: OpList, Arg: a.mountPoint, Err: err}
	}
	return count, nil
}

// Stat returns the attributes of the queue.
// The queue handle is closed before Stat returns.
func (a *Admin) Stat(name string) (mq.Attrs, error) {
	q, err := a.queues.Open(name)
	if err != nil {
		return mq.Attrs{}, &OpError{Op: OpOpen, Arg: name, Err: err}
	}
	defer q.Close()
	attrs, err := q.Attrs()
	if err != nil {
		return mq.Attrs{}, &OpError{Op: OpQuery, Arg: name, Err: err}
	}
	return attrs, nil
}

// Unlink removes the queue. The kernel frees it once the last handle is closed.
func (a *Admin) Unlink(name string) error {
	if err := a.queues.Unlink(name); err != nil {
		return &OpError{Op: OpUnlink, Arg: name, Err: err}
	}
	log.Debugf("unlinked queue %s", name)
	return nil
}

// Unmount unmounts the queue filesystem and removes the mount point.
// If the filesystem is busy, it stays mounted and Unmount returns nil,
// so that the caller may retry later.
func (a *Admin) Unmount() error {
	if err := a.fs.Unmount(a.mountPoint); err != nil {
		if common.IsBusyErr(err) {
			log.Warnf("posix queue filesystem on %s is busy, left mounted", a.mountPoint)
			return nil
		}
		return &OpError{Op: OpUnmount, Arg: a.mountPoint, Err: err}
	}
	if err := a.fs.Rmdir(a.mountPoint); err != nil && !common.IsBusyErr(err) {
		return &OpError{Op: OpRmdir, Arg: a.mountPoint, Err: err}
	}
	log.Debugf("unmounted queue filesystem from %s", a.mountPoint)
	return nil
}
