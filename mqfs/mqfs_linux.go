// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package mqfs

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	// DefaultMountPoint is where the queue filesystem is expected to be mounted.
	DefaultMountPoint = "/dev/mqueue"
	// FSType is the filesystem type of the queue filesystem.
	FSType = "mqueue"
	// MountPointPerm is the permission mask the mount point is created with.
	MountPointPerm os.FileMode = 0644

	readDirBatch = 64
)

// FileSystem is the set of host facilities used to administer the queue filesystem.
type FileSystem interface {
	// Mkdir creates a directory.
	Mkdir(path string, perm os.FileMode) error
	// Rmdir removes an empty directory.
	Rmdir(path string) error
	// Mount mounts the queue filesystem on target.
	Mount(target string) error
	// Unmount detaches the filesystem mounted on target.
	Unmount(target string) error
	// Entries calls fn for every entry of the directory at path,
	// in the order the directory yields them. It stops at the first error returned by fn.
	Entries(path string, fn func(entry os.DirEntry) error) error
}

// Host is the FileSystem of the running system.
// Mount and Unmount require CAP_SYS_ADMIN.
type Host struct{}

var _ FileSystem = Host{}

// Mkdir creates a directory at path.
func (Host) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// Rmdir removes the directory at path.
func (Host) Rmdir(path string) error {
	return os.NewSyscallError("rmdir", unix.Rmdir(path))
}

// Mount mounts a new instance of the queue filesystem on target.
// If it is already mounted there, the call fails with EBUSY.
func (Host) Mount(target string) error {
	return os.NewSyscallError("mount", unix.Mount("none", target, FSType, 0, ""))
}

// Unmount unmounts the filesystem on target. It fails with EBUSY, if it is in use.
func (Host) Unmount(target string) error {
	return os.NewSyscallError("umount", unix.Unmount(target, 0))
}

// Entries reads the directory in batches, so that fn receives entries
// as soon as they are read.
func (Host) Entries(path string, fn func(entry os.DirEntry) error) error {
	dir, err := os.Open(path)
	if err != nil {
		return err
	}
	defer dir.Close()
	for {
		entries, err := dir.ReadDir(readDirBatch)
		for _, entry := range entries {
			if err := fn(entry); err != nil {
				return err
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "readdir failed")
		}
	}
}
