// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package admin

import (
	"os"
	"syscall"

	"github.com/nxgtw/pq/mq"
	"github.com/nxgtw/pq/mqfs"
)

// fakeFS records calls and returns preset errors.
// Entries are read from a real directory.
type fakeFS struct {
	mkdirErr, mountErr, unmountErr, rmdirErr error
	entriesErr                               error
	calls                                    []string
}

func (f *fakeFS) Mkdir(path string, perm os.FileMode) error {
	f.calls = append(f.calls, "mkdir")
	return f.mkdirErr
}

func (f *fakeFS) Rmdir(path string) error {
	f.calls = append(f.calls, "rmdir")
	return f.rmdirErr
}

func (f *fakeFS) Mount(target string) error {
	f.calls = append(f.calls, "mount")
	return f.mountErr
}

func (f *fakeFS) Unmount(target string) error {
	f.calls = append(f.calls, "umount")
	return f.unmountErr
}

func (f *fakeFS) Entries(path string, fn func(entry os.DirEntry) error) error {
	f.calls = append(f.calls, "entries")
	if f.entriesErr != nil {
		return f.entriesErr
	}
	return mqfs.Host{}.Entries(path, fn)
}

type fakeQueue struct {
	attrs  mq.Attrs
	err    error
	closed int
}

func (q *fakeQueue) Attrs() (mq.Attrs, error) {
	return q.attrs, q.err
}

func (q *fakeQueue) Close() error {
	q.closed++
	return nil
}

type fakeQueues struct {
	queues   map[string]*fakeQueue
	unlinked []string
}

func (f *fakeQueues) Open(name string) (Queue, error) {
	q, ok := f.queues[name]
	if !ok {
		return nil, os.NewSyscallError("mq_open", syscall.ENOENT)
	}
	return q, nil
}

func (f *fakeQueues) Unlink(name string) error {
	if _, ok := f.queues[name]; !ok {
		return os.NewSyscallError("mq_unlink", syscall.ENOENT)
	}
	delete(f.queues, name)
	f.unlinked = append(f.unlinked, name)
	return nil
}
