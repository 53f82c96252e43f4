// Copyright 2015 Aleksandr Demakin. All rights reserved.

//go:build linux

package mq

import (
	"os"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMqName = "/pq.mq.test"

func TestKernelName(t *testing.T) {
	a := assert.New(t)
	name, err := kernelName("/queue")
	a.NoError(err)
	a.Equal("queue", name)
	_, err = kernelName("queue")
	a.Equal(syscall.EINVAL, err)
	_, err = kernelName("")
	a.Equal(syscall.EINVAL, err)
}

func TestCreateLinuxMqInvalidPerm(t *testing.T) {
	_, err := CreateLinuxMessageQueue(testMqName, os.O_EXCL, 0777, 1, 128)
	assert.Error(t, err)
}

func TestCreateLinuxMqExcl(t *testing.T) {
	a := assert.New(t)
	require.NoError(t, DestroyLinuxMessageQueue(testMqName))
	mq, err := CreateLinuxMessageQueue(testMqName, os.O_EXCL, 0666, 1, 128)
	require.NoError(t, err)
	defer mq.Destroy()
	_, err = CreateLinuxMessageQueue(testMqName, os.O_EXCL, 0666, 1, 128)
	a.True(os.IsExist(errors.Cause(err)))
}

func TestLinuxMqGetAttrs(t *testing.T) {
	a := assert.New(t)
	require.NoError(t, DestroyLinuxMessageQueue(testMqName))
	mq, err := CreateLinuxMessageQueue(testMqName, os.O_EXCL, 0666, 10, 1024)
	require.NoError(t, err)
	defer mq.Destroy()
	attrs, err := mq.Attrs()
	a.NoError(err)
	a.Equal(Attrs{Flags: 0, MaxMsg: 10, MsgSize: 1024, CurMsgs: 0}, attrs)
	a.Equal(10, mq.Cap())
}

func TestOpenLinuxMqReadOnly(t *testing.T) {
	a := assert.New(t)
	require.NoError(t, DestroyLinuxMessageQueue(testMqName))
	created, err := CreateLinuxMessageQueue(testMqName, os.O_EXCL, 0666, 4, 256)
	require.NoError(t, err)
	defer created.Destroy()
	mq, err := OpenLinuxMessageQueue(testMqName, os.O_RDONLY)
	require.NoError(t, err)
	a.Equal(testMqName, mq.Name())
	attrs, err := mq.Attrs()
	a.NoError(err)
	a.Equal(4, attrs.MaxMsg)
	a.Equal(256, attrs.MsgSize)
	a.NoError(mq.Close())
	a.Error(mq.Close())
}

func TestOpenLinuxMqNonBlock(t *testing.T) {
	a := assert.New(t)
	require.NoError(t, DestroyLinuxMessageQueue(testMqName))
	created, err := CreateLinuxMessageQueue(testMqName, os.O_EXCL, 0666, 1, 128)
	require.NoError(t, err)
	defer created.Destroy()
	mq, err := OpenLinuxMessageQueue(testMqName, os.O_RDONLY|O_NONBLOCK)
	require.NoError(t, err)
	defer mq.Close()
	attrs, err := mq.Attrs()
	a.NoError(err)
	a.Equal(O_NONBLOCK, attrs.Flags)
}

func TestOpenLinuxMqNotExist(t *testing.T) {
	require.NoError(t, DestroyLinuxMessageQueue(testMqName))
	_, err := OpenLinuxMessageQueue(testMqName, os.O_RDONLY)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestOpenLinuxMqInvalidName(t *testing.T) {
	_, err := OpenLinuxMessageQueue("no-slash", os.O_RDONLY)
	var errno syscall.Errno
	if assert.True(t, errors.As(err, &errno)) {
		assert.Equal(t, syscall.EINVAL, errno)
	}
}

func TestUnlinkLinuxMq(t *testing.T) {
	a := assert.New(t)
	require.NoError(t, DestroyLinuxMessageQueue(testMqName))
	mq, err := CreateLinuxMessageQueue(testMqName, os.O_EXCL, 0666, 1, 128)
	require.NoError(t, err)
	a.NoError(UnlinkLinuxMessageQueue(testMqName))
	// the handle outlives the name.
	_, err = mq.Attrs()
	a.NoError(err)
	a.NoError(mq.Close())
	err = UnlinkLinuxMessageQueue(testMqName)
	a.True(os.IsNotExist(errors.Cause(err)))
	a.NoError(DestroyLinuxMessageQueue(testMqName))
}
