// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package mq provides access to linux posix message queues.
// It covers the administrative part of the api: creating and opening a queue
// by name, querying its attributes, closing the handle and unlinking the name.
// Message transfer is out of its scope.
//
// Queue names follow the libc convention: they must start with a '/',
// which is stripped before the name is passed to the kernel.
package mq
