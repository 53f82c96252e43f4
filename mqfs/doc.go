// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package mqfs manages the linux message queue filesystem.
//
// On linux, message queues live in a virtual filesystem of type "mqueue".
// Once it is mounted, usually on /dev/mqueue, every queue shows up as a
// regular file and the queues can be listed like ordinary directory entries.
package mqfs
