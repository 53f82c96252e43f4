// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

// Command pq manages posix message queues:
//
//	sudo pq { ls | stat /<queue-name> | unlink /<queue-name> | umount }
package main

import (
	"os"

	"github.com/nxgtw/pq/cmd/pq/commands"
)

func main() {
	os.Exit(commands.Execute(commands.DefaultEnv(), os.Args[1:]))
}
