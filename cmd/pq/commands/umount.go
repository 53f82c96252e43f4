// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package commands

import (
	"github.com/spf13/cobra"
)

func newUmountCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "umount",
		Short: "Unmount the queue filesystem",
		Long: `Unmount the queue filesystem and remove its mount point.

If the filesystem is in use, it is left mounted and the command succeeds.`,
		Args: noArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return env.ensureMounted()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.admin.Unmount()
		},
	}
}
