// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package commands

import (
	"github.com/spf13/cobra"
)

func newUnlinkCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink /<queue-name>",
		Short: "Delete a queue",
		Long: `Remove a queue name immediately, without confirmation.

Processes holding the queue open keep using it until they close it.`,
		Args: queueNameArg,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return env.ensureMounted()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.admin.Unlink(args[0])
		},
	}
}
