// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(env.Stdout, "pq version %s\n", Version)
		},
	}
}
