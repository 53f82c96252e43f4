// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

// Package commands implements the pq command line.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nxgtw/pq/internal/admin"
	"github.com/nxgtw/pq/internal/log"
	"github.com/nxgtw/pq/mqfs"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Version is injected at build time.
var Version = "dev"

// Env is what the commands run against.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// NewAdmin is called once per invocation, after the arguments are validated.
	NewAdmin func() *admin.Admin

	admin *admin.Admin
}

// DefaultEnv returns the environment of the running process.
func DefaultEnv() *Env {
	return &Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewAdmin: func() *admin.Admin {
			return admin.New(admin.Config{MountPoint: mqfs.DefaultMountPoint})
		},
	}
}

// ensureMounted is the common precondition of all queue commands.
func (env *Env) ensureMounted() error {
	env.admin = env.NewAdmin()
	return env.admin.EnsureMounted()
}

func usage(progname string) string {
	return fmt.Sprintf("Usage: $ sudo %s { ls | stat /<queue-name> | unlink /<queue-name> | umount }", progname)
}

// NewRootCmd builds the command tree.
func NewRootCmd(env *Env) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "pq",
		Short: "Manage posix message queues",
		Long: `pq lists, inspects and unlinks posix message queues.

Before running any command it makes sure the queue filesystem is mounted
on ` + mqfs.DefaultMountPoint + `, creating the directory if needed.
Mounting and unmounting require root privileges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UnknownCommandError{Name: args[0]}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newUsageError("no command given")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.WarnLevel
			if verbose {
				level = log.DebugLevel
			}
			log.InitLogger(env.Stderr, level)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError("%v", err)
	})
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newLsCmd(env))
	root.AddCommand(newStatCmd(env))
	root.AddCommand(newUnlinkCmd(env))
	root.AddCommand(newUmountCmd(env))
	root.AddCommand(newVersionCmd(env))
	return root
}

// Execute runs the command line and returns the process exit code.
// Errors are printed to env.Stderr.
func Execute(env *Env, args []string) int {
	root := NewRootCmd(env)
	root.SetArgs(args)
	err := root.Execute()
	log.Sync()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	var usageErr *UsageError
	var unknownErr *UnknownCommandError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(env.Stderr, usage(root.Name()))
		return ExitUsage
	case errors.As(err, &unknownErr):
		return ExitUsage
	}
	return ExitFailure
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return newUsageError("%s takes no arguments", cmd.Name())
	}
	return nil
}

func queueNameArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return newUsageError("%s requires exactly one queue name", cmd.Name())
	}
	return nil
}
