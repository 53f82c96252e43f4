// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nxgtw/pq/internal/output"
)

const noQueuesMessage = "(No posix queues)"

// QueueList is a list of queue names.
type QueueList []string

// WriteText implements output.TextRenderer.
func (l QueueList) WriteText(w io.Writer) error {
	for _, name := range l {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// Headers implements output.TableRenderer.
func (l QueueList) Headers() []string {
	return []string{"NAME"}
}

// Rows implements output.TableRenderer.
func (l QueueList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, name := range l {
		rows = append(rows, []string{name})
	}
	return rows
}

func newLsCmd(env *Env) *cobra.Command {
	var formatFlag string
	var format output.Format
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List queues",
		Long: `List the names of all posix message queues, one per line.

Examples:
  sudo pq ls
  sudo pq ls -o json`,
		Args: noArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if format, err = output.ParseFormat(formatFlag); err != nil {
				return newUsageError("%v", err)
			}
			return env.ensureMounted()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(env, format)
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "output", "o", "text", "Output format (text|table|json|yaml)")
	return cmd
}

func runLs(env *Env, format output.Format) error {
	if format == output.FormatText {
		// names are printed as the directory is read.
		count, err := env.admin.List(func(name string) error {
			_, err := fmt.Fprintln(env.Stdout, name)
			return err
		})
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Fprintln(env.Stdout, noQueuesMessage)
		}
		return nil
	}
	queues := QueueList{}
	if _, err := env.admin.List(func(name string) error {
		queues = append(queues, name)
		return nil
	}); err != nil {
		return err
	}
	if len(queues) == 0 && format == output.FormatTable {
		fmt.Fprintln(env.Stdout, noQueuesMessage)
		return nil
	}
	return output.NewPrinter(env.Stdout, format).Print(queues)
}
