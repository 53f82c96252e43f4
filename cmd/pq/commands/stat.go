// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nxgtw/pq/internal/output"
	"github.com/nxgtw/pq/mq"
)

// attrsReport renders queue attributes.
type attrsReport mq.Attrs

// WriteText implements output.TextRenderer.
func (r attrsReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"flags   %d\n"+
			"maxmsg  %d\n"+
			"msgsize %d\n"+
			"curmsgs %d\n",
		r.Flags,
		r.MaxMsg,
		r.MsgSize,
		r.CurMsgs)
	return err
}

// Headers implements output.TableRenderer.
func (r attrsReport) Headers() []string {
	return []string{"ATTRIBUTE", "VALUE"}
}

// Rows implements output.TableRenderer.
func (r attrsReport) Rows() [][]string {
	return [][]string{
		{"flags", strconv.Itoa(r.Flags)},
		{"maxmsg", strconv.Itoa(r.MaxMsg)},
		{"msgsize", strconv.Itoa(r.MsgSize)},
		{"curmsgs", strconv.Itoa(r.CurMsgs)},
	}
}

func newStatCmd(env *Env) *cobra.Command {
	var formatFlag string
	var format output.Format
	cmd := &cobra.Command{
		Use:   "stat /<queue-name>",
		Short: "Print queue attributes",
		Long: `Print the flags, capacity, message size and current message count of a queue.

Examples:
  sudo pq stat /my-queue
  sudo pq stat /my-queue -o yaml`,
		Args: queueNameArg,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if format, err = output.ParseFormat(formatFlag); err != nil {
				return newUsageError("%v", err)
			}
			return env.ensureMounted()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := env.admin.Stat(args[0])
			if err != nil {
				return err
			}
			return output.NewPrinter(env.Stdout, format).Print(attrsReport(attrs))
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "output", "o", "text", "Output format (text|table|json|yaml)")
	return cmd
}
