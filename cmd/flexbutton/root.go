// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	human    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "flexbutton",
		Short:         "Measure and validate self-sizing button presets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", false, "Write human readable logs")

	cmd.AddCommand(newMeasureCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger creates the logger for a command run, writing to w.
func newLogger(flags *rootFlags, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if flags.logLevel != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(flags.logLevel))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	output := w
	if flags.human {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
