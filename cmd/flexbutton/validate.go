// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flexui/flexbutton/preset"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <preset-file>...",
		Short: "Check preset files for errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			failed := 0
			for _, path := range args {
				f, err := preset.Load(path)
				if err != nil {
					failed++
					log.Debug().Str("path", path).Err(err).Msg("preset file rejected")
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d presets)\n", path, len(f.Presets))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d preset files invalid", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}
