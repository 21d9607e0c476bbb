// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flexui/flexbutton/preset"
)

type iconsOptions struct {
	out   string
	size  int
	color string
}

func newIconsCmd() *cobra.Command {
	opts := iconsOptions{}

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List the built-in icons, optionally rendering them to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var col color.NRGBA
			if opts.out != "" {
				c, err := preset.ParseColor(opts.color)
				if err != nil {
					return err
				}
				col = c
				if err := os.MkdirAll(opts.out, 0o755); err != nil {
					return err
				}
			}
			for _, name := range preset.IconNames() {
				if opts.out == "" {
					fmt.Fprintln(cmd.OutOrStdout(), name)
					continue
				}
				path := filepath.Join(opts.out, name+".png")
				if err := writeIcon(path, name, opts.size, col); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Directory to render PNG files into")
	cmd.Flags().IntVar(&opts.size, "size", 48, "Rendered icon size in pixels")
	cmd.Flags().StringVar(&opts.color, "color", "#000000", "Rendered icon color")

	return cmd
}

func writeIcon(path, name string, size int, col color.NRGBA) error {
	ic, err := preset.Icon(name)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, ic.Image(size, col)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
