// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/font/gofont"
	"github.com/flexui/flexbutton/preset"
	"github.com/flexui/flexbutton/text"
	"github.com/flexui/flexbutton/widget"
)

type measureOptions struct {
	state    string
	json     bool
	title    string
	icon     string
	layout   string
	fontSize float32
}

var states = map[string]widget.State{
	"normal":   widget.Normal,
	"selected": widget.Selected,
	"disabled": widget.Disabled,
}

type size struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type rect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type measurement struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Minimum size   `json:"minimum"`
	Frame   size   `json:"frame"`
	Image   *rect  `json:"image,omitempty"`
	Title   *rect  `json:"title,omitempty"`
	Label   string `json:"label"`
}

func newMeasureCmd(root *rootFlags) *cobra.Command {
	opts := measureOptions{}

	cmd := &cobra.Command{
		Use:   "measure [preset-file [preset-name...]]",
		Short: "Report the minimum size and content layout of buttons",
		Long: `Measure builds buttons from a preset file, or from the --title, --icon,
--layout and --font-size flags when no file is given, and reports their
minimum size, frame and content frames measured with the Go fonts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			st, ok := states[opts.state]
			if !ok {
				return fmt.Errorf("unknown state %q", opts.state)
			}
			presets, err := opts.presets(args)
			if err != nil {
				return err
			}
			shaper := text.NewShaper(gofont.Collection())
			var results []measurement
			for _, p := range presets {
				b, err := p.Build(widget.WithShaper(shaper), widget.WithLogger(log))
				if err != nil {
					return err
				}
				b.SetState(st, false)
				results = append(results, measure(p.Name, b))
			}
			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, m := range results {
				printMeasurement(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.state, "state", "normal", "Button state to measure (normal, selected, disabled)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output results in JSON format")
	cmd.Flags().StringVar(&opts.title, "title", "", "Title of an ad hoc button")
	cmd.Flags().StringVar(&opts.icon, "icon", "", "Built-in icon of an ad hoc button")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "Layout of an ad hoc button (image_left, image_right, image_top, image_bottom)")
	cmd.Flags().Float32Var(&opts.fontSize, "font-size", 0, "Title font size of an ad hoc button")

	return cmd
}

// presets returns the presets named by args, or an ad hoc preset built
// from the flags.
func (o *measureOptions) presets(args []string) ([]*preset.Preset, error) {
	if len(args) == 0 {
		p := preset.Preset{
			Name:   "adhoc",
			Layout: o.layout,
			Normal: preset.StateStyle{Icon: o.icon},
		}
		if o.title != "" {
			p.Normal.Title = &o.title
		}
		if o.fontSize != 0 {
			p.Normal.Font = &preset.Font{Size: o.fontSize}
		}
		if err := preset.Validate(&preset.File{Presets: []preset.Preset{p}}); err != nil {
			return nil, err
		}
		return []*preset.Preset{&p}, nil
	}
	f, err := preset.Load(args[0])
	if err != nil {
		return nil, err
	}
	var ps []*preset.Preset
	if len(args) == 1 {
		for i := range f.Presets {
			ps = append(ps, &f.Presets[i])
		}
		return ps, nil
	}
	for _, name := range args[1:] {
		p, ok := f.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%s: no preset named %q", args[0], name)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func measure(name string, b *widget.Button) measurement {
	ms := b.MinimumSize()
	frame := b.Frame().Size()
	snap := b.Snapshot()
	m := measurement{
		Name:    name,
		State:   b.State().String(),
		Minimum: size{Width: ms.X, Height: ms.Y},
		Frame:   size{Width: frame.X, Height: frame.Y},
		Label:   snap.Semantics.Label,
	}
	if snap.Image != nil {
		m.Image = toRect(snap.ImageFrame)
	}
	if snap.Title != "" {
		m.Title = toRect(snap.TitleFrame)
	}
	return m
}

func toRect(r f32.Rectangle) *rect {
	return &rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

func printMeasurement(w io.Writer, m measurement) {
	fmt.Fprintf(w, "%s (%s): minimum %gx%g, frame %gx%g\n",
		m.Name, m.State, m.Minimum.Width, m.Minimum.Height, m.Frame.Width, m.Frame.Height)
	if r := m.Image; r != nil {
		fmt.Fprintf(w, "  image %gx%g at (%g,%g)\n", r.Width, r.Height, r.X, r.Y)
	}
	if r := m.Title; r != nil {
		fmt.Fprintf(w, "  title %gx%g at (%g,%g)\n", r.Width, r.Height, r.X, r.Y)
	}
}
