// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/listview"
	"github.com/gogpu/timeline/overlay"
	"github.com/gogpu/timeline/raster"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

type renderOptions struct {
	items     int
	done      int
	width     int
	height    int
	rowHeight float64
	scroll    float64
	side      string
	sideSet   bool
	config    string
	out       string
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a list with a timeline overlay to PNG",
		Long: `The render command lays out --items rows, scrolls the list and draws
the visible rows with their timeline.

Example:
  timelinedemo render --items 20 --scroll 120
  timelinedemo render --side end --out end.png
  timelinedemo render --config timeline.toml -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.sideSet = cmd.Flags().Changed("side")
			n, err := runRender(o)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rows rendered to %s (%dx%d)\n", n, o.out, o.width, o.height)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.items, "items", 10, "Number of list items")
	f.IntVar(&o.done, "done", 2, "Number of finished items drawn checked")
	f.IntVar(&o.width, "width", 480, "Image width in pixels")
	f.IntVar(&o.height, "height", 640, "Image height in pixels")
	f.Float64Var(&o.rowHeight, "row-height", 96, "Row height in pixels")
	f.Float64Var(&o.scroll, "scroll", 0, "Scroll offset in pixels")
	f.StringVar(&o.side, "side", "start", "Overlay side: start or end")
	f.StringVar(&o.config, "config", "", "TOML file with decorator options")
	f.StringVarP(&o.out, "out", "o", "timeline.png", "Output PNG file")
	return cmd
}

// runRender draws the demo list and returns the number of timeline rows drawn.
func runRender(o renderOptions) (int, error) {
	if o.width <= 0 || o.height <= 0 {
		return 0, fmt.Errorf("invalid image size %dx%d", o.width, o.height)
	}

	var side overlay.Side
	if err := side.UnmarshalText([]byte(o.side)); err != nil {
		return 0, err
	}
	var opts []overlay.Option
	if o.config != "" {
		fileOpts, err := overlay.LoadConfigFile(o.config)
		if err != nil {
			return 0, err
		}
		opts = fileOpts
	}
	// An explicit --side wins over the config file.
	if o.config == "" || o.sideSet {
		opts = append(opts, overlay.WithSide(side))
	}
	d := overlay.New(opts...)

	list := listview.New(float64(o.width), float64(o.height))
	list.SetItemCount(o.items, o.rowHeight)
	list.SetAdapter(progressAdapter{done: o.done})
	list.AddDecoration(d)
	list.ScrollTo(o.scroll)

	c := raster.New(o.width, o.height)
	dc := c.Context()
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	if err := drawRows(dc, list); err != nil {
		return 0, err
	}
	n := list.Draw(c)
	timeline.LoggerFor("timelinedemo").Debug("frame drawn", "rows", n, "scroll", list.Scroll())

	if err := c.SavePNG(o.out); err != nil {
		return 0, fmt.Errorf("save %s: %w", o.out, err)
	}
	return n, nil
}

// drawRows paints row cards and labels behind the overlay.
func drawRows(dc *gg.Context, list *listview.List) error {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	dc.SetFont(src.Face(16))

	for r := range list.Rows() {
		b := r.Bounds()
		dc.SetRGB(0.95, 0.95, 0.97)
		dc.DrawRoundedRectangle(b.X+4, b.Y+4, b.W-8, b.H-8, 6)
		_ = dc.Fill()

		dc.SetRGB(0.2, 0.2, 0.25)
		dc.DrawString(fmt.Sprintf("Step %d", r.Index()+1), b.X+16, b.Y+b.H/2+6)
	}
	return nil
}
