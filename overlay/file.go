// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/glyph"
)

// ErrUnknownKey is returned for config file keys the decorator does not know.
var ErrUnknownKey = errors.New("overlay: unknown config key")

// ConfigError reports a config file value that could not be applied.
type ConfigError struct {
	Key string // config key, e.g. "line_color"
	Err error  // underlying error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("overlay: config %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// fileConfig mirrors the construction-time options. Absent keys stay nil.
type fileConfig struct {
	IndicatorStyle              *timeline.IndicatorStyle `toml:"indicator_style"`
	IndicatorSize               *float64                 `toml:"indicator_size"`
	IndicatorYPosition          *float64                 `toml:"indicator_y_position"`
	IndicatorColor              *string                  `toml:"indicator_color"`
	IndicatorGlyph              *string                  `toml:"indicator_glyph"`
	CheckedIndicatorSize        *float64                 `toml:"checked_indicator_size"`
	CheckedIndicatorStrokeWidth *float64                 `toml:"checked_indicator_stroke_width"`
	LineStyle                   *timeline.LineStyle      `toml:"line_style"`
	LineColor                   *string                  `toml:"line_color"`
	LineWidth                   *float64                 `toml:"line_width"`
	LinePadding                 *float64                 `toml:"line_padding"`
	LineDashLength              *float64                 `toml:"line_dash_length"`
	LineDashGap                 *float64                 `toml:"line_dash_gap"`
	Padding                     *float64                 `toml:"padding"`
	Side                        *Side                    `toml:"side"`
	AccentColor                 *string                  `toml:"accent_color"`
}

// LoadConfigFile reads decorator options from a TOML file. A relative
// indicator_glyph path is resolved against the file's directory.
//
// Example file:
//
//	indicator_style = "checked"
//	indicator_size = 12.0
//	line_style = "dashed"
//	line_color = "#3f51b5"
//	side = "start"
func LoadConfigFile(path string) ([]Option, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	defer f.Close()

	opts, err := decodeConfig(f, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	timeline.LoggerFor("overlay").Info("config loaded", "path", path, "options", len(opts))
	return opts, nil
}

// DecodeConfig reads decorator options from TOML. Relative glyph paths are
// resolved against the working directory.
func DecodeConfig(r io.Reader) ([]Option, error) {
	return decodeConfig(r, "")
}

func decodeConfig(r io.Reader, baseDir string) ([]Option, error) {
	var fc fileConfig
	md, err := toml.NewDecoder(r).Decode(&fc)
	if err != nil {
		return nil, fmt.Errorf("overlay: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &ConfigError{Key: undecoded[0].String(), Err: ErrUnknownKey}
	}

	var (
		opts []Option
		o    timeline.StyleOverride
	)
	if fc.IndicatorStyle != nil {
		o.IndicatorStyle = timeline.Some(*fc.IndicatorStyle)
	}
	if fc.IndicatorSize != nil {
		o.IndicatorSize = timeline.Some(*fc.IndicatorSize)
	}
	if fc.IndicatorYPosition != nil {
		o.IndicatorYPosition = timeline.Some(*fc.IndicatorYPosition)
	}
	if fc.CheckedIndicatorSize != nil {
		o.CheckedIndicatorSize = timeline.Some(*fc.CheckedIndicatorSize)
	}
	if fc.CheckedIndicatorStrokeWidth != nil {
		o.CheckedIndicatorStrokeWidth = timeline.Some(*fc.CheckedIndicatorStrokeWidth)
	}
	if fc.LineStyle != nil {
		o.LineStyle = timeline.Some(*fc.LineStyle)
	}
	if fc.LineWidth != nil {
		o.LineWidth = timeline.Some(*fc.LineWidth)
	}
	if fc.LinePadding != nil {
		o.LinePadding = timeline.Some(*fc.LinePadding)
	}
	if fc.LineDashLength != nil {
		o.LineDashLength = timeline.Some(*fc.LineDashLength)
	}
	if fc.LineDashGap != nil {
		o.LineDashGap = timeline.Some(*fc.LineDashGap)
	}

	for _, c := range []struct {
		key string
		val *string
		set func(gg.RGBA)
	}{
		{"indicator_color", fc.IndicatorColor, func(v gg.RGBA) { o.IndicatorColor = timeline.Some(v) }},
		{"line_color", fc.LineColor, func(v gg.RGBA) { o.LineColor = timeline.Some(v) }},
	} {
		if c.val == nil {
			continue
		}
		col, err := timeline.ParseColor(*c.val)
		if err != nil {
			return nil, &ConfigError{Key: c.key, Err: err}
		}
		c.set(col)
	}

	if fc.IndicatorGlyph != nil {
		p := *fc.IndicatorGlyph
		if baseDir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		size := o.IndicatorSize.Or(timeline.DefaultIndicatorSize)
		g, err := glyph.Load(p, int(math.Ceil(2*size)))
		if err != nil {
			return nil, &ConfigError{Key: "indicator_glyph", Err: err}
		}
		o.Glyph = timeline.Some[timeline.Glyph](g)
	}

	opts = append(opts, WithStyle(o))

	if fc.AccentColor != nil {
		col, err := timeline.ParseColor(*fc.AccentColor)
		if err != nil {
			return nil, &ConfigError{Key: "accent_color", Err: err}
		}
		opts = append(opts, WithTheme(Theme{Accent: col}))
	}
	if fc.Padding != nil {
		opts = append(opts, WithPadding(*fc.Padding))
	}
	if fc.Side != nil {
		opts = append(opts, WithSide(*fc.Side))
	}
	return opts, nil
}
