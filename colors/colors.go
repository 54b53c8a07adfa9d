// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses and formats colors given as strings,
// including hex values, standard color names, and HCT triples.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/cam/base/errors"
	"cogentcore.org/cam/colors/cam/hct"
	"golang.org/x/image/colornames"
)

// AsRGBA returns the given color as an alpha-premultiplied [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsString returns the given color as a string,
// using its String method if it has one.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found; see [MustFromName]
// and [LogFromName] for versions that do not return an error.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// MustFromName is [FromName] that panics on error.
func MustFromName(name string) color.RGBA {
	return errors.Must1(FromName(name))
}

// LogFromName is [FromName] that logs any error.
func LogFromName(name string) color.RGBA {
	return errors.Log1(FromName(name))
}

// FromString returns a color value from the given string.
// It returns any resulting error; see [MustFromString] and
// [LogFromString] for versions that do not return an error.
// FromString accepts the following types of strings: hex values,
// standard color names, "none" or "off", "rgb(r, g, b)",
// "rgba(r, g, b, a)", "hct(hue, chroma, tone)", or
// any of the following transformations (which
// use the base color as the starting point):
//   - inverse = inverse of base color
//   - lighten-VAL or darken-VAL: VAL is the HCT tone amount to lighten or darken by
//   - highlight-VAL or samelight-VAL: see [hct.Highlight] and [hct.Samelight]
//   - saturate-VAL or desaturate-VAL: VAL is the HCT chroma amount
//   - spin-VAL: VAL is the HCT hue amount
//   - blend-PCT-color: blends given percent of base relative to the given color
func FromString(str string, base color.Color) (color.RGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	if lstr == "" { // consider it null
		return color.RGBA{}, nil
	}
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "hct("):
		vals, err := parseArgs(lstr[len("hct("):], 3)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: %q: %w", str, err)
		}
		return hct.New(vals[0], vals[1], vals[2]).AsRGBA(), nil
	case strings.HasPrefix(lstr, "rgb("):
		vals, err := parseArgs(lstr[len("rgb("):], 3)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: %q: %w", str, err)
		}
		return color.RGBA{R: channel(vals[0]), G: channel(vals[1]), B: channel(vals[2]), A: 255}, nil
	case strings.HasPrefix(lstr, "rgba("):
		vals, err := parseArgs(lstr[len("rgba("):], 4)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: %q: %w", str, err)
		}
		nc := color.NRGBA{R: channel(vals[0]), G: channel(vals[1]), B: channel(vals[2]), A: channel(vals[3])}
		return AsRGBA(nc), nil
	}
	if hidx := strings.Index(lstr, "-"); hidx > 0 {
		return transform(lstr[:hidx], lstr[hidx+1:], base)
	}
	switch lstr {
	case "none", "off":
		return color.RGBA{}, nil
	case "inverse":
		if base == nil {
			return color.RGBA{}, errors.New("colors.FromString: base color must be provided for inverse color transformation")
		}
		return Inverse(base), nil
	}
	return FromName(lstr)
}

// transform applies the named transformation with the given
// argument to the base color.
func transform(cmd, arg string, base color.Color) (color.RGBA, error) {
	if base == nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: base color must be provided for %s transformation", cmd)
	}
	if cmd == "blend" {
		cidx := strings.Index(arg, "-")
		if cidx < 0 {
			return color.RGBA{}, fmt.Errorf("colors.FromString: blend color spec not found; format is: blend-PCT-color, got: %v", arg)
		}
		pct, err := strconv.ParseFloat(arg[:cidx], 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: error getting percent from %q: %w", arg[:cidx], err)
		}
		other, err := FromString(arg[cidx+1:], base)
		if err != nil {
			return color.RGBA{}, err
		}
		return hct.Blend(float32(pct), base, other), nil
	}
	v64, err := strconv.ParseFloat(arg, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: error getting amount from %q: %w", arg, err)
	}
	v := float32(v64)
	switch cmd {
	case "lighten":
		return hct.Lighten(base, v), nil
	case "darken":
		return hct.Darken(base, v), nil
	case "highlight":
		return hct.Highlight(base, v), nil
	case "samelight":
		return hct.Samelight(base, v), nil
	case "saturate":
		return hct.Saturate(base, v), nil
	case "desaturate":
		return hct.Desaturate(base, v), nil
	case "spin":
		return hct.Spin(base, v), nil
	}
	return color.RGBA{}, fmt.Errorf("colors.FromString: unknown transformation %q", cmd)
}

// parseArgs parses n comma-separated numbers terminated by a closing parenthesis.
func parseArgs(s string, n int) ([]float32, error) {
	s, ok := strings.CutSuffix(strings.TrimSpace(s), ")")
	if !ok {
		return nil, errors.New("missing closing parenthesis")
	}
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	vals := make([]float32, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, err
		}
		vals[i] = float32(v)
	}
	return vals, nil
}

// channel converts a 0-255 value into a clamped 8-bit channel.
func channel(v float32) uint8 {
	return uint8(min(max(v, 0), 255) + 0.5)
}

// MustFromString is [FromString] that panics on error.
func MustFromString(str string, base color.Color) color.RGBA {
	return errors.Must1(FromString(str, base))
}

// LogFromString is [FromString] that logs any error.
func LogFromString(str string, base color.Color) color.RGBA {
	return errors.Log1(FromString(str, base))
}

// FromHex parses the given hex color string
// and returns the resulting color. It returns any
// resulting error; see [MustFromHex] for a
// version that does not return an error.
// The #rgb, #rrggbb, and #rrggbbaa forms are supported.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return AsRGBA(color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}), nil
}

// MustFromHex is [FromHex] that panics on error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// LogFromHex is [FromHex] that logs any error.
func LogFromHex(hex string) color.RGBA {
	return errors.Log1(FromHex(hex))
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string,
// with the alpha component only included if it is not 255.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// Inverse returns the inverse of the given color
// (255 - each component). It does not change the alpha channel.
func Inverse(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return AsRGBA(color.NRGBA{R: 255 - n.R, G: 255 - n.G, B: 255 - n.B, A: n.A})
}
