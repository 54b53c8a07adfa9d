// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/cam/colors"
	"cogentcore.org/cam/colors/cam/cam16"
	"cogentcore.org/cam/colors/cam/cie"
	"cogentcore.org/cam/colors/cam/hct"
	"cogentcore.org/cam/config"
	"fortio.org/log"
	"github.com/muesli/termenv"
)

// runner runs the commands, writing results to w.
type runner struct {
	w    io.Writer
	view *config.View

	// term renders color swatches if non-nil
	term *termenv.Output
}

func (r *runner) run(cmd string, args []string) error {
	switch cmd {
	case "hct":
		return r.eachColor(cmd, args, r.describe)
	case "solve":
		return r.solve(args)
	case "dist":
		return r.dist(args)
	case "view":
		vw := r.view.CAM()
		return r.eachColor(cmd, args, func(h hct.HCT) {
			recast := h.InViewingConditions(vw)
			r.print(h.ARGB, h.String(), "->", recast.ARGB.String(), recast.String())
		})
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// eachColor parses each of the args as a color and calls fun with it.
func (r *runner) eachColor(cmd string, args []string, fun func(h hct.HCT)) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: at least one color is required", cmd)
	}
	for _, arg := range args {
		c, err := colors.FromString(arg, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		fun(hct.FromColor(c))
	}
	return nil
}

// describe prints the HCT and CAM16 correlates of the color.
func (r *runner) describe(h hct.HCT) {
	cam := cam16.FromARGB(h.ARGB)
	r.print(h.ARGB, h.String(), fmt.Sprintf("J=%.2f Q=%.2f M=%.2f s=%.2f", cam.Lightness, cam.Brightness, cam.Colorfulness, cam.Saturation))
}

func (r *runner) solve(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("solve: expected hue, chroma and tone, got %d arguments", len(args))
	}
	var v [3]float32
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		v[i] = float32(f)
	}
	log.LogVf("Solving hue %g, chroma %g, tone %g", v[0], v[1], v[2])
	h := hct.New(v[0], v[1], v[2])
	r.print(h.ARGB, h.String())
	return nil
}

func (r *runner) dist(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("dist: expected two colors, got %d arguments", len(args))
	}
	var cams [2]*cam16.CAM
	for i, arg := range args {
		c, err := colors.FromString(arg, nil)
		if err != nil {
			return fmt.Errorf("dist: %w", err)
		}
		cams[i] = cam16.FromARGB(cie.ARGBFromColor(c))
	}
	fmt.Fprintf(r.w, "%.4f\n", cams[0].Distance(cams[1]))
	return nil
}

// print prints the color followed by the given fields,
// preceded by a swatch of the color if enabled.
func (r *runner) print(c cie.ARGB, fields ...string) {
	if r.term != nil {
		fmt.Fprint(r.w, r.term.String("    ").Background(r.term.Color(c.String())).String(), " ")
	}
	fmt.Fprint(r.w, c.String())
	for _, f := range fields {
		fmt.Fprint(r.w, "  ", f)
	}
	fmt.Fprintln(r.w)
}
