// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hct implements the HCT (hue, chroma, tone) color space, which
// pairs the hue and chroma of the CAM16 color appearance model with the
// L* tone of CIE L*a*b*, along with the solver that finds the sRGB
// color for a given hue, chroma, and tone.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/cam/colors/cam/cam16"
	"cogentcore.org/cam/colors/cam/cie"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
type HCT struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float32

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma.  The maximum varies as a function of hue and tone, but 150 is an upper bound.
	Chroma float32

	// tone is the L* component from the LAB (L*a*b*) color system, which is linear in human perception of lightness
	Tone float32

	// ARGB is the fully opaque sRGB color that the hue, chroma, and tone were computed from
	ARGB cie.ARGB
}

// New returns a new HCT representation for given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100
// also computes and sets the sRGB color
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func New(hue, chroma, tone float32) HCT {
	return FromARGB(SolveToARGB(hue, chroma, tone))
}

// FromARGB returns the HCT representation of the given packed color,
// under standard viewing conditions. The alpha channel is ignored.
func FromARGB(c cie.ARGB) HCT {
	c |= 0xff000000
	cam := cam16.FromARGB(c)
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: c.Lstar(), ARGB: c}
}

// FromColor constructs a new HCT color from a standard [color.Color].
// The alpha channel is ignored.
func FromColor(c color.Color) HCT {
	return FromARGB(cie.ARGBFromColor(c))
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.ARGB.RGBA()
}

// AsRGBA returns a standard color.RGBA type
func (h HCT) AsRGBA() color.RGBA {
	return h.ARGB.AsRGBA()
}

// SetHue sets the hue of this color. Chroma may decrease because chroma has a
// different maximum for any given hue and tone.
// 0 <= hue < 360; invalid values are corrected.
func (h *HCT) SetHue(hue float32) {
	*h = New(hue, h.Chroma, h.Tone)
}

// WithHue is like [HCT.SetHue] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithHue(hue float32) HCT {
	return New(hue, h.Chroma, h.Tone)
}

// SetChroma sets the chroma of this color (0 to max that depends on other params),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetChroma(chroma float32) {
	*h = New(h.Hue, chroma, h.Tone)
}

// WithChroma is like [HCT.SetChroma] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithChroma(chroma float32) HCT {
	return New(h.Hue, chroma, h.Tone)
}

// SetTone sets the tone of this color (0 < tone < 100),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetTone(tone float32) {
	*h = New(h.Hue, h.Chroma, tone)
}

// WithTone is like [HCT.SetTone] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithTone(tone float32) HCT {
	return New(h.Hue, h.Chroma, tone)
}

// SRGBToHCT returns an HCT from given SRGB color coordinates,
// under standard viewing conditions.  The RGB value range is 0-1,
// and RGB values have gamma correction.
func SRGBToHCT(r, g, b float32) HCT {
	r8, g8, b8, _ := cie.SRGBFloatToUint8(r, g, b, 1)
	return FromARGB(cie.NewARGB(r8, g8, b8))
}

// Uint32ToHCT returns an HCT from given SRGBA uint32 color coordinates,
// which are used for interchange among image.Color types.
// Uses standard viewing conditions, and RGB values already have gamma correction
// (i.e., they are SRGB values).
func Uint32ToHCT(r, g, b, a uint32) HCT {
	return FromColor(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)})
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}

// InViewingConditions returns the color as it appears under the given
// viewing conditions, expressed in HCT under the standard viewing
// conditions. The XYZ of the color as seen in vw is recast into
// CAM16 under the standard view, and the tone comes from that Y.
func (h HCT) InViewingConditions(vw *cam16.View) HCT {
	x, y, z := cam16.FromARGB(h.ARGB).XYZView(vw)
	recast := cam16.FromXYZ(x, y, z)
	return New(recast.Hue, recast.Chroma, cie.YToL(y))
}
