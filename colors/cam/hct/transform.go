// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"

	"cogentcore.org/cam/colors/cam/cam16"
	"cogentcore.org/cam/colors/cam/cie"
	"cogentcore.org/cam/math32"
)

// adjust applies fun to the HCT form of c and returns the result
// with the alpha of c.
func adjust(c color.Color, fun func(h *HCT)) color.RGBA {
	h := FromColor(c)
	fun(&h)
	return withAlpha(h, c)
}

// Lighten raises the tone of c by amount (clamped to 0-100).
func Lighten(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) { h.SetTone(h.Tone + amount) })
}

// Darken lowers the tone of c by amount (clamped to 0-100).
func Darken(c color.Color, amount float32) color.RGBA {
	return Lighten(c, -amount)
}

// Highlight moves the tone of c by amount away from its own side
// of the midpoint: light colors (tone >= 50) get darker and dark
// colors get lighter. See also [Samelight].
func Highlight(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) {
		if h.Tone >= 50 {
			amount = -amount
		}
		h.SetTone(h.Tone + amount)
	})
}

// Samelight is the reverse of [Highlight]: light colors get
// lighter and dark colors get darker.
func Samelight(c color.Color, amount float32) color.RGBA {
	return Highlight(c, -amount)
}

// Saturate raises the chroma of c by amount. The reachable maximum
// depends on hue and tone; requests beyond it land on the gamut boundary.
func Saturate(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) { h.SetChroma(h.Chroma + amount) })
}

// Desaturate lowers the chroma of c by amount, down to gray.
func Desaturate(c color.Color, amount float32) color.RGBA {
	return Saturate(c, -amount)
}

// Spin rotates the hue of c by amount degrees, which may be negative.
func Spin(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) { h.SetHue(h.Hue + amount) })
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done directly on non-premultiplied HCT values, and
// a correctly premultiplied color is returned.
func Blend(pct float32, x, y color.Color) color.RGBA {
	hx := FromColor(x)
	hy := FromColor(y)
	pct = math32.Clamp(pct, 0, 100)
	px := pct / 100
	py := 1 - px

	dhue := cam16.MinHueDistance(hx.Hue, hy.Hue)

	// weight as a function of chroma strength: if near grey, hue is unreliable
	cpy := float32(0)
	if csum := px*hx.Chroma + py*hy.Chroma; csum > 0 {
		cpy = py * hy.Chroma / csum
	}
	hue := hx.Hue + cpy*dhue

	chroma := px*hx.Chroma + py*hy.Chroma
	tone := px*hx.Tone + py*hy.Tone
	hr := New(hue, chroma, tone)
	ax := float32(cie.ARGBFromColor(x).Alpha())
	ay := float32(cie.ARGBFromColor(y).Alpha())
	return asRGBA(hr, uint8(px*ax+py*ay+0.5))
}

// IsLight reports whether c has a tone of at least 50.
func IsLight(c color.Color) bool {
	return FromColor(c).Tone >= 50
}

// IsDark reports whether c has a tone below 50.
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// withAlpha returns h as a premultiplied [color.RGBA]
// with the alpha of the original color.
func withAlpha(h HCT, orig color.Color) color.RGBA {
	return asRGBA(h, cie.ARGBFromColor(orig).Alpha())
}

func asRGBA(h HCT, alpha uint8) color.RGBA {
	c := h.ARGB&0x00ffffff | cie.ARGB(alpha)<<24
	return c.AsRGBA()
}
