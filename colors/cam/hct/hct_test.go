// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"fmt"
	"image/color"
	"testing"

	"cogentcore.org/cam/base/tolassert"
	"cogentcore.org/cam/colors/cam/cam16"
	"cogentcore.org/cam/colors/cam/cie"
	"cogentcore.org/cam/math32"
	"github.com/stretchr/testify/assert"
)

// assertARGB asserts that the two colors are within
// the given tolerance on each 8-bit channel.
func assertARGB(t *testing.T, want, got cie.ARGB, tol int, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, int(want.Red()), int(got.Red()), float64(tol), msgAndArgs...)
	assert.InDelta(t, int(want.Green()), int(got.Green()), float64(tol), msgAndArgs...)
	assert.InDelta(t, int(want.Blue()), int(got.Blue()), float64(tol), msgAndArgs...)
	assert.True(t, got.IsOpaque(), msgAndArgs...)
}

func TestHCT(t *testing.T) {
	h := SRGBToHCT(1, 1, 1)
	tolassert.EqualTol(t, 209.492, h.Hue, 0.02)
	tolassert.EqualTol(t, 2.869, h.Chroma, 0.02)
	tolassert.EqualTol(t, 100, h.Tone, 0.01)
	assert.Equal(t, cie.ARGB(0xffffffff), h.ARGB)

	r, g, b := SolveToRGB(120, 60, 50)
	h = SRGBToHCT(r, g, b)
	tolassert.EqualTol(t, 120.114, h.Hue, 1)
	tolassert.EqualTol(t, 52.82, h.Chroma, 1) // can't do 60
	tolassert.EqualTol(t, 50, h.Tone, 0.5)

	assert.Equal(t, "hct(120, 0, 50)", HCT{Hue: 120, Tone: 50}.String())
}

func TestBlue(t *testing.T) {
	blue := cie.ARGB(0xff0000ff)
	h := FromARGB(blue)
	tolassert.EqualTol(t, 282.788, h.Hue, 0.02)
	tolassert.EqualTol(t, 87.227, h.Chroma, 0.02)
	tolassert.EqualTol(t, 32.3, h.Tone, 0.01)
	assert.Equal(t, blue, h.ARGB)

	assertARGB(t, blue, SolveToARGB(h.Hue, h.Chroma, h.Tone), 1)
	assertARGB(t, blue, SolveToARGB(282.8, 87.2, 32.3), 3)

	// alpha is ignored
	assert.Equal(t, h, FromARGB(0x800000ff))
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := cie.NewARGB(uint8(r), uint8(g), uint8(b))
				h := FromARGB(c)
				assert.True(t, h.Hue >= 0 && h.Hue < 360, "hue out of range: %v", h)
				got := SolveToARGB(h.Hue, h.Chroma, h.Tone)
				assertARGB(t, c, got, 1, "%v: %v != %v", h, c, got)
			}
		}
	}
}

func TestGray(t *testing.T) {
	for _, tone := range []float32{0, 10, 32.3, 50, 77.7, 100} {
		want := cie.ARGBFromLstar(tone)
		for hue := float32(0); hue < 360; hue += 45 {
			got := SolveToARGB(hue, 0, tone)
			assert.Equal(t, want, got, "hue %g tone %g", hue, tone)
			assert.Equal(t, got.Red(), got.Green())
			assert.Equal(t, got.Green(), got.Blue())
		}
	}
	assert.Equal(t, cie.ARGB(0xff000000), SolveToARGB(120, 50, 0))
	assert.Equal(t, cie.ARGB(0xffffffff), SolveToARGB(120, 50, 100))
}

func TestMaxChroma(t *testing.T) {
	for hue := float32(0); hue < 360; hue += 30 {
		for _, tone := range []float32{20, 40, 60, 80} {
			c := SolveToARGB(hue, 100000, tone)
			msg := fmt.Sprintf("hue %g tone %g: %v", hue, tone, c)
			assert.True(t, c.IsOpaque(), msg)
			h := FromARGB(c)
			assert.Less(t, math32.Abs(cam16.MinHueDistance(hue, h.Hue)), float32(2), msg)
			tolassert.EqualTol(t, tone, h.Tone, 0.5, msg)

			assert.Equal(t, c, SolveToARGB(hue, 200000, tone), msg)
			assert.Equal(t, c, SolveToARGB(hue+360, 100000, tone), msg)
			assert.GreaterOrEqual(t, h.Chroma+1, New(hue, 30, tone).Chroma, msg)
		}
	}
}

func TestHCTAll(t *testing.T) {
	hues := []float32{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float32{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tones := []float32{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				hs := h.String()
				if chroma > 0 {
					tolassert.EqualTol(t, hue, h.Hue, 4, hs)
				}
				assert.LessOrEqual(t, h.Chroma, chroma+2.5, hs)
				tolassert.EqualTol(t, tone, h.Tone, 0.5, hs)
			}
		}
	}
}

func TestSet(t *testing.T) {
	h := New(120, 40, 50)
	w := h.WithHue(200)
	h.SetHue(200)
	assert.Equal(t, w, h)
	tolassert.EqualTol(t, 200, h.Hue, 1)

	w = h.WithChroma(20)
	h.SetChroma(20)
	assert.Equal(t, w, h)
	tolassert.EqualTol(t, 20, h.Chroma, 1)

	w = h.WithTone(70)
	h.SetTone(70)
	assert.Equal(t, w, h)
	tolassert.EqualTol(t, 70, h.Tone, 0.5)
}

func TestColor(t *testing.T) {
	c := color.RGBA{18, 127, 205, 255}
	h := FromColor(c)
	assert.Equal(t, c, h.AsRGBA())
	assert.Equal(t, h, Model.Convert(c))
	assert.Equal(t, h, Model.Convert(h))
	assert.Equal(t, h, Uint32ToHCT(c.RGBA()))

	r, g, b, a := h.RGBA()
	cr, cg, cb, ca := c.RGBA()
	assert.Equal(t, []uint32{cr, cg, cb, ca}, []uint32{r, g, b, a})

	// premultiplied input is un-premultiplied, and the result is opaque
	half := FromColor(color.RGBA{9, 63, 102, 128})
	assertARGB(t, cie.NewARGB(18, 125, 203), half.ARGB, 1)

	rl, gl, bl := SolveToRGBLin(h.Hue, h.Chroma, h.Tone)
	lin := h.ARGB.Linear().MulScalar(0.01)
	tolassert.EqualTol(t, lin.X, rl, 0.01)
	tolassert.EqualTol(t, lin.Y, gl, 0.01)
	tolassert.EqualTol(t, lin.Z, bl, 0.01)
}

func TestInViewingConditions(t *testing.T) {
	h := New(282.8, 60, 40)
	same := h.InViewingConditions(cam16.NewStdView())
	assertARGB(t, h.ARGB, same.ARGB, 1)

	dark := cam16.NewView(cie.WhiteD65, cam16.AdaptingLuminanceFromLux(10), 50, 0, false)
	recast := h.InViewingConditions(dark)
	assert.NotEqual(t, h.ARGB, recast.ARGB)
	assert.True(t, recast.Hue >= 0 && recast.Hue < 360)
	assert.True(t, recast.Tone >= 0 && recast.Tone <= 100)
}

func BenchmarkHCT(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(120, 45, 56)
	}
}

func BenchmarkBoundary(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(120, 1000, 56)
	}
}
