// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertRGBA asserts that the two colors are within
// one unit on each channel.
func assertRGBA(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, int(want.R), int(got.R), 1, "%v != %v", want, got)
	assert.InDelta(t, int(want.G), int(got.G), 1, "%v != %v", want, got)
	assert.InDelta(t, int(want.B), int(got.B), 1, "%v != %v", want, got)
	assert.Equal(t, want.A, got.A)
}

func TestTransform(t *testing.T) {
	assertRGBA(t, color.RGBA{131, 140, 255, 255}, Lighten(color.RGBA{0, 0, 255, 255}, 30))
	assertRGBA(t, color.RGBA{0, 0, 52, 255}, Darken(color.RGBA{0, 0, 255, 255}, 30))
	assertRGBA(t, color.RGBA{80, 90, 255, 255}, Highlight(color.RGBA{0, 0, 255, 255}, 15))
	assertRGBA(t, color.RGBA{0, 82, 136, 255}, Highlight(color.RGBA{18, 127, 205, 255}, 18))

	assertRGBA(t, color.RGBA{201, 0, 143, 255}, Saturate(color.RGBA{201, 2, 143, 255}, 16))
	assertRGBA(t, color.RGBA{96, 76, 125, 255}, Desaturate(color.RGBA{112, 35, 206, 255}, 43))

	assertRGBA(t, color.RGBA{107, 66, 106, 255}, Spin(color.RGBA{30, 85, 116, 255}, 91))

	c := Blend(50, color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 255})
	assertRGBA(t, color.RGBA{119, 119, 119, 255}, c)

	assert.False(t, IsLight(color.RGBA{17, 38, 91, 255}))
	assert.True(t, IsLight(color.RGBA{178, 89, 203, 255}))
	assert.True(t, IsDark(color.RGBA{17, 38, 91, 255}))
	assert.False(t, IsDark(color.RGBA{178, 89, 203, 255}))
}

func TestTransformRange(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(color.RGBA{200, 200, 200, 255}, 100))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Darken(color.RGBA{50, 50, 50, 255}, 100))
	gray := Desaturate(color.RGBA{112, 35, 206, 255}, 500)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)

	l := Samelight(color.RGBA{178, 89, 203, 255}, 10)
	assert.True(t, IsLight(l))
	assert.Greater(t, FromColor(l).Tone, FromColor(color.RGBA{178, 89, 203, 255}).Tone)
}

func TestTransformAlpha(t *testing.T) {
	c := Darken(color.RGBA{0, 0, 128, 128}, 10)
	assert.Equal(t, uint8(128), c.A)
	assert.LessOrEqual(t, c.B, c.A)

	c = Blend(50, color.RGBA{255, 255, 255, 255}, color.RGBA{})
	assert.Equal(t, uint8(128), c.A)
}

func TestTransformPairs(t *testing.T) {
	for _, c := range []color.RGBA{{0, 0, 255, 255}, {178, 89, 203, 255}, {18, 127, 205, 255}} {
		assert.Equal(t, Lighten(c, -12), Darken(c, 12))
		assert.Equal(t, Highlight(c, -12), Samelight(c, 12))
		assert.Equal(t, Saturate(c, -20), Desaturate(c, 20))
		assert.Equal(t, IsLight(c), !IsDark(c))
	}
	dark := color.RGBA{17, 38, 91, 255}
	assert.Greater(t, FromColor(Highlight(dark, 10)).Tone, FromColor(dark).Tone)
	assert.Less(t, FromColor(Samelight(dark, 10)).Tone, FromColor(dark).Tone)
}
