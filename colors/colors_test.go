// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/cam/colors/cam/hct"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	tests := map[string]color.RGBA{
		"#fff":      {255, 255, 255, 255},
		"#123":      {0x11, 0x22, 0x33, 255},
		"#0000FF":   {0, 0, 255, 255},
		"127fcd":    {18, 127, 205, 255},
		"#ff000080": {128, 0, 0, 128},
	}
	for hex, want := range tests {
		c, err := FromHex(hex)
		assert.NoError(t, err, hex)
		assert.Equal(t, want, c, hex)
	}

	for _, hex := range []string{"#3f9ac0", "#000000", "#fedcba", "#112233"} {
		ref, err := colorful.Hex(hex)
		assert.NoError(t, err)
		r, g, b := ref.RGB255()
		assert.Equal(t, color.RGBA{r, g, b, 255}, MustFromHex(hex), hex)
	}

	_, err := FromHex("#12345")
	assert.Error(t, err)
	_, err = FromHex("#zzzzzz")
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromHex("nope") })
	assert.Equal(t, color.RGBA{}, LogFromHex("nope"))
}

func TestFromName(t *testing.T) {
	c, err := FromName("CornflowerBlue")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{100, 149, 237, 255}, c)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, MustFromName("red"))

	_, err = FromName("notacolor")
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{}, LogFromName("notacolor"))
}

func TestFromString(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	white := color.RGBA{255, 255, 255, 255}
	tests := []struct {
		str  string
		base color.Color
		want color.RGBA
	}{
		{"", nil, color.RGBA{}},
		{"   ", nil, color.RGBA{}},
		{"\t", blue, color.RGBA{}},
		{"none", nil, color.RGBA{}},
		{"#00f", nil, blue},
		{"Blue", nil, blue},
		{"rgb(0, 0, 255)", nil, blue},
		{"rgba(255, 0, 0, 128)", nil, color.RGBA{128, 0, 0, 128}},
		{"rgb(300, -5, 255)", nil, color.RGBA{255, 0, 255, 255}},
		{"inverse", blue, color.RGBA{255, 255, 0, 255}},
		{"desaturate-500", blue, hct.Desaturate(blue, 500)},
		{"spin--30", blue, hct.Spin(blue, -30)},
	}
	for _, test := range tests {
		c, err := FromString(test.str, test.base)
		assert.NoError(t, err, test.str)
		assert.Equal(t, test.want, c, test.str)
	}

	near := func(want color.RGBA, str string, base color.Color) {
		t.Helper()
		c := MustFromString(str, base)
		assert.InDelta(t, int(want.R), int(c.R), 3, str)
		assert.InDelta(t, int(want.G), int(c.G), 3, str)
		assert.InDelta(t, int(want.B), int(c.B), 3, str)
		assert.Equal(t, want.A, c.A, str)
	}
	near(blue, "hct(282.788, 87.227, 32.3)", nil)
	near(blue, "HCT( 282.788 , 87.227 , 32.3 )", nil)
	near(color.RGBA{131, 140, 255, 255}, "lighten-30", blue)
	near(color.RGBA{119, 119, 119, 255}, "blend-50-black", white)

	for _, str := range []string{"hct(1, 2)", "hct(1, 2, 3", "rgb(a, b, c)", "lighten-x", "inverse", "wobble-10", "blend-50", "notacolor"} {
		_, err := FromString(str, nil)
		assert.Error(t, err, str)
	}
	_, err := FromString("wobble-10", blue)
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{}, LogFromString("notacolor", nil))
	assert.Panics(t, func() { MustFromString("notacolor", nil) })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#127FCD", AsHex(color.RGBA{18, 127, 205, 255}))
	assert.Equal(t, "#FF000080", AsHex(color.RGBA{128, 0, 0, 128}))
	assert.Equal(t, "nil", AsHex(nil))
	assert.Equal(t, "#127FCD", AsHex(hct.FromColor(color.RGBA{18, 127, 205, 255})))

	ref, err := colorful.Hex("#127fcd")
	assert.NoError(t, err)
	assert.True(t, strings.EqualFold(ref.Hex(), AsHex(ref)))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "rgba(18, 127, 205, 255)", AsString(color.RGBA{18, 127, 205, 255}))
	assert.Equal(t, "hct(120, 0, 50)", AsString(hct.HCT{Hue: 120, Tone: 50}))
}
