// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/cam/base/tolassert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, float32(0.5470991), x)
	tolassert.Equal(t, float32(0.58596003), y)
	tolassert.Equal(t, float32(0.74640036), z)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.Equal(t, float32(0.5), rl)
	tolassert.Equal(t, float32(0.6), gl)
	tolassert.Equal(t, float32(0.7), bl)

	x, y, z = SRGBToXYZ(1, 1, 1)
	tolassert.Equal(t, WhiteD65.X/100, x)
	tolassert.Equal(t, WhiteD65.Y/100, y)
	tolassert.Equal(t, WhiteD65.Z/100, z)

	x, y, z = SRGBToXYZ100(0, 0, 1)
	tolassert.Equal(t, float32(18.051042), x)
	tolassert.Equal(t, float32(7.22), y)
	tolassert.Equal(t, float32(95.034478), z)

	r, g, b := XYZ100ToSRGB(x, y, z)
	tolassert.Equal(t, float32(0), r)
	tolassert.Equal(t, float32(0), g)
	tolassert.Equal(t, float32(1), b)

	tests := [][3]float32{{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.777, 0.424, 0.521}}
	for _, test := range tests {
		x, y, z := SRGBToXYZ(test[0], test[1], test[2])
		r, g, b := XYZToSRGB(x, y, z)
		tolassert.Equal(t, test[0], r)
		tolassert.Equal(t, test[1], g)
		tolassert.Equal(t, test[2], b)
	}
}
