// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/cam/math32"

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float32) float32 {
	if t > labEpsilon {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts a color from XYZ to L*a*b* coordinates
// using the standard D65 illuminant.  XYZ values are 0-1 based.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / (WhiteD65.X / 100))
	fy := LABCompress(y)
	fz := LABCompress(z / (WhiteD65.Z / 100))
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color from L*a*b* to XYZ coordinates
// using the standard D65 illuminant.  XYZ values are 0-1 based.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * (WhiteD65.X / 100)
	y = LABUncompress(fy)
	z = LABUncompress(fz) * (WhiteD65.Z / 100)
	return
}

// LToY converts an L* value to a Y value.
// L* in L*a*b* and Y in XYZ measure the same quantity, luminance.
// L* measures perceptual luminance, a linear scale. Y in XYZ
// measures relative luminance, a logarithmic scale.
// L* is in the range 0-100 and the returned Y is in the range 0-100.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a Y value to an L* value.
// Y is in the range 0-100 and the returned L* is in the range 0-100.
func YToL(y float32) float32 {
	return LABCompress(y/100)*116 - 16
}
