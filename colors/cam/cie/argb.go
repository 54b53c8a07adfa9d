// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"

	"cogentcore.org/cam/math32"
)

// ARGB is a packed 32-bit color with 8 bits per channel,
// alpha in the most significant byte, followed by red, green and blue.
// Colors produced by the color appearance models are always fully opaque.
type ARGB uint32

// NewARGB returns a fully opaque [ARGB] from the given 8-bit channels.
func NewARGB(r, g, b uint8) ARGB {
	return ARGB(0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ARGBFromColor returns the [ARGB] for the given standard [color.Color],
// removing alpha premultiplication. The alpha channel is preserved.
func ARGBFromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}

// ARGBFromLinear returns a fully opaque [ARGB] from the given linear RGB
// components in the 0-100 range. Out of range values are clamped.
func ARGBFromLinear(lin math32.Vector3) ARGB {
	return NewARGB(Delinearized(lin.X), Delinearized(lin.Y), Delinearized(lin.Z))
}

// ARGBFromXYZ returns a fully opaque [ARGB] from the given 0-100 based
// XYZ coordinates. Out of gamut values are clamped.
func ARGBFromXYZ(xyz math32.Vector3) ARGB {
	return ARGBFromLinear(xyz.MulMatrix(&XYZToSRGBMatrix))
}

// ARGBFromLstar returns the neutral gray [ARGB] with the given L* (tone).
func ARGBFromLstar(l float32) ARGB {
	c := Delinearized(LToY(l))
	return NewARGB(c, c, c)
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque returns whether the alpha channel is 255.
func (c ARGB) IsOpaque() bool { return c.Alpha() == 255 }

// Linear returns the linear RGB components of the color in the 0-100 range.
func (c ARGB) Linear() math32.Vector3 {
	return math32.Vec3(Linearized(c.Red()), Linearized(c.Green()), Linearized(c.Blue()))
}

// XYZ returns the 0-100 based XYZ coordinates of the color.
func (c ARGB) XYZ() math32.Vector3 {
	return c.Linear().MulMatrix(&SRGBToXYZMatrix)
}

// Lstar returns the L* (perceptual lightness) of the color,
// computed from the Y of its XYZ coordinates.
func (c ARGB) Lstar() float32 {
	return YToL(c.XYZ().Y)
}

// AsRGBA returns the color as a standard alpha-premultiplied [color.RGBA].
func (c ARGB) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.AsNRGBA()).(color.RGBA)
}

// AsNRGBA returns the color as a standard non-premultiplied [color.NRGBA].
func (c ARGB) AsNRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// RGBA implements the [color.Color] interface.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.AsNRGBA().RGBA()
}

// String returns the color as a #RRGGBB hex string,
// with an AA alpha suffix if it is not fully opaque.
func (c ARGB) String() string {
	if c.IsOpaque() {
		return fmt.Sprintf("#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Red(), c.Green(), c.Blue(), c.Alpha())
}
