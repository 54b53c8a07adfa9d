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

package cam16

import (
	"sync"

	"cogentcore.org/cam/colors/cam/cie"
	"cogentcore.org/cam/math32"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. Defaults represent the
// standard defined such conditions, under which the CAM16 computations operate.
// A View is computed once by [NewView] and must not be modified afterwards.
type View struct {

	// white point illumination, typically [cie.WhiteD65]
	WhitePoint math32.Vector3

	// the average luminance of the adapting field, in cd/m^2.
	// see [AdaptingLuminanceFromLux] for computing it from ambient lux.
	AdaptingLuminance float32

	// the L* of the area 10 degrees around the color in question
	BgLstar float32

	// the brightness of the entire environment, from 0 (pitch dark)
	// to 1 (dim) to 2 (average, neutral)
	Surround float32

	// whether the person's eyes have fully adapted to the illuminant,
	// i.e., discounting the illuminant
	Discounting bool

	// ratio of background relative luminance to white relative luminance (n)
	BgYToWhiteY float32

	// achromatic response to the white point
	AW float32

	// luminance level induction factor
	NBB float32

	// chromatic induction factor, equal to NBB
	NCB float32

	// exponential nonlinearity
	C float32

	// chromatic induction factor
	NC float32

	// luminance-level adaptation factor, based on the HuntLiLuo03 equations
	FL float32

	// FL to the 1/4 power
	FLRoot float32

	// base exponential nonlinearity
	Z float32

	// per-channel chromatic adaptation factors of the cone responses
	// to the white point, adjusted for discounting
	RGBD math32.Vector3
}

// AdaptingLuminanceFromLux returns the adapting luminance corresponding
// to the given ambient light in lux, assuming a gray world (an L* of 50).
func AdaptingLuminanceFromLux(lux float32) float32 {
	return (lux / math32.Pi) * (cie.LToY(50) / 100)
}

// NewView returns a new view with all parameters computed from the given
// white point, adapting luminance, background L*, surround (0-2), and
// whether the illuminant is discounted. Inputs are taken as given;
// the background L* is floored at 0.1, as a background of pure black is
// non-physical and leads to infinities.
func NewView(whitePoint math32.Vector3, adaptingLuminance, bgLstar, surround float32, discounting bool) *View {
	vw := &View{WhitePoint: whitePoint, AdaptingLuminance: adaptingLuminance, BgLstar: math32.Max(0.1, bgLstar), Surround: surround, Discounting: discounting}
	vw.update()
	return vw
}

// stdView is the shared standard view, created on first use.
var stdView = sync.OnceValue(func() *View {
	return NewView(cie.WhiteD65, AdaptingLuminanceFromLux(200), 50, 2, false)
})

// NewStdView returns the standard viewing conditions: the D65 white point,
// 200 lux of ambient light, a background L* of 50, average surround,
// and no discounting. The same read-only instance is returned on every call.
func NewStdView() *View {
	return stdView()
}

// update computes all the derived values from the main parameters
func (vw *View) update() {
	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rW, gW, bW := XYZToLMS(vw.WhitePoint.X, vw.WhitePoint.Y, vw.WhitePoint.Z)

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	f := 0.8 + (vw.Surround / 10)
	// "Exponential non-linearity"
	if f >= 0.9 {
		vw.C = math32.Lerp(0.59, 0.69, ((f - 0.9) * 10))
	} else {
		vw.C = math32.Lerp(0.525, 0.59, ((f - 0.8) * 10))
	}
	// Calculate degree of adaptation to illuminant
	d := float32(1)
	if !vw.Discounting {
		d = f * (1 - ((1 / 3.6) * math32.Exp((-vw.AdaptingLuminance-42)/92)))
	}

	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = math32.Clamp(d, 0, 1)

	// chromatic induction factor
	vw.NC = f

	// Cone responses to the whitePoint, r/g/b/W, adjusted for discounting.
	//
	// Some papers and implementations, for both CAM02 and CAM16, use the Y
	// value of the reference white instead of 100. Fairchild's Color Appearance
	// Models (3rd edition) notes that this is in error: it was included in the
	// CIE 2004a report on CIECAM02, but, later parts of the conversion process
	// account for scaling of appearance relative to the white point relative
	// luminance. This part should simply use 100 as luminance.
	vw.RGBD.X = d*(100/rW) + 1 - d
	vw.RGBD.Y = d*(100/gW) + 1 - d
	vw.RGBD.Z = d*(100/bW) + 1 - d

	// Factor used in calculating meaningful factors
	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math32.Cbrt(5*vw.AdaptingLuminance))

	vw.FLRoot = math32.Pow(vw.FL, 0.25)

	// Intermediate factor, ratio of background relative luminance to white relative luminance
	n := cie.LToY(vw.BgLstar) / vw.WhitePoint.Y
	vw.BgYToWhiteY = n

	// Base exponential nonlinearity
	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math32.Sqrt(n)

	// Luminance-level induction factors
	vw.NBB = 0.725 / math32.Pow(n, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for post-saturation
	// adaptation perceptual nonlinearities.
	rA, gA, bA := LuminanceAdapt(rW, gW, bW, vw)

	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}
