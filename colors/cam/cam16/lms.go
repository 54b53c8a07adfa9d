// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License")

package cam16

import (
	"cogentcore.org/cam/math32"
)

// XYZToLMSMatrix converts XYZ to the CAM16 cone-like RGB (LMS) responses.
var XYZToLMSMatrix = [3][3]float32{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

// LMSToXYZMatrix is the inverse of [XYZToLMSMatrix].
var LMSToXYZMatrix = [3][3]float32{
	{1.8620678, -1.0112547, 0.14918678},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.01584150, -0.03412294, 1.0499644},
}

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAT16 transform from CAM16 color appearance model
// (LiLiWangEtAl17)
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	v := math32.Vec3(x, y, z).MulMatrix(&XYZToLMSMatrix)
	return v.X, v.Y, v.Z
}

// LMSToXYZ converts Long, Medium, Short cone-based responses to XYZ,
// using the inverse of the CAT16 transform.
func LMSToXYZ(l, m, s float32) (x, y, z float32) {
	v := math32.Vec3(l, m, s).MulMatrix(&LMSToXYZMatrix)
	return v.X, v.Y, v.Z
}

// ChromaticAdapt applies the post-adaptation nonlinear response
// compression to a single adapted component, preserving its sign.
func ChromaticAdapt(comp float32) float32 {
	af := math32.Pow(math32.Abs(comp), 0.42)
	return math32.Signum(comp) * 400 * af / (af + 27.13)
}

// InverseChromaticAdapt is the inverse of [ChromaticAdapt].
// The base of the power is clamped at 0 from below.
func InverseChromaticAdapt(adapted float32) float32 {
	adaptedAbs := math32.Abs(adapted)
	base := math32.Max(0, 27.13*adaptedAbs/(400-adaptedAbs))
	return math32.Signum(adapted) * math32.Pow(base, 1/0.42)
}

// LuminanceAdaptComp performs luminance adaptation and response compression
// of a single cone component, given the chromatic adaptation factor d
// and the luminance-level adaptation factor fl.
func LuminanceAdaptComp(v, d, fl float32) float32 {
	return ChromaticAdapt(fl * d * v / 100)
}

// LuminanceAdapt performs luminance adaptation and response compression
// of the given cone responses, using the given viewing conditions.
func LuminanceAdapt(l, m, s float32, vw *View) (lA, mA, sA float32) {
	lA = LuminanceAdaptComp(l, vw.RGBD.X, vw.FL)
	mA = LuminanceAdaptComp(m, vw.RGBD.Y, vw.FL)
	sA = LuminanceAdaptComp(s, vw.RGBD.Z, vw.FL)
	return
}

// InverseLuminanceAdapt is the inverse of [LuminanceAdapt].
func InverseLuminanceAdapt(lA, mA, sA float32, vw *View) (l, m, s float32) {
	l = (100 / vw.FL) * InverseChromaticAdapt(lA) / vw.RGBD.X
	m = (100 / vw.FL) * InverseChromaticAdapt(mA) / vw.RGBD.Y
	s = (100 / vw.FL) * InverseChromaticAdapt(sA) / vw.RGBD.Z
	return
}

// LMSToOps converts Long, Medium, Short cone-based responses to
// opponent components: redVgreen (a), yellowVblue (b), the
// achromatic grey response (p2), and the normalizing grey
// response used in the chroma computation (u).
func LMSToOps(l, m, s float32, vw *View) (redVgreen, yellowVblue, grey, greyNorm float32) {
	lA, mA, sA := LuminanceAdapt(l, m, s, vw)
	redVgreen, yellowVblue = AdaptedToOps(lA, mA, sA)
	// auxiliary components
	greyNorm = (20*lA + 20*mA + 21*sA) / 20
	grey = (40*lA + 20*mA + sA) / 20
	return
}

// AdaptedToOps returns the red-green (a) and yellow-blue (b) opponent
// components of the given adapted cone responses.
func AdaptedToOps(lA, mA, sA float32) (redVgreen, yellowVblue float32) {
	redVgreen = (11*lA + -12*mA + sA) / 11
	yellowVblue = (lA + mA - 2*sA) / 9
	return
}
