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

package hct

import (
	"cogentcore.org/cam/colors/cam/cam16"
	"cogentcore.org/cam/colors/cam/cie"
	"cogentcore.org/cam/math32"
)

// SolveToARGB finds the color with the given hue (in degrees), chroma,
// and tone (L*) under standard viewing conditions. If the chroma is not
// attainable at the given hue and tone, it returns the color on the edge
// of the sRGB gamut with the maximal chroma at that hue and tone.
// It always returns a fully opaque color.
func SolveToARGB(hue, chroma, tone float32) cie.ARGB {
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		return cie.ARGBFromLstar(tone)
	}
	hueRadians := math32.DegToRad(cam16.SanitizeDegrees(hue))
	y := cie.LToY(tone)
	if c, ok := findResultByJ(hueRadians, chroma, y); ok {
		return c
	}
	return cie.ARGBFromLinear(BisectToLimit(y, hueRadians))
}

// SolveToRGBLin is [SolveToARGB] returning the linear RGB
// components of the solved color in the 0-1 range.
func SolveToRGBLin(hue, chroma, tone float32) (r, g, b float32) {
	lin := SolveToARGB(hue, chroma, tone).Linear().MulScalar(0.01)
	return lin.X, lin.Y, lin.Z
}

// SolveToRGB is [SolveToARGB] returning the gamma-corrected sRGB
// components of the solved color in the 0-1 range.
func SolveToRGB(hue, chroma, tone float32) (r, g, b float32) {
	c := SolveToARGB(hue, chroma, tone)
	r, g, b, _ = cie.SRGBUint8ToFloat(c.Red(), c.Green(), c.Blue(), c.Alpha())
	return
}

// findResultByJ finds a color with the given hue in radians, chroma, and
// Y by Newton iteration on the CAM16 lightness J, inverting the standard
// view CAM16 equations in each round. It returns false if the color
// lies outside of the sRGB gamut, in which case the gamut boundary
// must be searched instead.
func findResultByJ(hueRadians, chroma, y float32) (cie.ARGB, bool) {
	vw := cam16.NewStdView()

	// initial estimate of J
	j := math32.Sqrt(y) * 11

	tInnerCoeff := 1 / math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73)
	eHue := 0.25 * (math32.Cos(hueRadians+2) + 3.8)
	p1 := eHue * (50000 / 13) * vw.NC * vw.NCB
	hSin := math32.Sin(hueRadians)
	hCos := math32.Cos(hueRadians)
	for round := 0; round < 5; round++ {
		jNorm := j / 100
		alpha := float32(0)
		if chroma != 0 && j != 0 {
			alpha = chroma / math32.Sqrt(jNorm)
		}
		t := math32.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := vw.AW * math32.Pow(jNorm, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403
		scaled := math32.Vec3(
			cam16.InverseChromaticAdapt(rA),
			cam16.InverseChromaticAdapt(gA),
			cam16.InverseChromaticAdapt(bA),
		)
		linrgb := scaled.MulMatrix(&linrgbFromScaledDiscount)
		if linrgb.X < 0 || linrgb.Y < 0 || linrgb.Z < 0 {
			return 0, false
		}
		fnj := linrgb.Dot(yFromLinrgb)
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math32.Abs(fnj-y) < 0.002 {
			if linrgb.X > 100.01 || linrgb.Y > 100.01 || linrgb.Z > 100.01 {
				return 0, false
			}
			return cie.ARGBFromLinear(linrgb), true
		}
		// 2 * fn(j) / j approximates the derivative
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}
