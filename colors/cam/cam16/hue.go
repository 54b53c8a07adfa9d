// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "cogentcore.org/cam/math32"

// sanitizeCyclic wraps x into [0, period). All hue wrapping goes through
// this function, so that degrees and radians share one definition of order.
func sanitizeCyclic(x, period float32) float32 {
	x = math32.Mod(x, period)
	if x < 0 {
		x += period
	}
	// a tiny negative x can round up to period
	if x >= period {
		x -= period
	}
	return x
}

// SanitizeDegrees ensures that the given angle in degrees
// is within the [0, 360) range.
func SanitizeDegrees(deg float32) float32 {
	return sanitizeCyclic(deg, 360)
}

// SanitizeRadians ensures that the given angle in radians
// is within the [0, 2Pi) range.
func SanitizeRadians(rad float32) float32 {
	return sanitizeCyclic(rad, 2*math32.Pi)
}

// InCyclicOrder returns whether b is reached before c when going
// forward (counter-clockwise) from a, with all angles in radians.
func InCyclicOrder(a, b, c float32) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}

// InCyclicOrderDegrees is the same as [InCyclicOrder], with angles in degrees.
func InCyclicOrderDegrees(a, b, c float32) bool {
	return InCyclicOrder(math32.DegToRad(a), math32.DegToRad(b), math32.DegToRad(c))
}

// MinHueDistance finds the minimum distance between two hues in degrees.
// A positive number means add to a to get to b.
// A negative number means subtract from a to get to b.
func MinHueDistance(a, b float32) float32 {
	d := SanitizeDegrees(b - a)
	if d > 180 {
		return d - 360
	}
	return d
}
