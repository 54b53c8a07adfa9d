// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the basic colorimetry used by the color appearance
// models: sRGB gamma linearization, conversion between linear sRGB and
// CIE XYZ, CIE L*a*b* lightness, and packed 32-bit ARGB colors.
//
// Unless a function name says otherwise (e.g., the 100 suffix), RGB and XYZ
// values are in the 0-1 range.
package cie

import "cogentcore.org/cam/math32"

// WhiteD65 is the standard D65 white point in XYZ coordinates,
// normalized so that Y = 100.
var WhiteD65 = math32.Vec3(95.047, 100.0, 108.883)
