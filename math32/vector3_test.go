// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/cam/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

const StandardTol = float32(1.0e-6)

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, Vec3(2, 4, 6), v.Add(v))
	assert.Equal(t, Vector3{}, v.Sub(v))
	assert.Equal(t, Vec3(0.5, 1, 1.5), v.MulScalar(0.5))
	assert.Equal(t, Vector3{}, v.DivScalar(0))
	assert.Equal(t, float32(14), v.Dot(v))
	assert.Equal(t, Vec3(1, 2, 2), v.Min(Vector3Scalar(2)))
	assert.Equal(t, Vec3(2, 2, 3), v.Max(Vector3Scalar(2)))

	assert.Equal(t, float32(2), v.Dim(Y))
	v.SetDim(Z, 9)
	assert.Equal(t, float32(9), v.Z)
	assert.Panics(t, func() { v.Dim(Dims(3)) })

	assert.Equal(t, "(1, 2, 9)", v.String())
}

func TestLerp(t *testing.T) {
	a := Vec3(0, 10, 100)
	b := Vec3(10, 10, 0)
	TolAssertEqualVector(t, StandardTol, a, a.Lerp(b, 0))
	TolAssertEqualVector(t, StandardTol, b, a.Lerp(b, 1))
	TolAssertEqualVector(t, StandardTol, Vec3(5, 10, 50), a.Lerp(b, 0.5))
	tolassert.Equal(t, float32(7.5), Lerp(5, 10, 0.5))
}

func TestMulMatrix(t *testing.T) {
	id := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	v := Vec3(3, 4, 5)
	assert.Equal(t, v, v.MulMatrix(&id))

	m := [3][3]float32{{1, 2, 3}, {0, 1, 0}, {2, 0, 1}}
	assert.Equal(t, Vec3(26, 4, 11), v.MulMatrix(&m))
}

func TestMath(t *testing.T) {
	assert.Equal(t, float32(-1), Sign(-3))
	assert.Equal(t, float32(1), Sign(0))
	assert.Equal(t, float32(0), Signum(0))
	assert.Equal(t, float32(-1), Signum(-0.1))
	assert.Equal(t, float32(2), Clamp(5, 0, 2))
	assert.Equal(t, float32(0), Clamp(-5, 0, 2))
	assert.Equal(t, 255, ClampInt(300, 0, 255))
	tolassert.Equal(t, float32(180), RadToDeg(Pi))
	tolassert.Equal(t, float32(Pi/2), DegToRad(90))
	tolassert.Equal(t, float32(3), Cbrt(27))
}
