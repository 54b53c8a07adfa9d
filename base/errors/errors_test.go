// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("test error")
	assert.Equal(t, err, Log(err))

	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("twelve")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("test error")) })

	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
	assert.Panics(t, func() { Must1(strconv.Atoi("three")) })
}

func TestJoin(t *testing.T) {
	a := New("a")
	b := New("b")
	err := Join(a, b)
	assert.True(t, Is(err, a))
	assert.True(t, Is(err, b))
}
