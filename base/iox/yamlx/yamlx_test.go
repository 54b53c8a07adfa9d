// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Name  string
	Value float32
	List  []int
}

func TestSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.yaml")
	want := &testStruct{Name: "white", Value: 95.047, List: []int{1, 2, 3}}
	assert.NoError(t, Save(want, file))

	got := &testStruct{}
	assert.NoError(t, Open(got, file))
	assert.Equal(t, want, got)

	assert.Error(t, Open(got, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(&testStruct{Name: "x", Value: 2})
	assert.NoError(t, err)
	assert.Contains(t, string(b), "name: x")

	got := &testStruct{Value: 3}
	assert.NoError(t, ReadBytes(got, []byte("name: y\nvalue: 0.5\n")))
	assert.Equal(t, "y", got.Name)
	assert.Equal(t, float32(0.5), got.Value)

	assert.NoError(t, ReadBytes(got, nil))
	assert.Equal(t, "y", got.Name)
	assert.Error(t, ReadBytes(got, []byte("value: [")))
}
