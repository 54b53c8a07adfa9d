// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the viewing
// conditions under which colors are perceived, which can be
// read from and saved to TOML or YAML files and set from the environment.
package config

import (
	"path/filepath"
	"strings"

	"cogentcore.org/cam/base/errors"
	"cogentcore.org/cam/base/iox/tomlx"
	"cogentcore.org/cam/base/iox/yamlx"
	"cogentcore.org/cam/colors/cam/cam16"
	"cogentcore.org/cam/colors/cam/cie"
	"cogentcore.org/cam/math32"
	"fortio.org/struct2env"
)

// EnvPrefix is the prefix of the environment variables
// read by [View.SetFromEnv], as in CAM_SURROUND.
const EnvPrefix = "CAM_"

// View is the configuration of the viewing conditions,
// from which a [cam16.View] is built with [View.CAM].
type View struct {

	// the XYZ of the white point illumination
	WhitePoint math32.Vector3 `env:"-"`

	// the ambient light in lux, from which the adapting luminance
	// is computed if AdaptingLuminance is 0
	Lux float32

	// the average luminance of the adapting field, in cd/m^2;
	// if 0, it is computed from Lux
	AdaptingLuminance float32

	// the L* of the area 10 degrees around the color in question
	BgLstar float32

	// the brightness of the entire environment, from 0 (pitch dark)
	// to 1 (dim) to 2 (average, neutral)
	Surround float32

	// whether the eyes are fully adapted to the illuminant
	Discounting bool
}

// Default returns the configuration of the standard viewing conditions.
func Default() *View {
	return &View{
		WhitePoint: cie.WhiteD65,
		Lux:        200,
		BgLstar:    50,
		Surround:   2,
	}
}

// isYAML returns whether the given file should be read as YAML
// rather than TOML, based on its extension.
func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// Open returns the configuration read from the given file, which is
// YAML if it has a .yaml or .yml extension and TOML otherwise.
// Values not present in the file keep their [Default] values.
func Open(filename string) (*View, error) {
	v := Default()
	var err error
	if isYAML(filename) {
		err = yamlx.Open(v, filename)
	} else {
		err = tomlx.Open(v, filename)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Save saves the configuration to the given file, using the
// same extension rules as [Open].
func (v *View) Save(filename string) error {
	if isYAML(filename) {
		return yamlx.Save(v, filename)
	}
	return tomlx.Save(v, filename)
}

// SetFromEnv sets the configuration from environment variables named
// by the given prefix followed by the upper snake case field name,
// such as CAM_BG_LSTAR. Errors are logged in addition to being returned.
func (v *View) SetFromEnv(prefix string) error {
	return errors.Log(errors.Join(struct2env.SetFromEnv(prefix, v)...))
}

// Luminance returns the adapting luminance, computed from
// Lux if AdaptingLuminance is not set.
func (v *View) Luminance() float32 {
	if v.AdaptingLuminance > 0 {
		return v.AdaptingLuminance
	}
	return cam16.AdaptingLuminanceFromLux(v.Lux)
}

// CAM returns the CAM16 viewing conditions for this configuration.
func (v *View) CAM() *cam16.View {
	return cam16.NewView(v.WhitePoint, v.Luminance(), v.BgLstar, v.Surround, v.Discounting)
}
