// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cam converts colors to and from the HCT color space
// and reports their CAM16 color appearance.
package main

import (
	"flag"
	"os"

	"cogentcore.org/cam/config"
	"fortio.org/cli"
	"fortio.org/log"
	"github.com/muesli/termenv"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	viewFlag := flag.String("view", "", "TOML or YAML `file` with the viewing conditions used by the view command")
	swatchFlag := flag.Bool("swatch", false, "Print a swatch of each resulting color")
	cli.ArgsHelp = `command args...

Commands:
  hct color...             hue, chroma, tone and CAM16 correlates of colors
  solve hue chroma tone    the color with the given hue, chroma and tone
  dist color color         CAM16-UCS distance between two colors
  view color...            colors as they appear under the -view conditions

Colors are hex values (#0000ff), names (blue), rgb(0, 0, 255) or hct(282.8, 87.2, 32.3).
Viewing conditions can also be set with ` + config.EnvPrefix + `* environment variables,
such as ` + config.EnvPrefix + `SURROUND=1.`
	cli.MinArgs = 1
	cli.MaxArgs = -1
	cli.Main()

	vc, err := loadView(*viewFlag)
	if err != nil {
		return log.FErrf("Error loading viewing conditions: %v", err)
	}
	log.LogVf("Viewing conditions: %+v", *vc)
	r := &runner{
		w:    os.Stdout,
		view: vc,
	}
	if *swatchFlag {
		r.term = termenv.NewOutput(os.Stdout)
	}
	args := flag.Args()
	if err := r.run(args[0], args[1:]); err != nil {
		return log.FErrf("%v", err)
	}
	return 0
}

// loadView returns the viewing conditions from the given file,
// or the default ones if it is empty, updated from the environment.
func loadView(file string) (*config.View, error) {
	vc := config.Default()
	if file != "" {
		var err error
		vc, err = config.Open(file)
		if err != nil {
			return nil, err
		}
	}
	if err := vc.SetFromEnv(config.EnvPrefix); err != nil {
		return nil, err
	}
	return vc, nil
}
