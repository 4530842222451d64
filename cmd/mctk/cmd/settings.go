// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mecha-org/mctk-sub000/base/iox/tomlx"
	"github.com/mecha-org/mctk-sub000/core"
)

// Settings writes the effective settings in the given settings file,
// on top of the defaults, to w as TOML. It returns an error if the
// file is invalid.
func Settings(w io.Writer, filename string) error {
	st, err := core.OpenSettings(filename)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return tomlx.Write(st, w)
}

// InitSettings saves the default settings to the given settings file,
// unless it already exists.
func InitSettings(filename string) (string, error) {
	fnm, err := core.SettingsPath(filename)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(fnm); err == nil {
		return fnm, fmt.Errorf("settings: %s already exists", fnm)
	}
	return fnm, core.SaveSettings(core.DefaultSettings(), fnm)
}
