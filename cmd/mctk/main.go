// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mctk provides tools for inspecting the layout of apps and
// managing the settings of the toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/mecha-org/mctk-sub000/cmd/mctk/cmd"
	"github.com/mecha-org/mctk-sub000/core"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mctk",
		Short:         "mctk inspects the layout of apps and manages toolkit settings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	var debug bool
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print view, layout, render and event traces")
	root.PersistentPreRun = func(c *cobra.Command, args []string) {
		if debug {
			core.DebugSettings.ViewTrace = true
			core.DebugSettings.LayoutTrace = true
			core.DebugSettings.RenderTrace = true
			core.DebugSettings.EventTrace = true
		}
	}
	root.AddCommand(newLayoutCmd(), newSettingsCmd())
	return root
}

func newLayoutCmd() *cobra.Command {
	c := &cmd.LayoutConfig{}
	lc := &cobra.Command{
		Use:   "layout",
		Short: "Draw the demo app offscreen and print its node tree",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.Layout(cc.OutOrStdout(), c)
		},
	}
	f := lc.Flags()
	f.Float32Var(&c.Width, "width", 480, "window width in logical pixels")
	f.Float32Var(&c.Height, "height", 320, "window height in logical pixels")
	f.Float32Var(&c.Scale, "scale", 1, "scale factor from logical to physical pixels")
	f.IntVar(&c.Items, "items", 5, "number of items in the demo list")
	f.IntVar(&c.Clicks, "clicks", 0, "number of times to click the demo button")
	f.StringVar(&c.Image, "image", "", "file to save the rendered frame to (png, jpeg, gif, tiff or bmp)")
	f.StringVar(&c.Settings, "settings", "", fmt.Sprintf("settings file (default %s)", core.SettingsFile))
	return lc
}

func newSettingsCmd() *cobra.Command {
	var file string
	sc := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.Settings(cc.OutOrStdout(), file)
		},
	}
	sc.PersistentFlags().StringVar(&file, "file", "", fmt.Sprintf("settings file (default %s)", core.SettingsFile))

	ic := &cobra.Command{
		Use:   "init",
		Short: "Save the default settings to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, args []string) error {
			fnm, err := cmd.InitSettings(file)
			if err != nil {
				return err
			}
			cc.Println("Saved default settings to", fnm)
			return nil
		},
	}
	sc.AddCommand(ic)
	return sc
}
