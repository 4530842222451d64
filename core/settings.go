// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mecha-org/mctk-sub000/base/errors"
	"github.com/mecha-org/mctk-sub000/base/iox/tomlx"
	"github.com/mecha-org/mctk-sub000/base/iox/yamlx"
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mitchellh/go-homedir"
)

// SettingsFile is the default location of the settings file.
var SettingsFile = filepath.Join("~", ".config", "mctk", "settings.toml")

// Settings are the interaction settings of a [UI].
type Settings struct {

	// DragThreshold is the distance in physical pixels that a held
	// button must move before a drag starts.
	DragThreshold float32

	// DragClickMaxDistance is the maximum distance between the press and
	// the release of a drag for the release to also be a click.
	DragClickMaxDistance float32

	// DoubleClickInterval is the maximum time between the two clicks
	// of a double-click.
	DoubleClickInterval time.Duration

	// DoubleClickMaxDistance is the maximum distance between the two
	// clicks of a double-click.
	DoubleClickMaxDistance float32

	// ScrollSpeed multiplies scroll deltas.
	ScrollSpeed float32

	// RenderCache is whether the render output of a node is reused while
	// its render hash and bounding box are unchanged.
	RenderCache bool

	// LayoutPasses is the number of layout passes per frame.
	LayoutPasses int
}

// DefaultSettings returns the default [Settings].
func DefaultSettings() *Settings {
	th := events.DefaultThresholds()
	return &Settings{
		DragThreshold:          th.DragThreshold,
		DragClickMaxDistance:   th.DragClickMaxDistance,
		DoubleClickInterval:    th.DoubleClickInterval,
		DoubleClickMaxDistance: th.DoubleClickMaxDistance,
		ScrollSpeed:            1,
		RenderCache:            true,
		LayoutPasses:           2,
	}
}

// Thresholds returns the click and drag thresholds of the settings.
func (s *Settings) Thresholds() events.Thresholds {
	return events.Thresholds{
		DragThreshold:          s.DragThreshold,
		DragClickMaxDistance:   s.DragClickMaxDistance,
		DoubleClickInterval:    s.DoubleClickInterval,
		DoubleClickMaxDistance: s.DoubleClickMaxDistance,
	}
}

// Validate returns an error if any of the settings is out of range.
func (s *Settings) Validate() error {
	var errs []error
	if s.DragThreshold < 0 {
		errs = append(errs, errors.Errorf("DragThreshold must not be negative, got %v", s.DragThreshold))
	}
	if s.DragClickMaxDistance < 0 {
		errs = append(errs, errors.Errorf("DragClickMaxDistance must not be negative, got %v", s.DragClickMaxDistance))
	}
	if s.DoubleClickInterval < 0 {
		errs = append(errs, errors.Errorf("DoubleClickInterval must not be negative, got %v", s.DoubleClickInterval))
	}
	if s.DoubleClickMaxDistance < 0 {
		errs = append(errs, errors.Errorf("DoubleClickMaxDistance must not be negative, got %v", s.DoubleClickMaxDistance))
	}
	if s.ScrollSpeed <= 0 {
		errs = append(errs, errors.Errorf("ScrollSpeed must be positive, got %v", s.ScrollSpeed))
	}
	if s.LayoutPasses < 1 {
		errs = append(errs, errors.Errorf("LayoutPasses must be at least 1, got %v", s.LayoutPasses))
	}
	return errors.Join(errs...)
}

// SettingsPath returns the given settings filename with a leading ~
// expanded, or the expanded [SettingsFile] if it is empty.
func SettingsPath(filename string) (string, error) {
	if filename == "" {
		filename = SettingsFile
	}
	return homedir.Expand(filename)
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// OpenSettings returns the settings in the given file, on top of the
// defaults. The file is YAML if it has a .yaml or .yml extension and
// TOML otherwise. A missing file is not an error.
func OpenSettings(filename string) (*Settings, error) {
	s := DefaultSettings()
	fnm, err := SettingsPath(filename)
	if err != nil {
		return s, err
	}
	if isYAML(fnm) {
		err = yamlx.Open(s, fnm)
	} else {
		err = tomlx.Open(s, fnm)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	return s, s.Validate()
}

// SaveSettings saves the settings to the given file, creating its
// directory if needed. The format follows [OpenSettings].
func SaveSettings(s *Settings, filename string) error {
	fnm, err := SettingsPath(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fnm), 0o755); err != nil {
		return err
	}
	if isYAML(fnm) {
		return yamlx.Save(s, fnm)
	}
	return tomlx.Save(s, fnm)
}

// WatchSettings calls fun with the reloaded settings whenever the given
// settings file is written or created, until the context is done.
// Settings that fail to load are logged and skipped.
func WatchSettings(ctx context.Context, filename string, fun func(s *Settings)) error {
	fnm, err := SettingsPath(filename)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// watch the directory, since editors often replace the file
	if err := w.Add(filepath.Dir(fnm)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(fnm) || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s, err := OpenSettings(fnm)
				if err != nil {
					slog.Error("core.WatchSettings: reloading settings", "file", fnm, "err", err)
					continue
				}
				fun(s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}

// DebugSettings are the currently active debugging settings.
var DebugSettings = &DebugSettingsData{}

// DebugSettingsData is the data type for debugging settings.
type DebugSettingsData struct {

	// Print a trace of the view passes
	ViewTrace bool

	// Print the layout result of every node after each layout
	LayoutTrace bool

	// Print a trace of the nodes rendering
	RenderTrace bool

	// Print a trace of event handling
	EventTrace bool
}
