// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"
)

// Key is a keyboard key. Printable keys are their rune value,
// named keys are constants above the Unicode range.
type Key int32

const keyNamedBase Key = 0x110000

const (
	KeyUnknown Key = keyNamedBase + iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
	KeyCapsLock
)

var keyNames = map[Key]string{
	KeyUnknown: "Unknown", KeyEnter: "Enter", KeyEscape: "Escape", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeyDelete: "Delete", KeyInsert: "Insert",
	KeyArrowLeft: "ArrowLeft", KeyArrowRight: "ArrowRight", KeyArrowUp: "ArrowUp", KeyArrowDown: "ArrowDown",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeySpace: "Space", KeyShift: "Shift", KeyControl: "Control", KeyAlt: "Alt",
	KeyMeta: "Meta", KeyCapsLock: "CapsLock",
}

// KeyRune returns the [Key] for a printable character.
func KeyRune(r rune) Key {
	return Key(r)
}

// Rune returns the printable character of the key, and false for named keys.
func (k Key) Rune() (rune, bool) {
	if k >= 0 && k < keyNamedBase {
		return rune(k), true
	}
	return 0, false
}

func (k Key) String() string {
	if r, ok := k.Rune(); ok {
		return string(r)
	}
	if nm, ok := keyNames[k]; ok {
		return nm
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// Modifier returns the modifier flag controlled by the key, if any.
func (k Key) Modifier() (Modifiers, bool) {
	switch k {
	case KeyShift:
		return Shift, true
	case KeyControl:
		return Control, true
	case KeyAlt:
		return Alt, true
	case KeyMeta:
		return Meta, true
	}
	return 0, false
}

// Modifiers are bit flags for the modifier keys that are held.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// HasFlag returns whether all of the given modifiers are held.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f == f
}

// SetFlag sets or clears the given modifiers.
func (m *Modifiers) SetFlag(on bool, f Modifiers) {
	if on {
		*m |= f
	} else {
		*m &^= f
	}
}

func (m Modifiers) String() string {
	var parts []string
	for _, f := range []struct {
		m  Modifiers
		nm string
	}{{Shift, "Shift"}, {Control, "Control"}, {Alt, "Alt"}, {Meta, "Meta"}} {
		if m.HasFlag(f.m) {
			parts = append(parts, f.nm)
		}
	}
	return strings.Join(parts, "+")
}
