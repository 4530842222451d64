// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"sync"
	"time"

	"github.com/mecha-org/mctk-sub000/events/input"
)

// Ticker sends timer inputs to a [UI] at a fixed interval, so that its
// nodes receive tick events, for example to animate or blink a cursor.
type Ticker struct {

	// ticker is the [time.Ticker] driving the ticks, or nil when stopped.
	ticker *time.Ticker
	done   chan struct{}

	// Use Lock and Unlock on ticker directly.
	sync.Mutex
}

// Start starts sending timer inputs to the UI every interval.
// It does nothing if the ticker is already running.
func (tk *Ticker) Start(u *UI, interval time.Duration) {
	tk.Lock()
	defer tk.Unlock()
	if tk.ticker != nil {
		return
	}
	tk.ticker = time.NewTicker(interval)
	tk.done = make(chan struct{})
	go tk.tickLoop(u, tk.ticker, tk.done)
}

// Running returns whether the ticker is running.
func (tk *Ticker) Running() bool {
	tk.Lock()
	defer tk.Unlock()
	return tk.ticker != nil
}

func (tk *Ticker) tickLoop(u *UI, t *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-t.C:
			u.HandleInput(input.Timer{})
		}
	}
}

// Stop stops the ticker. It can be started again.
func (tk *Ticker) Stop() {
	tk.Lock()
	defer tk.Unlock()
	if tk.ticker == nil {
		return
	}
	tk.ticker.Stop()
	close(tk.done)
	tk.ticker = nil
	tk.done = nil
}
