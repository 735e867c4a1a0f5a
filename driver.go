// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import (
	"sync"
	"time"
)

// Driver is an optional host adapter that drives an Engine using a
// time.Ticker: one goroutine calls TickIncrease on every tick and Serve
// right after, standing in for the ISR+main-loop split described in
// §4.7. Most hosts embedding the engine into their own scheduler will
// not use Driver at all; it exists for hosts that just want a free-
// running timer goroutine, per SPEC_FULL.md §4.7.
//
// Unlike a hardware ISR, the ticker goroutine here also calls Serve
// directly after each tick, since there is no separate "main loop"
// context to poll it from. A host with its own main loop should call
// TickIncrease/Serve directly instead of using Driver.
type Driver struct {
	e      *Engine
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewDriver starts a goroutine that calls e.TickIncrease and e.Serve
// once every period. The goroutine runs until Stop is called.
func NewDriver(e *Engine, period time.Duration) *Driver {
	assertf(e != nil, "NewDriver: nil engine")
	assertf(period > 0, "NewDriver: non-positive period %v", period)

	d := &Driver{
		e:      e,
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Driver) run() {
	defer d.wg.Done()
	for {
		select {
		case <-d.ticker.C:
			d.e.TickIncrease()
			d.e.Serve()
		case <-d.done:
			return
		}
	}
}

// Stop halts the driver's goroutine and waits for it to exit. Calling
// Stop more than once panics: the second call closes an already-closed
// channel.
func (d *Driver) Stop() {
	d.ticker.Stop()
	close(d.done)
	d.wg.Wait()
}
