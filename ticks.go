// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import "strconv"

// MaxTick is the largest representable tick value. Schedule rolls the
// whole wait list back before a task's computed expire could exceed it,
// so ordinary comparisons never need to account for wrap.
const MaxTick Tick = ^Tick(0)

// Tick is an absolute tick value: either the engine's current time or a
// task's expire time. Unlike the teacher's wraparound-tolerant Ticks
// type, Tick is a plain counter — the engine guarantees (via rollback,
// see Engine.rollback) that it never wraps while tasks are scheduled, so
// ordinary unsigned comparisons are always correct.
type Tick uint32

// Val returns the tick value as a plain uint32.
func (t Tick) Val() uint32 {
	return uint32(t)
}

// Add returns t+d.
func (t Tick) Add(d Tick) Tick {
	return t + d
}

// Sub returns t-d.
func (t Tick) Sub(d Tick) Tick {
	return t - d
}

// String converts a tick value to a string, for diagnostics.
func (t Tick) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
