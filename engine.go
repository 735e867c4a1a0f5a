// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import (
	"sync"
	"sync/atomic"
)

// Hooks are optional callbacks fired around task lifecycle events. A nil
// hook is never called — the Go equivalent of the original
// TASK_HOOK_ENABLE compile-time knob (see SPEC_FULL.md §6).
type Hooks struct {
	Start    func(id TaskID)
	End      func(id TaskID)
	Stop     func(id TaskID)
	Schedule func(id TaskID)
}

// Engine is one instance of the scheduling engine: a fixed task table,
// the wait list threaded through it, and the current tick. The zero
// value is not usable; call Init.
type Engine struct {
	mu sync.Mutex // critical section guarding everything below but timetick

	tasks []Task // externally-supplied, fixed length
	size  uint16

	timetick atomic.Uint32 // current tick; touched by TickIncrease (ISR ctx)

	waitCnt uint16
	waitID  TaskID

	resetCnt uint32 // diagnostic: incremented on each rollback

	hooks Hooks
}

// Init prepares e to use tasks as its task table. tasks must be
// non-empty; it is neither copied nor grown — the caller owns its
// lifetime and must not reuse it for anything else while e is in use.
//
// Per §7, a violated precondition here is a programmer error, not a
// runtime error: Init does not return one.
func (e *Engine) Init(tasks []Task) {
	assertf(tasks != nil, "Init called with nil task table")
	assertf(len(tasks) != 0, "Init called with empty task table")
	assertf(len(tasks) <= int(noTaskID), "task table too large: %d slots", len(tasks))

	for i := range tasks {
		tasks[i] = Task{}
	}
	e.tasks = tasks
	e.size = uint16(len(tasks))
	e.timetick.Store(0)
	e.waitCnt = 0
	e.waitID = 0
	e.resetCnt = 0
	e.hooks = Hooks{}
}

// lock acquires the critical section. Any operation touching the wait
// list links, waitCnt, waitID, or task-slot fields other than timetick
// must be bracketed by lock/unlock, per §5 — the Go stand-in for the
// spec's disable-interrupts/enable-interrupts pair.
func (e *Engine) lock() {
	e.mu.Lock()
}

func (e *Engine) unlock() {
	e.mu.Unlock()
}

// TickIncrease advances the engine's tick by one. It is the engine's
// only ISR-context entry point: it touches nothing but the atomic tick
// counter, so it may be called concurrently with any other Engine method
// without holding the critical section, per §5.
func (e *Engine) TickIncrease() {
	e.timetick.Add(1)
}

// Tick returns the engine's current tick value.
func (e *Engine) Tick() Tick {
	return Tick(e.timetick.Load())
}

// SetTick forcibly sets the current tick, for tests and for hosts that
// need to seed the engine at a specific value (e.g. to reproduce the
// tick-rollback fixture in §8). Not part of normal operation.
func (e *Engine) SetTick(t Tick) {
	e.timetick.Store(uint32(t))
}

// ResetCount returns the number of times the engine has rolled back the
// wait list to avoid tick overflow (diagnostic counter, invariant/
// property P4).
func (e *Engine) ResetCount() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resetCnt
}

// rollback subtracts the current tick from every queued expire and then
// zeroes the tick, per §4.3. It must be called with e.mu held. It
// preserves all relative orderings in the wait list (every expire shifts
// by the same amount), so no re-sort is needed.
func (e *Engine) rollback() {
	now := e.Tick()
	e.walk(func(id TaskID) bool {
		t := &e.tasks[id]
		if t.expire >= now {
			t.expire -= now
		} else {
			t.expire = 0
		}
		return true
	})
	e.timetick.Store(0)
	e.resetCnt++
	if DBGon() {
		DBG("rollback at tick %d (reset #%d)", now, e.resetCnt)
	}
}
