// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

// Serve drains every task at the head of the wait list whose expire has
// reached the current tick, invoking each one's callback from the
// caller's context, per §4.5. It re-reads the wait list head on every
// iteration, so a callback may legally Schedule or Stop any task —
// including itself or the one that will run next — without corrupting
// the loop.
//
// Serve must be called from the single "main loop" context; it is not
// safe to call concurrently with itself (only TickIncrease may run
// concurrently with it, per §5).
func (e *Engine) Serve() {
	for {
		e.mu.Lock()
		id, ok := e.popHead()
		if !ok || e.tasks[id].expire > e.Tick() {
			e.mu.Unlock()
			return
		}
		assertf(id < TaskID(e.size), "serve: wait_id %d out of range (size %d)", id, e.size)
		t := &e.tasks[id]
		assertf(t.repetitions > 0, "serve: task %d has repetitions == 0 while listed", id)
		assertf(t.callback != nil, "serve: task %d has no callback while listed", id)

		if t.repetitions != Loop {
			t.repetitions--
		}
		cb := t.callback
		arg := t.arg
		startHook := e.hooks.Start
		endHook := e.hooks.End

		// Release the critical section before running the callback: it
		// may legally call Schedule/Stop (including on itself), which
		// would otherwise deadlock against this same mutex. This mirrors
		// the teacher's processExpired(), which unlocks around t.f(...).
		e.mu.Unlock()

		if startHook != nil {
			startHook(id)
		}
		cb(arg)
		if endHook != nil {
			endHook(id)
		}

		// Re-read current state: the callback may have mutated it (e.g.
		// self-Stop, or SetTaskRepetitions) during its own locked calls.
		e.mu.Lock()
		stillPresent := e.tasks[id].callback != nil
		runsAgain := stillPresent && e.tasks[id].repetitions > 0
		if runsAgain {
			e.scheduleLocked(id)
		}
		e.mu.Unlock()

		if !runsAgain && stillPresent {
			if e.hooks.Stop != nil {
				e.hooks.Stop(id)
			}
			e.StopTask(id)
		}
	}
}
