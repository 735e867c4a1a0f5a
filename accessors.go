// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

// TicksPerMs declares the tick granularity used by MsToTicks/TicksToMs,
// the Go expression of the TICK_PER_MS compile-time knob. A host with a
// different tick rate should use its own conversion instead of these
// helpers — they exist purely for convenience.
const TicksPerMs = 1

// MsToTicks converts a millisecond duration to a tick count, rounding up
// (so a non-zero ms value never rounds down to "fire immediately").
func MsToTicks(ms uint32) Tick {
	if ms == 0 {
		return 0
	}
	ticks := ms / TicksPerMs
	if ms%TicksPerMs != 0 {
		ticks++
	}
	return Tick(ticks)
}

// TicksToMs converts a tick count to milliseconds.
func TicksToMs(t Tick) uint32 {
	return uint32(t) * TicksPerMs
}

// WaitCount returns the number of tasks currently on the wait list.
func (e *Engine) WaitCount() uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.waitCnt
}

// WaitID returns the index of the head of the wait list. It is only
// meaningful when WaitCount() > 0.
func (e *Engine) WaitID() TaskID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.waitID
}

// NextExpire returns the expire tick of the wait list head, or 0 if the
// wait list is empty.
func (e *Engine) NextExpire() Tick {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.waitCnt == 0 {
		return 0
	}
	return e.tasks[e.waitID].expire
}

// WaitTable walks the wait list in scheduled order, filling ids and
// expires (parallel slices, same length) with up to len(ids) entries. It
// returns the number of entries written.
func (e *Engine) WaitTable(ids []TaskID, expires []Tick) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(ids)
	if len(expires) < n {
		n = len(expires)
	}
	i := 0
	e.walk(func(id TaskID) bool {
		if i >= n {
			return false
		}
		ids[i] = id
		expires[i] = e.tasks[id].expire
		i++
		return true
	})
	return i
}

// FindWaitTask reports whether id is currently on the wait list.
func (e *Engine) FindWaitTask(id TaskID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	found := false
	e.walk(func(cur TaskID) bool {
		if cur == id {
			found = true
			return false
		}
		return true
	})
	return found
}

// TaskInterval returns task id's configured interval.
func (e *Engine) TaskInterval(id TaskID) Tick {
	assertf(id < TaskID(e.size), "TaskInterval: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks[id].interval
}

// SetTaskInterval changes task id's interval. It takes effect on the
// next Schedule (i.e. the next firing after the one currently pending,
// if any).
func (e *Engine) SetTaskInterval(id TaskID, interval Tick) {
	assertf(id < TaskID(e.size), "SetTaskInterval: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks[id].interval = interval
}

// TaskPriority returns task id's priority.
func (e *Engine) TaskPriority(id TaskID) uint8 {
	assertf(id < TaskID(e.size), "TaskPriority: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks[id].priority
}

// SetTaskPriority changes task id's priority. Priority only affects
// tie-breaking among tasks with the tied expire; it does not move the
// task within the wait list on its own (that happens at the next
// Schedule).
func (e *Engine) SetTaskPriority(id TaskID, priority uint8) {
	assertf(id < TaskID(e.size), "SetTaskPriority: id %d out of range (size %d)", id, e.size)
	assertf(priority <= MaxPriority, "SetTaskPriority: priority %d exceeds max %d", priority, MaxPriority)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks[id].priority = priority
}

// TaskRepetitions returns task id's remaining repetitions.
func (e *Engine) TaskRepetitions(id TaskID) uint16 {
	assertf(id < TaskID(e.size), "TaskRepetitions: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks[id].repetitions
}

// SetTaskRepetitions changes task id's remaining repetitions. Setting it
// to 0 does not itself unlink the task from the wait list. Called from
// the task's own callback, it makes Serve retire the task once the
// callback returns; otherwise a listed task left at 0 fails Serve's
// repetitions > 0 assertion when it reaches the head. Use StopTask to
// cancel a task.
func (e *Engine) SetTaskRepetitions(id TaskID, repetitions uint16) {
	assertf(id < TaskID(e.size), "SetTaskRepetitions: id %d out of range (size %d)", id, e.size)
	assertf(repetitions <= MaxRepetitions, "SetTaskRepetitions: repetitions %d exceeds max %d", repetitions, MaxRepetitions)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks[id].repetitions = repetitions
}

// TaskReserved reports task id's reserved flag.
func (e *Engine) TaskReserved(id TaskID) bool {
	assertf(id < TaskID(e.size), "TaskReserved: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks[id].reserved
}

// TaskCallback returns task id's callback, or nil if the slot is free.
func (e *Engine) TaskCallback(id TaskID) TaskFunc {
	assertf(id < TaskID(e.size), "TaskCallback: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks[id].callback
}

// SetTaskCallback replaces task id's callback. Typically used to
// re-arm a reserved, retired slot before re-starting it.
func (e *Engine) SetTaskCallback(id TaskID, callback TaskFunc) {
	assertf(id < TaskID(e.size), "SetTaskCallback: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks[id].callback = callback
}

// TaskArg returns task id's callback argument.
func (e *Engine) TaskArg(id TaskID) interface{} {
	assertf(id < TaskID(e.size), "TaskArg: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks[id].arg
}

// SetTaskArg replaces task id's callback argument.
func (e *Engine) SetTaskArg(id TaskID, arg interface{}) {
	assertf(id < TaskID(e.size), "SetTaskArg: id %d out of range (size %d)", id, e.size)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks[id].arg = arg
}

// SetStartHook installs a hook invoked just before each task's callback
// runs.
func (e *Engine) SetStartHook(h func(id TaskID)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.Start = h
}

// SetEndHook installs a hook invoked just after each task's callback
// returns.
func (e *Engine) SetEndHook(h func(id TaskID)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.End = h
}

// SetStopHook installs a hook invoked when a task retires because its
// repetitions are exhausted during Serve. It does not fire for an
// application-initiated StopTask call — StopTask is a direct cancel, not
// a retirement Serve observed, and invokes no hooks.
func (e *Engine) SetStopHook(h func(id TaskID)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.Stop = h
}

// SetScheduleHook installs a hook invoked whenever a task is placed or
// re-placed on the wait list.
func (e *Engine) SetScheduleHook(h func(id TaskID)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.Schedule = h
}
