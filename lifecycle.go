// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

// CreateTask allocates a free slot and writes callback/interval/priority/
// reserved into it. Repetitions is left at 0 (not started, per §4.6):
// the task does not enter the wait list until StartTask/OneshotTask.
//
// Preconditions (checked via assertf, per §7): callback non-nil,
// priority <= MaxPriority, and the table is not full.
func (e *Engine) CreateTask(callback TaskFunc, interval Tick, priority uint8, reserved bool) TaskID {
	assertf(callback != nil, "CreateTask: nil callback")
	assertf(priority <= MaxPriority, "CreateTask: priority %d exceeds max %d", priority, MaxPriority)

	e.mu.Lock()
	defer e.mu.Unlock()

	assertf(e.waitCnt < e.size, "CreateTask: task table full (size %d)", e.size)
	id, ok := freeSlot(e.tasks)
	assertf(ok, "CreateTask: no free slot despite wait_cnt < size")

	e.tasks[id] = Task{
		callback:    callback,
		interval:    interval,
		priority:    priority,
		reserved:    reserved,
		repetitions: 0,
		nextID:      noTaskID,
	}
	return id
}

// StartTask arms task id to fire repetitions times (or forever, if
// repetitions is Loop), passing arg to each invocation, and schedules its
// first firing interval ticks from now.
//
// Preconditions (checked via assertf, per §7): id < size, repetitions <=
// MaxRepetitions (Loop included), and the slot has a callback.
func (e *Engine) StartTask(id TaskID, repetitions uint16, arg interface{}) {
	assertf(id < TaskID(e.size), "StartTask: id %d out of range (size %d)", id, e.size)
	assertf(repetitions <= MaxRepetitions, "StartTask: repetitions %d exceeds max %d", repetitions, MaxRepetitions)
	assertf(e.tasks[id].callback != nil, "StartTask: id %d has no callback", id)

	e.mu.Lock()
	e.tasks[id].repetitions = repetitions
	e.tasks[id].arg = arg
	e.scheduleLocked(id)
	e.mu.Unlock()
}

// DelayStartTask is StartTask, but the first firing happens delay ticks
// later than usual: interval+delay from now, with every subsequent
// firing still spaced by the task's normal interval. It is not
// re-entrant with respect to the same task id, per §9: it temporarily
// mutates Task.interval for the duration of the call.
func (e *Engine) DelayStartTask(id TaskID, repetitions uint16, arg interface{}, delay Tick) {
	assertf(id < TaskID(e.size), "DelayStartTask: id %d out of range (size %d)", id, e.size)

	e.mu.Lock()
	saved := e.tasks[id].interval
	e.tasks[id].interval = saved + delay
	e.mu.Unlock()

	e.StartTask(id, repetitions, arg)

	e.mu.Lock()
	e.tasks[id].interval = saved
	e.mu.Unlock()
}

// OneshotTask is the convenience composition create(reserved=false) +
// start(repetitions=1): fire callback exactly once, interval ticks from
// now, then free the slot.
func (e *Engine) OneshotTask(callback TaskFunc, interval Tick, priority uint8, arg interface{}) TaskID {
	id := e.CreateTask(callback, interval, priority, false)
	e.StartTask(id, 1, arg)
	return id
}

// StopTask unlinks id from the wait list if present. If the slot is not
// reserved, it is also returned to the free pool (callback cleared,
// repetitions zeroed); if reserved, only wait-list membership ends — the
// callback pointer and reserved bit survive, and id can be re-started
// later (property P6).
func (e *Engine) StopTask(id TaskID) {
	assertf(id < TaskID(e.size), "StopTask: id %d out of range (size %d)", id, e.size)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.unlink(id)
	t := &e.tasks[id]
	if !t.reserved {
		*t = Task{}
	} else {
		t.repetitions = 0
		t.nextID = noTaskID
	}
}
