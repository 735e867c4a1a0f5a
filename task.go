// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

const (
	// MaxRepetitionsBit is the width, in bits, of Task.repetitions (the
	// Go expression of MAX_REPETITIONS_BIT).
	MaxRepetitionsBit = 12
	// MaxPriorityBit is the width, in bits, of Task.priority (the Go
	// expression of MAX_PRIORITY_BIT).
	MaxPriorityBit = 4

	// MaxRepetitions is the largest legal Task.repetitions value. It is
	// also the Loop sentinel, so the largest finite count is
	// MaxRepetitions-1.
	MaxRepetitions = (1 << MaxRepetitionsBit) - 1
	// MaxPriority is the largest legal Task.priority value.
	MaxPriority = (1 << MaxPriorityBit) - 1
	// Loop is the sentinel repetitions value meaning "repeat forever,
	// never decrement".
	Loop = MaxRepetitions
)

// noTaskID marks the absence of a task id (an empty wait list, or the
// tail of the wait list), mirroring the teacher's wheelNoIdx sentinel.
const noTaskID TaskID = ^TaskID(0)

// TaskID identifies a slot in the engine's task table.
type TaskID uint16

// TaskFunc is a task callback. arg is the opaque pointer supplied at
// Start/Oneshot time.
type TaskFunc func(arg interface{})

// Task is a single slot in the engine's fixed-capacity task table. The
// zero value is a free slot.
type Task struct {
	callback TaskFunc // nil means the slot is free
	arg      interface{}
	interval Tick // ticks between successive firings
	expire   Tick // absolute tick at which the task next fires

	repetitions uint16 // remaining fire count, [0, MaxRepetitions]; MaxRepetitions is Loop
	priority    uint8  // [0, MaxPriority], higher wins ties
	reserved    bool   // if set, Stop does not free the slot

	nextID TaskID // next task on the wait list, or noTaskID
}

// freeSlot scans the task table linearly for the first slot whose
// callback is nil and whose reserved flag is clear, per §4.1: O(size),
// acceptable since size is small and bounded. It does not itself check
// wait_cnt < size; callers (Create) must do that via assertf.
func freeSlot(tasks []Task) (TaskID, bool) {
	for i := range tasks {
		if tasks[i].callback == nil && !tasks[i].reserved {
			return TaskID(i), true
		}
	}
	return 0, false
}
