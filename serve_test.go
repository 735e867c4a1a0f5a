// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import "testing"

func TestReservedRetention(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	r := e.CreateTask(func(interface{}) {}, 1, 0, true)
	e.StartTask(r, 1, nil)

	for e.WaitCount() > 0 {
		e.TickIncrease()
		e.Serve()
	}

	e.StopTask(r)

	if e.TaskCallback(r) == nil {
		t.Errorf("reserved task %d lost its callback after Stop", r)
	}
	if !e.TaskReserved(r) {
		t.Errorf("reserved task %d lost its reserved bit after Stop", r)
	}
	if e.FindWaitTask(r) {
		t.Errorf("reserved task %d should not be on the wait list after Stop", r)
	}
}

func TestInfiniteLoopSentinel(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	fired := 0
	l := e.CreateTask(func(interface{}) { fired++ }, 1, 0, false)
	e.StartTask(l, Loop, nil)

	const n = 20
	for i := 0; i < n; i++ {
		e.TickIncrease()
		e.Serve()
	}

	if fired != n {
		t.Errorf("fired: got %d, want %d", fired, n)
	}
	if e.TaskRepetitions(l) != Loop {
		t.Errorf("repetitions: got %d, want Loop (%d)", e.TaskRepetitions(l), Loop)
	}
}

func TestSelfStopDuringCallback(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	var id TaskID
	fired := 0
	id = e.CreateTask(func(interface{}) {
		fired++
		e.StopTask(id)
	}, 1, 0, false)
	e.StartTask(id, Loop, nil)

	for i := 0; i < 5; i++ {
		e.TickIncrease()
		e.Serve()
	}

	if fired != 1 {
		t.Errorf("fired: got %d, want 1 (self-Stop during callback must prevent re-scheduling)", fired)
	}
	if e.WaitCount() != 0 {
		t.Errorf("WaitCount: got %d, want 0", e.WaitCount())
	}
}

func TestSelfRescheduleWithLongerIntervalDuringCallback(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	var id TaskID
	fired := 0
	id = e.CreateTask(func(interface{}) {
		fired++
		if fired == 1 {
			e.SetTaskInterval(id, 2)
		}
	}, 1, 0, false)
	e.StartTask(id, 3, nil)

	for i := 0; i < 10; i++ {
		e.TickIncrease()
		e.Serve()
	}

	if fired != 3 {
		t.Errorf("fired: got %d, want 3", fired)
	}
}
