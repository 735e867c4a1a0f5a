// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import "testing"

func TestMsToTicksRoundsUp(t *testing.T) {
	cases := []struct {
		ms   uint32
		want Tick
	}{
		{0, 0},
		{1, 1},
		{TicksPerMs, 1},
		{TicksPerMs + 1, 2},
	}
	for _, c := range cases {
		if got := MsToTicks(c.ms); got != c.want {
			t.Errorf("MsToTicks(%d): got %d, want %d", c.ms, got, c.want)
		}
	}
}

func TestTicksToMs(t *testing.T) {
	if got := TicksToMs(Tick(4)); got != 4*TicksPerMs {
		t.Errorf("TicksToMs(4): got %d, want %d", got, 4*TicksPerMs)
	}
}

func TestWaitTableOrder(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 4))

	a := e.CreateTask(func(interface{}) {}, 3, 0, false)
	b := e.CreateTask(func(interface{}) {}, 1, 0, false)
	c := e.CreateTask(func(interface{}) {}, 2, 0, false)
	e.StartTask(a, 1, nil)
	e.StartTask(b, 1, nil)
	e.StartTask(c, 1, nil)

	ids := make([]TaskID, 4)
	expires := make([]Tick, 4)
	n := e.WaitTable(ids, expires)
	if n != 3 {
		t.Fatalf("WaitTable: got %d entries, want 3", n)
	}

	want := []TaskID{b, c, a}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("entry %d: got id %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestFindWaitTask(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	id := e.CreateTask(func(interface{}) {}, 1, 0, false)
	if e.FindWaitTask(id) {
		t.Errorf("FindWaitTask: task not yet started should not be found")
	}
	e.StartTask(id, 1, nil)
	if !e.FindWaitTask(id) {
		t.Errorf("FindWaitTask: started task should be found")
	}
}

func TestHookSetters(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	var started, ended, stopped, scheduled int
	e.SetStartHook(func(TaskID) { started++ })
	e.SetEndHook(func(TaskID) { ended++ })
	e.SetStopHook(func(TaskID) { stopped++ })
	e.SetScheduleHook(func(TaskID) { scheduled++ })

	id := e.OneshotTask(func(interface{}) {}, 1, 0, nil)
	e.TickIncrease()
	e.Serve()

	if started != 1 || ended != 1 || stopped != 1 {
		t.Errorf("hook counts: started=%d ended=%d stopped=%d, want 1/1/1", started, ended, stopped)
	}
	if scheduled < 1 {
		t.Errorf("schedule hook count: got %d, want >= 1", scheduled)
	}
	if e.TaskCallback(id) != nil {
		t.Errorf("oneshot task %d should have been freed after firing once", id)
	}
}

func TestSetTaskAccessors(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	id := e.CreateTask(func(interface{}) {}, 1, 0, false)
	e.SetTaskInterval(id, 9)
	e.SetTaskPriority(id, 2)
	e.SetTaskRepetitions(id, 7)
	e.SetTaskArg(id, "payload")

	if got := e.TaskInterval(id); got != 9 {
		t.Errorf("TaskInterval: got %d, want 9", got)
	}
	if got := e.TaskPriority(id); got != 2 {
		t.Errorf("TaskPriority: got %d, want 2", got)
	}
	if got := e.TaskRepetitions(id); got != 7 {
		t.Errorf("TaskRepetitions: got %d, want 7", got)
	}
	if got := e.TaskArg(id); got != "payload" {
		t.Errorf("TaskArg: got %v, want %q", got, "payload")
	}
}
