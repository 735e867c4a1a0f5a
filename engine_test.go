// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import "testing"

func TestEngineInit(t *testing.T) {
	var e Engine
	tasks := make([]Task, 8)
	e.Init(tasks)

	if e.WaitCount() != 0 {
		t.Errorf("WaitCount: got %d, want 0", e.WaitCount())
	}
	if e.Tick() != 0 {
		t.Errorf("Tick: got %d, want 0", e.Tick())
	}
	if e.ResetCount() != 0 {
		t.Errorf("ResetCount: got %d, want 0", e.ResetCount())
	}
	if e.size != 8 {
		t.Errorf("size: got %d, want 8", e.size)
	}
}

func TestEngineInitClearsPriorState(t *testing.T) {
	var e Engine
	tasks := make([]Task, 4)
	e.Init(tasks)

	id := e.CreateTask(func(interface{}) {}, 5, 0, false)
	e.StartTask(id, 3, nil)
	e.TickIncrease()

	e.Init(tasks)
	if e.WaitCount() != 0 {
		t.Errorf("WaitCount after re-Init: got %d, want 0", e.WaitCount())
	}
	if e.Tick() != 0 {
		t.Errorf("Tick after re-Init: got %d, want 0", e.Tick())
	}
	if tasks[id].callback != nil {
		t.Errorf("task %d callback not cleared by re-Init", id)
	}
}

func TestTickIncrease(t *testing.T) {
	var e Engine
	e.Init(make([]Task, 2))

	for i := 0; i < 5; i++ {
		e.TickIncrease()
	}
	if e.Tick() != 5 {
		t.Errorf("Tick: got %d, want 5", e.Tick())
	}
}
