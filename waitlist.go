// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

// The wait list is a singly-linked list over task-table indices, ordered
// by (expire, -priority). It has no tail pointer (per §4.2, not needed at
// this scale) and is addressed purely through Engine.waitID/waitCnt plus
// each Task's nextID field — a simplification of the teacher's
// doubly-linked, head-sentinel timerLst (timer_lst.go) down to the
// minimum this spec's single ordered bucket needs.
//
// All of these helpers assume the caller holds Engine.mu (the critical
// section the spec calls for around C2 mutation).

// unlink removes id from the wait list if present, adjusting waitCnt and
// waitID. It is an O(n) walk, per §4.2/§4.4 step 4. Safe to call on an id
// that is not currently listed (a no-op in that case) — this is what
// makes Schedule's re-insertion idempotent-safe (§4.4 step 4).
func (e *Engine) unlink(id TaskID) {
	if e.waitCnt == 0 {
		return
	}
	if e.waitID == id {
		e.waitID = e.tasks[id].nextID
		e.waitCnt--
		return
	}
	prev := e.waitID
	for i := uint16(1); i < e.waitCnt; i++ {
		cur := e.tasks[prev].nextID
		if cur == id {
			e.tasks[prev].nextID = e.tasks[id].nextID
			e.waitCnt--
			return
		}
		prev = cur
	}
}

// insertOrdered places id into the wait list at the position dictated by
// (expire, -priority), per §4.4 steps 5-7. The caller must have already
// computed tasks[id].expire and ensured id is not currently listed.
func (e *Engine) insertOrdered(id TaskID) {
	t := &e.tasks[id]
	if e.waitCnt == 0 {
		e.waitID = id
		t.nextID = noTaskID
		e.waitCnt = 1
		return
	}

	prev := noTaskID
	cur := e.waitID
	for i := uint16(0); i < e.waitCnt; i++ {
		m := &e.tasks[cur]
		if m.expire > t.expire || (m.expire == t.expire && m.priority < t.priority) {
			t.nextID = cur
			if prev == noTaskID {
				e.waitID = id
			} else {
				e.tasks[prev].nextID = id
			}
			e.waitCnt++
			return
		}
		prev = cur
		cur = m.nextID
	}
	// no such m found: append after the current tail (prev)
	t.nextID = noTaskID
	e.tasks[prev].nextID = id
	e.waitCnt++
}

// popHead returns the current wait list head and whether the list is
// non-empty. It does not remove the head; callers use unlink/Schedule/
// Stop for that.
func (e *Engine) popHead() (TaskID, bool) {
	if e.waitCnt == 0 {
		return 0, false
	}
	return e.waitID, true
}

// walk calls f for each task id on the wait list, in order, stopping
// early if f returns false. Used by the diagnostic wait-table readout
// and FindWaitTask.
func (e *Engine) walk(f func(id TaskID) bool) {
	cur := e.waitID
	for i := uint16(0); i < e.waitCnt; i++ {
		if !f(cur) {
			return
		}
		cur = e.tasks[cur].nextID
	}
}
