// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import "testing"

func TestTickAddSub(t *testing.T) {
	a := Tick(10)
	b := Tick(3)
	if got := a.Add(b); got != 13 {
		t.Errorf("Add: got %d, want 13", got)
	}
	if got := a.Sub(b); got != 7 {
		t.Errorf("Sub: got %d, want 7", got)
	}
}

func TestTickString(t *testing.T) {
	if got := Tick(42).String(); got != "42" {
		t.Errorf("String: got %q, want %q", got, "42")
	}
}

func TestMaxTick(t *testing.T) {
	if MaxTick != 0xffffffff {
		t.Errorf("MaxTick: got %d, want %d", MaxTick, uint32(0xffffffff))
	}
}
