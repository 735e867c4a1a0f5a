// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package swtimer implements a cooperative software timer for deeply
// embedded systems: a fixed-capacity pool of tasks kept in a single
// sorted wait list, serviced from a main loop and driven by a single
// tick source (typically a hardware systick interrupt).
//
// Unlike a hierarchical timer wheel, swtimer targets small task counts
// (tens, not tens of thousands) with no dynamic allocation: the task
// table is a slice supplied by the caller at Init time, and the wait
// list is index chaining over that same slice.
package swtimer

const NAME = "swtimer"

var BuildTags []string
