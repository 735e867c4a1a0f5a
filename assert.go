// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import (
	"fmt"
	"runtime"
)

// AssertMode selects the behaviour of a failed precondition check (the
// Go expression of the original ASSERT_ENABLE compile-time knob).
type AssertMode int

const (
	// AssertOff disables all precondition checks: a violated precondition
	// is silently ignored (matches building with NODEBUG in the original
	// C source). Use only once the host application is fully validated,
	// since a violation will then corrupt engine state instead of
	// halting.
	AssertOff AssertMode = iota
	// AssertStd logs the violation as a BUG and panics (the "abort"
	// behaviour).
	AssertStd
	// AssertCallback invokes AssertHandler, then blocks forever.
	AssertCallback
	// AssertSpin blocks forever immediately, without logging or invoking
	// any callback.
	AssertSpin
)

// assertMode is the process-wide assertion behaviour. It defaults to
// AssertStd, the safest choice for a newly-integrated host.
var assertMode = AssertStd

// AssertHandler, when set and AssertMode is AssertCallback, is invoked
// with the file and line of the failed assertion.
var AssertHandler func(file string, line int)

// SetAssertMode changes the process-wide assertion behaviour.
func SetAssertMode(m AssertMode) {
	assertMode = m
}

// assertf checks cond and, if false, reacts per the configured
// AssertMode. It never returns when cond is false and the mode is not
// AssertOff: control does not come back from a failed assertion, per the
// engine's error-handling design (precondition violations are programmer
// errors, not runtime errors).
func assertf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	if assertMode == AssertOff {
		return
	}
	msg := fmt.Sprintf(format, args...)
	file, line := callerLoc()
	switch assertMode {
	case AssertStd:
		BUG("%s:%d: assertion failed: %s", file, line, msg)
		panic(fmt.Sprintf("swtimer: %s:%d: assertion failed: %s", file, line, msg))
	case AssertCallback:
		if AssertHandler != nil {
			AssertHandler(file, line)
		}
		select {}
	case AssertSpin:
		select {}
	}
}

// callerLoc returns the file and line of the swtimer call site that
// triggered the failed assertion (two frames up from here: assertf's
// caller).
func callerLoc() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "swtimer", 0
	}
	return file, line
}
