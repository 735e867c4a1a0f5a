// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package swtimer

import (
	"github.com/intuitivelabs/slog"
)

// Log is the package-wide logger, registered under NAME so that callers
// can tune its level independently of the rest of the host application
// (e.g. slog.SetLevel(&Log, slog.LWARN)).
var Log slog.Log

func init() {
	Log.Init(NAME)
}

// DBGon returns true if debug-level logging is currently enabled.
func DBGon() bool {
	return Log.DBGon()
}

// ERRon returns true if error-level logging is currently enabled.
func ERRon() bool {
	return Log.ERRon()
}

// WARNon returns true if warning-level logging is currently enabled.
func WARNon() bool {
	return Log.WARNon()
}

// DBG logs a debug message, gated by DBGon().
func DBG(f string, args ...interface{}) {
	Log.DBG(f, args...)
}

// WARN logs a warning message, gated by WARNon().
func WARN(f string, args ...interface{}) {
	Log.WARN(f, args...)
}

// ERR logs an error message, gated by ERRon().
func ERR(f string, args ...interface{}) {
	Log.ERR(f, args...)
}

// BUG logs an internal-invariant-violation message. It is always logged,
// regardless of level, since it indicates a programmer error in the
// caller or in this package.
func BUG(f string, args ...interface{}) {
	Log.BUG(f, args...)
}
