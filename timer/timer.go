// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package timer implements wall-clock instrumentation, following the
// cputime := time.Now() / time.Now().Sub(cputime) pattern used around the
// teacher's FEM.Run and Main.Run entry points
package timer

import "time"

// Timer accumulates wall-clock duration across repeated Start/Stop pairs,
// e.g. one call per simulation step. It never gates execution: it is
// purely observational.
type Timer struct {
	Name    string
	total   time.Duration
	started time.Time
	running bool
}

// New creates a named, stopped Timer
func New(name string) *Timer {
	return &Timer{Name: name}
}

// Start begins timing; panics if already running (programmer error, not
// a runtime fault -- timers are not on any hot suspension path)
func (t *Timer) Start() {
	if t.running {
		panic("timer: " + t.Name + " already running")
	}
	t.started = time.Now()
	t.running = true
}

// Stop ends timing and adds the elapsed duration to the cumulative total
func (t *Timer) Stop() time.Duration {
	if !t.running {
		panic("timer: " + t.Name + " not running")
	}
	elapsed := time.Since(t.started)
	t.total += elapsed
	t.running = false
	return elapsed
}

// Total returns the cumulative duration across all Start/Stop pairs so far
func (t *Timer) Total() time.Duration {
	return t.total
}
