// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
)

// Logger prints rank-prefixed diagnostics the way main.go guards every
// message behind "if mpi.Rank() == 0", so a distributed cohort does not
// interleave output. Fatal errors are always printed regardless of rank,
// since every worker may fail independently (spec §7: "surfaced at the
// call site").
type Logger struct {
	Rank    int
	Verbose bool
}

// NewLogger returns a Logger for the given worker rank
func NewLogger(rank int, verbose bool) *Logger {
	return &Logger{Rank: rank, Verbose: verbose}
}

// Msg prints an informational message from rank 0 only
func (l *Logger) Msg(format string, args ...interface{}) {
	if l.Rank != 0 || !l.Verbose {
		return
	}
	io.Pf(format, args...)
}

// Fatal writes a human-readable diagnostic for a fatal error to stderr
// (spec §7 "user-visible behavior") and panics, matching main.go's
// recover+chk.CallerInfo+log-flush sequence.
func (l *Logger) Fatal(err *Error) {
	fmt.Fprintf(os.Stderr, "[rank %d] ERROR (%s): %s\n", l.Rank, err.Kind, err.Msg)
	panic(err)
}
