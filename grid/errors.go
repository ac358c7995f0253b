// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/io"

// Kind is the closed set of fatal error kinds the core surfaces (spec §7)
type Kind int

// error kinds
const (
	InputMissing Kind = iota
	InputMalformed
	AllocationFailure
	TransportFailure
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case InputMissing:
		return "InputMissing"
	case InputMalformed:
		return "InputMalformed"
	case AllocationFailure:
		return "AllocationFailure"
	case TransportFailure:
		return "TransportFailure"
	case InvariantViolation:
		return "InvariantViolation"
	}
	return "Unknown"
}

// Error wraps a Kind with a human-readable diagnostic naming the file,
// identifier, or cell involved, as required by spec §7
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return io.Sf("%s: %s", e.Kind, e.Msg)
}

// Errf constructs an *Error with a formatted message
func Errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(format, args...)}
}
