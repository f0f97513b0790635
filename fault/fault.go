/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fault

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable classification of a pesel fault.
//
// It is defined as a separate type (not just string) so that transport
// adapters and callers can explicitly declare which values they expect.
// The set of kinds is closed: only the constants below are ever produced
// by this module.
type Kind string

// The complete fault taxonomy of the pesel codec.
//
// Parsing and generation share this single error surface; no other
// failure kinds exist.
const (
	// Size indicates that the input is not exactly eleven characters
	// long. It is always the first check performed, so any other fault
	// implies the length was correct.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Size Kind = "size"

	// Format indicates that the input contains a character that is not
	// an ASCII digit.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Format Kind = "bad_format"

	// DateRange indicates that the encoded birth date falls outside the
	// supported [1800, 2299] year range, or that the month-code digit
	// pair belongs to none of the five valid century bands
	// (1-12, 21-32, 41-52, 61-72, 81-92).
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 422.
	DateRange Kind = "dob_out_of_range"

	// DateImpossible indicates that the encoded (year, month, day)
	// triple is not a real calendar date — day 31 in a 30-day month,
	// February 29 outside a leap year, or a day beyond 31 outright.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 422.
	DateImpossible Kind = "invalid_dob"
)

// messages holds the fixed human-readable text for each kind. Every kind
// in the taxonomy MUST have an entry here.
var messages = map[Kind]string{
	Size:           "PESEL must be exactly 11 characters long",
	Format:         "PESEL may only contain digits",
	DateRange:      "PESEL encodes a birth date outside the supported range",
	DateImpossible: "PESEL encodes an impossible calendar date",
}

// Canonical fault instances, one per kind.
//
// These are the values the codec returns; callers compare against them
// with errors.Is. They are immutable and safe to share.
var (
	ErrSize           = New(Size)
	ErrFormat         = New(Format)
	ErrDateRange      = New(DateRange)
	ErrDateImpossible = New(DateImpossible)
)

// Error is the concrete fault value: a Kind plus its fixed message.
//
// Two Errors compare equal under errors.Is iff their Kinds match, which
// makes the canonical instances above usable as match targets regardless
// of how the error traveled (wrapped, copied, reconstructed).
type Error struct {
	// Kind is the machine-readable classification. Always one of the
	// package constants.
	Kind Kind

	// Message is the fixed human-readable description for the Kind.
	Message string
}

// New returns the fault Error for the given kind.
//
// Unknown kinds yield an Error with an empty message; the codec itself
// only ever constructs the four registered kinds.
func New(k Kind) *Error {
	return &Error{Kind: k, Message: messages[k]}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// making the fault both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is a fault Error of the same Kind.
// This is what makes errors.Is(err, fault.ErrSize) work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// String returns the canonical string form of the kind.
func (k Kind) String() string {
	return string(k)
}

// KindOf extracts the fault Kind from err, unwrapping as needed.
// The second return is false when err carries no fault Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
