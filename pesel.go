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

package pesel

import (
	"bytes"
	"encoding"
	"fmt"
	"time"

	"dirpx.dev/pesel/fault"
)

// Length is the exact number of characters in a PESEL string.
const Length = 11

// MinYear and MaxYear bound the birth years the format can encode.
//
// The five century bands force any decodable year into this range, but
// the bounds are part of the contract and are checked explicitly.
const (
	MinYear = 1800
	MaxYear = 2299
)

// maxNominalDay is the ceiling on the raw day pair before any calendar
// check is applied. Days beyond it are impossible in every month.
const maxNominalDay = 31

// checksumWeights are applied to the first ten digits in order; the
// expected check digit is the weighted sum modulo 10.
var checksumWeights = [10]int{9, 7, 3, 1, 9, 7, 3, 1, 9, 7}

// band describes one century band of the month-code pair: month codes in
// [lo, hi] decode to calendar months 1..12 of the century starting at
// base. The offset added to a month during generation is lo-1.
type band struct {
	lo, hi int
	base   int
}

// bands lists the five valid century bands in month-code order of the
// format definition (1900s first, 1800s last).
var bands = [5]band{
	{lo: 1, hi: 12, base: 1900},
	{lo: 21, hi: 32, base: 2000},
	{lo: 41, hi: 52, base: 2100},
	{lo: 61, hi: 72, base: 2200},
	{lo: 81, hi: 92, base: 1800},
}

// PESEL is an immutable, parsed PESEL number.
//
// Stored state is deliberately minimal: the verbatim raw string, the
// decoded scalar fields, and one validity boolean cached at construction
// time. Everything else (calendar year, month, sex category) is derived
// on demand. Construct values only through Parse, MustParse or Generate.
type PESEL struct {
	raw        string // the original 11-digit string, verbatim
	yearLow    int    // low two digits of the birth year (0-99)
	monthCode  int    // month plus century offset (always inside a band)
	day        int    // day of the month (1-31 nominal)
	sexDigit   int    // digit at position 9
	checkDigit int    // digit at position 10
	valid      bool   // checksum over positions 0-9 matches checkDigit
}

// Ensure PESEL implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*PESEL)(nil)
	_ encoding.TextUnmarshaler = (*PESEL)(nil)
)

// Parse decodes and validates an 11-digit PESEL string.
//
// Checks run strictly in this order, first failure wins:
//
//  1. length must be exactly 11 — fault.ErrSize;
//  2. every character must be an ASCII digit — fault.ErrFormat;
//  3. the month-code pair must fall inside one of the five century
//     bands — fault.ErrDateRange;
//  4. the decoded birth year must lie in [MinYear, MaxYear] —
//     fault.ErrDateRange;
//  5. the day pair must not exceed 31 — fault.ErrDateImpossible;
//  6. the decoded (year, month, day) must be a real calendar date,
//     leap years included — fault.ErrDateImpossible.
//
// Step 6 can be relaxed with WithPermissiveDate for callers reconciling
// historical data issued against looser rules.
//
// The checksum is computed but never rejects: a well-formed identifier
// with a wrong check digit parses successfully and reports
// Valid() == false.
func Parse(raw string, opts ...ParseOption) (*PESEL, error) {
	var ps parseSettings
	for _, opt := range opts {
		opt(&ps)
	}

	if len(raw) != Length {
		return nil, fault.ErrSize
	}
	for i := 0; i < Length; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return nil, fault.ErrFormat
		}
	}

	yearLow := pair(raw, 0)
	monthCode := pair(raw, 2)
	day := pair(raw, 4)

	b, ok := bandFor(monthCode)
	if !ok {
		return nil, fault.ErrDateRange
	}
	year := b.base + yearLow
	if year < MinYear || year > MaxYear {
		return nil, fault.ErrDateRange
	}
	if day > maxNominalDay {
		return nil, fault.ErrDateImpossible
	}
	month := monthCode - b.lo + 1
	if !ps.permissiveDate && !isRealDate(year, month, day) {
		return nil, fault.ErrDateImpossible
	}

	return &PESEL{
		raw:        raw,
		yearLow:    yearLow,
		monthCode:  monthCode,
		day:        day,
		sexDigit:   digit(raw, 9),
		checkDigit: digit(raw, 10),
		valid:      checksumOf(raw) == digit(raw, 10),
	}, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring known-good fixtures in var blocks and tests.
func MustParse(raw string, opts ...ParseOption) *PESEL {
	p, err := Parse(raw, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Raw returns the original 11-digit string, verbatim.
func (p *PESEL) Raw() string {
	return p.raw
}

// Valid reports whether the weighted checksum over the first ten digits
// agrees with the final digit. This is a descriptive fact about the
// identifier, computed once at construction; an invalid checksum did not
// prevent parsing.
func (p *PESEL) Valid() bool {
	return p.valid
}

// Sex returns the sex category encoded by the digit at position 9:
// odd digits mean Male, even digits mean Female.
func (p *PESEL) Sex() Sex {
	if p.sexDigit%2 != 0 {
		return Male
	}
	return Female
}

// BirthDate returns the encoded birth date at midnight UTC.
func (p *PESEL) BirthDate() time.Time {
	year, month, day := p.birthParts()
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateOfBirth returns the encoded birth date as "YYYY-MM-DD" text.
func (p *PESEL) DateOfBirth() string {
	year, month, day := p.birthParts()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// String renders the human-readable multi-line view of the identifier:
// raw value, date of birth, sex name and checksum validity.
func (p *PESEL) String() string {
	return fmt.Sprintf("PESEL: %s\ndate of birth: %s\nsex: %s\nvalid: %t",
		p.raw, p.DateOfBirth(), p.Sex(), p.valid)
}

// MarshalText implements encoding.TextMarshaler.
// It emits the raw 11-digit form.
func (p *PESEL) MarshalText() ([]byte, error) {
	return []byte(p.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is parsed with strict Parse semantics.
func (p *PESEL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

// birthParts decodes the stored scalar fields into a calendar
// (year, month, day) triple.
//
// Parse and Generate only ever store month codes inside a band, so a
// failed lookup here is an internal invariant breach, not a reportable
// condition.
func (p *PESEL) birthParts() (year, month, day int) {
	b, ok := bandFor(p.monthCode)
	if !ok {
		panic(fmt.Sprintf("pesel: corrupted month code %d", p.monthCode))
	}
	return b.base + p.yearLow, p.monthCode - b.lo + 1, p.day
}

// bandFor returns the century band containing the given month code.
func bandFor(monthCode int) (band, bool) {
	for _, b := range bands {
		if monthCode >= b.lo && monthCode <= b.hi {
			return b, true
		}
	}
	return band{}, false
}

// isRealDate reports whether (year, month, day) names an actual calendar
// date. time.Date normalizes out-of-range components (May 32 becomes
// June 1), so a round-trip mismatch means the triple was impossible.
func isRealDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == time.Month(month) && t.Day() == day
}

// checksumOf computes the expected check digit from the first ten digits
// of s. The maximum possible weighted sum is 423, well inside int range.
func checksumOf(s string) int {
	sum := 0
	for i, w := range checksumWeights {
		sum += w * digit(s, i)
	}
	return sum % 10
}

// digit returns the numeric value of the ASCII digit at index i.
// Callers must have verified the character set already.
func digit(s string, i int) int {
	return int(s[i] - '0')
}

// pair returns the two-digit value at indices i and i+1.
func pair(s string, i int) int {
	return digit(s, i)*10 + digit(s, i+1)
}
