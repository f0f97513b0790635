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
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"dirpx.dev/pesel/fault"
)

// fillerDigits is the number of non-semantic digits between the day pair
// and the sex digit (positions 6-8).
const fillerDigits = 3

// Sex is the sex category a PESEL encodes through the parity of the
// digit at position 9.
type Sex int

const (
	// Female is encoded by an even sex digit (0, 2, 4, 6, 8).
	Female Sex = iota
	// Male is encoded by an odd sex digit (1, 3, 5, 7, 9).
	Male
)

// String returns the lowercase sex name used in the human-readable view.
func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// ErrUnknownSex is returned by ParseSex when the input names neither
// sex. It is deliberately outside the fault taxonomy: it reports a bad
// caller-side label, not a bad identifier.
var ErrUnknownSex = errors.New("pesel: unknown sex")

// ParseSex maps a textual label ("male"/"m", "female"/"f", any case)
// to a Sex value.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return Female, fmt.Errorf("%w: %q", ErrUnknownSex, s)
	}
}

// Rand is the source of randomness used by Generate. It is satisfied by
// *math/rand.Rand; tests substitute a fixed-sequence source to assert
// exact output strings.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// defaultRand draws from the process-wide math/rand source, which is
// self-seeding and safe for concurrent use.
type defaultRand struct{}

func (defaultRand) Intn(n int) int { return rand.Intn(n) }

// Generate synthesizes a PESEL for the given birth date and sex.
//
// The year must lie in [MinYear, MaxYear] (fault.ErrDateRange) and
// (year, month, day) must name a real calendar date
// (fault.ErrDateImpossible). The three filler digits and the concrete
// sex digit are drawn from the configured Rand — in that order, which is
// part of the contract so a scripted source reproduces exact output.
// The sex digit is drawn uniformly from the five digits of the matching
// parity, not merely fixed to one representative.
//
// The assembled string is fed back through strict Parse, so the returned
// value satisfies every invariant Parse enforces and always reports
// Valid() == true.
func Generate(year, month, day int, sex Sex, opts ...GenerateOption) (*PESEL, error) {
	gs := generateSettings{rng: defaultRand{}}
	for _, opt := range opts {
		opt(&gs)
	}

	if year < MinYear || year > MaxYear {
		return nil, fault.ErrDateRange
	}
	if !isRealDate(year, month, day) {
		return nil, fault.ErrDateImpossible
	}

	b, ok := bandForYear(year)
	if !ok {
		// Unreachable: the year range check above covers every band.
		panic(fmt.Sprintf("pesel: no century band for year %d", year))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%02d%02d%02d", year%100, b.lo-1+month, day)
	for i := 0; i < fillerDigits; i++ {
		fmt.Fprintf(&sb, "%d", gs.rng.Intn(10))
	}
	sexDigit := 2 * gs.rng.Intn(5) // 0, 2, 4, 6 or 8
	if sex == Male {
		sexDigit++
	}
	fmt.Fprintf(&sb, "%d", sexDigit)

	prefix := sb.String()
	return Parse(fmt.Sprintf("%s%d", prefix, checksumOf(prefix)))
}

// bandForYear returns the century band whose base century contains year.
func bandForYear(year int) (band, bool) {
	base := (year / 100) * 100
	for _, b := range bands {
		if b.base == base {
			return b, true
		}
	}
	return band{}, false
}
