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
	"testing"
	"time"

	"dirpx.dev/pesel/fault"
)

func TestParse_KnownGood(t *testing.T) {
	p, err := Parse("44051401458")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Raw() != "44051401458" {
		t.Fatalf("Raw() = %q", p.Raw())
	}
	if !p.Valid() {
		t.Fatal("checksum must validate")
	}
	if p.Sex() != Male {
		t.Fatalf("Sex() = %v, want Male", p.Sex())
	}
	if got := p.DateOfBirth(); got != "1944-05-14" {
		t.Fatalf("DateOfBirth() = %q, want %q", got, "1944-05-14")
	}
	want := time.Date(1944, time.May, 14, 0, 0, 0, 0, time.UTC)
	if !p.BirthDate().Equal(want) {
		t.Fatalf("BirthDate() = %v, want %v", p.BirthDate(), want)
	}
}

func TestParse_ChecksumMismatchStillParses(t *testing.T) {
	// Officially issued numbers exist that fail the algorithm, so a bad
	// check digit is a fact about the identifier, not a parse failure.
	p, err := Parse("44051401459")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Valid() {
		t.Fatal("checksum must not validate")
	}
	if got := p.DateOfBirth(); got != "1944-05-14" {
		t.Fatalf("DateOfBirth() = %q, want %q", got, "1944-05-14")
	}
}

func TestParse_Faults(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", fault.ErrSize},
		{"too short", "4405140145", fault.ErrSize},
		{"too long", "440514014580", fault.ErrSize},
		{"letter", "4405140145a", fault.ErrFormat},
		{"space", "44051 01458", fault.ErrFormat},
		{"minus sign", "-4051401458", fault.ErrFormat},
		{"month code 95", "44951201458", fault.ErrDateRange},
		{"month code 00", "44001401458", fault.ErrDateRange},
		{"month code 13", "44131401458", fault.ErrDateRange},
		{"month code 33", "44331401458", fault.ErrDateRange},
		{"month code 53", "44531401458", fault.ErrDateRange},
		{"month code 73", "44731401458", fault.ErrDateRange},
		{"day 32", "44053201458", fault.ErrDateImpossible},
		{"day 99", "44059901458", fault.ErrDateImpossible},
		{"day zero", "44050001458", fault.ErrDateImpossible},
		{"day 31 in april", "44043101458", fault.ErrDateImpossible},
		{"feb 29 outside leap year", "00022900000", fault.ErrDateImpossible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestParse_FirstFaultWins(t *testing.T) {
	// Length is checked before the character set.
	if _, err := Parse("abc"); !errors.Is(err, fault.ErrSize) {
		t.Fatalf("short non-digit input: got %v, want %v", err, fault.ErrSize)
	}
	// Character set is checked before the century band.
	if _, err := Parse("4495120145a"); !errors.Is(err, fault.ErrFormat) {
		t.Fatalf("bad band with letter: got %v, want %v", err, fault.ErrFormat)
	}
	// The century band is checked before the day.
	if _, err := Parse("44953201458"); !errors.Is(err, fault.ErrDateRange) {
		t.Fatalf("bad band with day 32: got %v, want %v", err, fault.ErrDateRange)
	}
}

func TestParse_CenturyBands(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"1900s", "44051401458", "1944-05-14"},
		{"2000s", "00222900009", "2000-02-29"}, // leap day in a leap century year
		{"2100s", "01410100000", "2101-01-01"},
		{"2200s", "01610100000", "2201-01-01"},
		{"1800s", "01810100000", "1801-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := p.DateOfBirth(); got != tt.want {
				t.Fatalf("DateOfBirth() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_YearBoundaries(t *testing.T) {
	// 1800-01-01 and 2299-12-31 are the extremes the bands can encode.
	for _, in := range []string{"00810100002", "99723100001"} {
		p, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if !p.Valid() {
			t.Fatalf("Parse(%q): checksum must validate", in)
		}
	}
}

func TestParse_PermissiveDate(t *testing.T) {
	// Feb 29, 1900 — not a real date (1900 is not a leap year).
	const in = "00022900000"

	if _, err := Parse(in); !errors.Is(err, fault.ErrDateImpossible) {
		t.Fatalf("strict parse: got %v, want %v", err, fault.ErrDateImpossible)
	}

	p, err := Parse(in, WithPermissiveDate())
	if err != nil {
		t.Fatalf("permissive parse: %v", err)
	}
	if got := p.DateOfBirth(); got != "1900-02-29" {
		t.Fatalf("DateOfBirth() = %q, want %q", got, "1900-02-29")
	}

	// The nominal day ceiling still applies under the permissive policy.
	if _, err := Parse("00023200000", WithPermissiveDate()); !errors.Is(err, fault.ErrDateImpossible) {
		t.Fatalf("permissive day 32: got %v, want %v", err, fault.ErrDateImpossible)
	}
}

func TestParse_IsDeterministic(t *testing.T) {
	first, err := Parse("44051401459")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i := 0; i < 10; i++ {
		p, err := Parse("44051401459")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if p.Valid() != first.Valid() || *p != *first {
			t.Fatal("repeated parses of the same input must agree")
		}
	}
}

func TestSexParity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Sex
	}{
		{"odd sex digit is male", "44051401458", Male},
		{"even sex digit is female", "44051401408", Female},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if p.Sex() != tt.want {
				t.Fatalf("Sex() = %v, want %v", p.Sex(), tt.want)
			}
		})
	}
}

func TestChecksum_NoOverflowOnAllNines(t *testing.T) {
	// The maximum weighted sum: every digit 9 gives 9*47 = 423. A naive
	// 8-bit accumulator would wrap; the expected check digit is 3.
	if got := checksumOf("9999999999"); got != 3 {
		t.Fatalf("checksumOf(all nines) = %d, want 3", got)
	}
}

func TestChecksum_KnownVector(t *testing.T) {
	if got := checksumOf("4405140145"); got != 8 {
		t.Fatalf("checksumOf = %d, want 8", got)
	}
}

func TestString_Rendering(t *testing.T) {
	p := MustParse("44051401458")
	want := "PESEL: 44051401458\ndate of birth: 1944-05-14\nsex: male\nvalid: true"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("not a pesel")
}

func TestTextMarshaling(t *testing.T) {
	p := MustParse("44051401458")
	text, err := p.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "44051401458" {
		t.Fatalf("MarshalText = %q", text)
	}

	var q PESEL
	if err := q.UnmarshalText([]byte("  44051401458\n")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if q.Raw() != "44051401458" || !q.Valid() {
		t.Fatalf("UnmarshalText produced %+v", q)
	}

	var bad PESEL
	if err := bad.UnmarshalText([]byte("4405140145a")); !errors.Is(err, fault.ErrFormat) {
		t.Fatalf("UnmarshalText(bad) = %v, want %v", err, fault.ErrFormat)
	}
}
