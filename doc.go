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

// Package pesel parses, validates and generates PESEL numbers — the
// 11-digit Polish national identifiers that encode a birth date and
// biological sex behind a weighted checksum.
//
// # Digit layout
//
// The identifier's byte layout is normative:
//
//	positions 0-1  low two digits of the birth year
//	positions 2-3  calendar month plus a century offset (see below)
//	positions 4-5  day of the month
//	positions 6-8  filler digits (random, no semantic meaning)
//	position  9    sex digit (odd = male, even = female)
//	position  10   checksum digit
//
// The month pair doubles as a century marker via five 12-wide bands:
// 1-12 for the 1900s, 21-32 for the 2000s, 41-52 for the 2100s, 61-72
// for the 2200s and 81-92 for the 1800s. Together with the two year
// digits this covers birth years 1800 through 2299.
//
// # Parsing vs validity
//
// Parse accepts any syntactically well-formed identifier with a
// plausible birth date; a wrong checksum does NOT reject. Real-world
// registries contain officially issued numbers that fail the checksum
// algorithm, so checksum agreement is exposed as a descriptive fact
// (PESEL.Valid) rather than enforced as a parse precondition. All
// rejections are reported as values of the dirpx.dev/pesel/fault
// taxonomy.
//
// # Generation
//
// Generate synthesizes an identifier for a given birth date and sex,
// drawing the filler digits and the concrete sex digit from an
// injectable randomness source, and feeds the result back through Parse
// so both construction paths converge on the same invariants. A
// generated identifier always has Valid() == true.
//
// PESEL values are immutable after construction and safe to share.
package pesel
