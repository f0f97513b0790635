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

// ParseOption adjusts the behavior of a single Parse call.
type ParseOption func(*parseSettings)

type parseSettings struct {
	permissiveDate bool
}

// WithPermissiveDate relaxes Parse's calendar check: the decoded
// (year, month, day) is no longer required to name a real calendar date,
// though the day pair still must not exceed 31 and the month code still
// must fall inside a century band.
//
// Official registries contain identifiers issued against looser
// historical rules; this option lets callers ingest them instead of
// rejecting. Default behavior is strict.
func WithPermissiveDate() ParseOption {
	return func(ps *parseSettings) {
		ps.permissiveDate = true
	}
}

// GenerateOption adjusts the behavior of a single Generate call.
type GenerateOption func(*generateSettings)

type generateSettings struct {
	rng Rand
}

// WithRand substitutes the randomness source used for the filler digits
// and the sex digit. A nil source is ignored and leaves the default in
// place. Intended for deterministic tests and for callers that manage
// their own seeded generators.
func WithRand(r Rand) GenerateOption {
	return func(gs *generateSettings) {
		if r != nil {
			gs.rng = r
		}
	}
}
