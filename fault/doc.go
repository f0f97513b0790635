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

// Package fault defines the closed set of failure kinds that the pesel
// codec can report.
//
// A "fault" is a pure data value: a machine-readable Kind plus a fixed,
// human-readable message. Faults are meant to be:
//
//   - closed and enumerable — the four kinds in this package are the
//     complete error surface of both parsing and generation;
//   - comparable — callers match them with errors.Is against the
//     canonical instances (ErrSize, ErrFormat, ...), or extract the
//     Kind with KindOf;
//   - recoverable — malformed input and impossible dates are expected
//     conditions, never panics.
//
// Faults carry no recovery state and no cause chain: every kind fully
// describes its condition on its own.
package fault
