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

// Package mapper provides deterministic, immutable mappings from pesel
// fault kinds (dirpx.dev/pesel/fault) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// The codec reports failures as values of a small, closed fault
// taxonomy. Transport layers (HTTP handlers, gRPC servers) need to turn
// a fault kind into concrete status codes. Package mapper does that in
// a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per kind;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the kind (user-provided);
//  2. library default for the kind;
//  3. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// Structural faults (wrong size, non-digit characters) map to 400 /
// InvalidArgument: the input does not even have the shape of an
// identifier. Semantic date faults map to 422: the input is shaped
// correctly but encodes a birth date the format cannot mean.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m := mapper.New(
//	    mapper.WithHTTPOverride(fault.DateRange, http.StatusBadRequest),
//	)
//	st := m.Status(fault.DateRange)
//	// st.HTTP == 400, st.GRPC == codes.OutOfRange
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable
// trace of which rule matched. This is intended for inspection and
// logging, not for stable machine parsing.
package mapper
