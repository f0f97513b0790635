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

package mapper

import (
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/pesel/fault"
)

// Status represents a resolved pair of transport statuses for a single
// fault kind. It is the final output of the mapper and can be written
// directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}

// Mapper is an immutable, concurrency-safe resolver from fault kinds to
// transport statuses. Build one with New and share it freely across
// handlers and goroutines.
type Mapper struct {
	httpByKind map[fault.Kind]int
	grpcByKind map[fault.Kind]codes.Code

	// origin bookkeeping for Explain
	httpOverridden map[fault.Kind]bool
	grpcOverridden map[fault.Kind]bool

	fallback Status
}

// builder accumulates user adjustments before they are frozen into a
// Mapper. All user-provided inputs are copied during New; after
// construction the Mapper does not observe further changes.
type builder struct {
	httpOverride map[fault.Kind]int
	grpcOverride map[fault.Kind]codes.Code
}

// New builds an immutable Mapper from the library defaults plus any
// per-kind overrides.
func New(opts ...Option) *Mapper {
	b := &builder{
		httpOverride: make(map[fault.Kind]int),
		grpcOverride: make(map[fault.Kind]codes.Code),
	}
	for _, opt := range opts {
		opt(b)
	}

	m := &Mapper{
		httpByKind:     make(map[fault.Kind]int, len(defaultHTTP)),
		grpcByKind:     make(map[fault.Kind]codes.Code, len(defaultGRPC)),
		httpOverridden: make(map[fault.Kind]bool, len(b.httpOverride)),
		grpcOverridden: make(map[fault.Kind]bool, len(b.grpcOverride)),
		fallback:       Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
	}
	for k, v := range defaultHTTP {
		m.httpByKind[k] = v
	}
	for k, v := range defaultGRPC {
		m.grpcByKind[k] = v
	}
	for k, v := range b.httpOverride {
		m.httpByKind[k] = v
		m.httpOverridden[k] = true
	}
	for k, v := range b.grpcOverride {
		m.grpcByKind[k] = v
		m.grpcOverridden[k] = true
	}
	return m
}

// HTTPStatus returns the HTTP status code for the given fault kind,
// falling back to 500 for kinds outside the taxonomy.
func (m *Mapper) HTTPStatus(k fault.Kind) int {
	if v, ok := m.httpByKind[k]; ok {
		return v
	}
	return m.fallback.HTTP
}

// GRPCStatus returns the gRPC status code for the given fault kind,
// falling back to codes.Internal for kinds outside the taxonomy.
func (m *Mapper) GRPCStatus(k fault.Kind) codes.Code {
	if v, ok := m.grpcByKind[k]; ok {
		return v
	}
	return m.fallback.GRPC
}

// Status resolves both HTTP and gRPC in a single call, using the same
// matching logic as the individual methods.
func (m *Mapper) Status(k fault.Kind) Status {
	return Status{HTTP: m.HTTPStatus(k), GRPC: m.GRPCStatus(k)}
}

// Explain returns a human-readable description of which rule produced
// the resolution for the given kind. Intended for debugging and tests;
// the exact wording is not a stable interface.
func (m *Mapper) Explain(k fault.Kind) string {
	st := m.Status(k)
	if _, known := m.httpByKind[k]; !known {
		return fmt.Sprintf("kind=%q: unknown kind -> fallback (HTTP %d, gRPC %s)", k, st.HTTP, st.GRPC)
	}
	httpTier := "library default"
	if m.httpOverridden[k] {
		httpTier = "override"
	}
	grpcTier := "library default"
	if m.grpcOverridden[k] {
		grpcTier = "override"
	}
	return fmt.Sprintf("kind=%q: HTTP %d (%s), gRPC %s (%s)", k, st.HTTP, httpTier, st.GRPC, grpcTier)
}
