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
	"google.golang.org/grpc/codes"

	"dirpx.dev/pesel/fault"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPOverride registers an exact HTTP override for the given fault
// kind. Overrides take precedence over library defaults.
func WithHTTPOverride(k fault.Kind, status int) Option {
	return func(b *builder) { b.httpOverride[k] = status }
}

// WithGRPCOverride registers an exact gRPC override for the given fault
// kind. Overrides take precedence over library defaults.
func WithGRPCOverride(k fault.Kind, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[k] = c }
}
