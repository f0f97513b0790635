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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/pesel/fault"
)

// defaultHTTP defines the library's built-in HTTP mappings for the fault
// taxonomy. These are only defaults: callers override them where HTTP is
// actually produced (REST gateway, HTTP handler, etc.).
var defaultHTTP = map[fault.Kind]int{
	// Structural faults — the input is not even shaped like an identifier.
	fault.Size:   http.StatusBadRequest,
	fault.Format: http.StatusBadRequest,

	// Semantic faults — well-formed digits encoding a date the format
	// cannot mean.
	fault.DateRange:      http.StatusUnprocessableEntity,
	fault.DateImpossible: http.StatusUnprocessableEntity,
}

// defaultGRPC defines the library's built-in gRPC mappings for the fault
// taxonomy, aligned with canonical gRPC status-code semantics.
var defaultGRPC = map[fault.Kind]codes.Code{
	fault.Size:   codes.InvalidArgument,
	fault.Format: codes.InvalidArgument,

	// OutOfRange is reserved for values beyond a documented range, which
	// is exactly what a century band / year bound violation is.
	fault.DateRange:      codes.OutOfRange,
	fault.DateImpossible: codes.InvalidArgument,
}
