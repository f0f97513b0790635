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

// Package httpx writes pesel fault errors as HTTP JSON responses.
//
// Like grpcx, this is value-level plumbing for services that embed the
// codec; the library itself performs no I/O of its own.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"dirpx.dev/pesel/fault"
	"dirpx.dev/pesel/mapper"
)

// View is the JSON body written for a fault error.
type View struct {
	// Kind is the machine-readable fault kind, e.g. "bad_format".
	Kind string `json:"kind"`

	// Message is the fault's fixed human-readable description.
	Message string `json:"message"`
}

// Writer is a thin adapter that knows how to turn a fault error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper *mapper.Mapper
}

// Write resolves the HTTP status for err via the Mapper and writes a
// JSON View body. Nil errors write nothing. Errors that carry no fault
// are written as 500 with a generic message — their text is not ours to
// expose.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	view := View{Kind: "internal", Message: "internal error"}
	status := http.StatusInternalServerError

	var fe *fault.Error
	if errors.As(err, &fe) {
		view = View{Kind: string(fe.Kind), Message: fe.Message}
		status = w.Mapper.HTTPStatus(fe.Kind)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
