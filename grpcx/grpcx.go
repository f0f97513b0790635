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

// Package grpcx maps pesel fault errors onto gRPC statuses.
//
// The mapping is purely value-level: nothing here opens a connection.
// It exists so that services embedding the codec can surface parse and
// generation faults to their gRPC clients uniformly, with the fault kind
// preserved in a google.rpc.BadRequest detail.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/pesel/fault"
	"dirpx.dev/pesel/mapper"
)

// Field is the violation field name used in BadRequest details for
// codec faults. There is exactly one input to blame, so the name is
// fixed.
const Field = "pesel"

// StatusError converts err into a gRPC status error using the provided
// mapper.
//
// Fault errors become a status with the mapped code, the fault's fixed
// message, and an errdetails.BadRequest carrying the fault kind as the
// violation description reason. Non-fault errors (including nil) are
// returned unchanged — they are not ours to classify.
func StatusError(m *mapper.Mapper, err error) error {
	var fe *fault.Error
	if !errors.As(err, &fe) {
		return err
	}

	base := gstatus.New(m.GRPCStatus(fe.Kind), fe.Message)

	detail := &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       Field,
			Description: fe.Message,
			Reason:      string(fe.Kind),
		}},
	}
	// If details cannot be attached, the bare status still carries the
	// mapped code and message.
	if with, derr := base.WithDetails(detail); derr == nil {
		return with.Err()
	}
	return base.Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// applies StatusError to handler errors, so services built on the codec
// never leak raw fault values across the wire.
func UnaryServerInterceptor(m *mapper.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return resp, StatusError(m, err)
		}
		return resp, nil
	}
}

// ExtractBadRequest pulls the BadRequest detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}
