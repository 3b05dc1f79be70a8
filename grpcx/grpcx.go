/*
   Copyright 2026 The Bizerr Authors

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

// Package grpcx turns bizerr errors into gRPC status errors.
//
// The catalog schema declares HTTP statuses only; the gRPC code is derived
// from the HTTP status through a fixed table, so both transports stay
// consistent for a single logical error.
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"bizerr.dev/bizerr"
)

// ToStatus converts a bizerr.Error into a *status.Status.
//
// The numeric business code and the structured payload are attached as a
// structpb detail when they are representable; if detail attachment fails the
// plain status (correct code + message) is returned instead. The error is
// never lost, only the extras.
func ToStatus(e *bizerr.Error) *gstatus.Status {
	if e == nil {
		return nil
	}

	base := gstatus.New(codeFromHTTP(e.Code.HTTPStatus()), e.Message())

	detail := map[string]any{"code": int(e.Code.Code())}
	if e.Data != nil {
		detail["data"] = e.Data
	}
	if s, err := structpb.NewStruct(normalize(detail)); err == nil {
		if with, err := base.WithDetails(s); err == nil {
			return with
		}
	}
	return base
}

// UnaryServerInterceptor maps bizerr errors returned by handlers into gRPC
// status errors. Errors of other types pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		be, ok := err.(*bizerr.Error)
		if !ok {
			// Not ours, return unchanged.
			return nil, err
		}
		return nil, ToStatus(be).Err()
	}
}

// normalize coerces the detail map into structpb-compatible values by
// round-tripping anything structpb cannot take directly. Callers attach
// JSON-marshalable payloads, so in practice this only rewrites maps with
// typed values into plain any maps.
func normalize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, err := structpb.NewValue(v); err == nil {
			out[k] = v
			continue
		}
		out[k] = jsonRoundTrip(v)
	}
	return out
}
