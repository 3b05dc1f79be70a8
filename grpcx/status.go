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

package grpcx

import (
	"encoding/json"
	"net/http"

	"google.golang.org/grpc/codes"
)

// codeFromHTTP maps a catalog HTTP status to the closest gRPC code.
//
// The table follows the common HTTP↔gRPC conventions. Statuses without a
// specific mapping fall back by class: any other 2xx is OK, any other 4xx is
// InvalidArgument, everything else is Internal.
func codeFromHTTP(status int) codes.Code {
	switch status {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound, http.StatusGone:
		return codes.NotFound
	case http.StatusConflict, http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusRequestTimeout:
		return codes.Canceled
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	}
	switch {
	case status >= 200 && status < 300:
		return codes.OK
	case status >= 400 && status < 500:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// jsonRoundTrip converts an arbitrary JSON-marshalable value into the
// generic map/slice/scalar shape structpb accepts. Unmarshalable values
// degrade to their string representation rather than dropping the detail.
func jsonRoundTrip(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return "<unserializable>"
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return "<unserializable>"
	}
	return out
}
