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

package apis

// ErrorView is the serializable representation of a business error, the
// shape we are comfortable exposing over the wire:
//
//	{
//	  "code": 4000,
//	  "msg": "INVALID PARAMETER",
//	  "data": { "field": "user_id" }
//	}
//
// This is *not* the internal error type; keeping the view here lets the HTTP
// and gRPC adapters share one struct without importing the concrete error
// implementation.
type ErrorView struct {
	// Code is the numeric business error code.
	Code int32 `json:"code"`

	// Msg is the human-readable message, already resolved: either the
	// wrapper's overridden message or the catalog text for the chosen
	// language.
	Msg string `json:"msg"`

	// Data is an optional structured payload carrying error context
	// (failing field, limits, conflicting ids). It must be JSON-marshalable.
	Data any `json:"data,omitempty"`
}
