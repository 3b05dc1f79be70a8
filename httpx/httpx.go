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

// Package httpx turns bizerr errors into HTTP responses.
//
// It is a thin adapter over the catalog contract: the status comes straight
// from the error's variant, the body is the serializable view. It works with
// plain net/http and therefore with any router built on top of it.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"bizerr.dev/bizerr"
)

// CorrelationHeader is the response header carrying the request correlation
// token.
const CorrelationHeader = "X-Correlation-Id"

// Meta carries extra context that the HTTP layer adds on top of bizerr.Error.
// All fields are optional and typically come from request context or headers.
type Meta struct {
	// Correlation is a client/server correlation token (request ID,
	// idempotency key). When empty, Write generates a fresh one so the
	// response is always traceable.
	Correlation string

	// Lang selects the message language for the response body, e.g. from
	// Accept-Language. Empty means the catalog's default language; unknown
	// languages follow the catalog's fallback semantics.
	Lang string
}

// Writer turns a bizerr.Error into an HTTP response.
//
// The zero Writer is ready to use; it exists as a type (rather than a free
// function) so that callers can hang policy on it later without changing
// call sites.
type Writer struct{}

// Write resolves the HTTP status from the error's catalog variant and writes
// the JSON view as the response body.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error's message and payload is exposed as-is. Higher-level handlers
// should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *bizerr.Error, meta Meta) {
	if err == nil {
		return
	}

	correlation := meta.Correlation
	if correlation == "" {
		correlation = uuid.NewString()
	}

	view := err.View(meta.Lang)

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set(CorrelationHeader, correlation)
	rw.WriteHeader(err.Code.HTTPStatus())

	// The view is a plain struct of marshalable fields; an encoding failure
	// can only come from a caller-supplied Data value, in which case the
	// status line and headers are already the correct error response.
	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
