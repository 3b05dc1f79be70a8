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

package bizerr

import (
	"fmt"

	"bizerr.dev/bizerr/apis"
)

// Error is the business-error wrapper around a compiled catalog code.
//
// It carries:
//   - Code: a variant of a compiled catalog (required);
//   - Msg: an optional human message overriding the catalog default;
//   - Data: an optional structured payload for the response body;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances can
// be safely shared and modified in a functional style.
type Error struct {
	// Code is the catalog variant classifying this error. It supplies the
	// numeric code, default messages and the HTTP status.
	Code apis.ErrorCode

	// Msg overrides the catalog's default message when non-empty. This is
	// what ends up in the "msg" field of the response body.
	Msg string

	// Data is an optional structured payload exposed to API clients
	// (failing field, limits, conflicting ids). Must be JSON-marshalable.
	Data any

	// Cause holds the wrapped underlying error (if any), for errors.Is /
	// errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return bizerr.E(errcodes.InvalidParam,
//	    bizerr.WithMsgOption("user id must not be empty"),
//	    bizerr.WithDataOption(map[string]any{"field": "user_id"}),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c apis.ErrorCode, opts ...Option) *Error {
	e := &Error{Code: c}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	[<code>] <message>
//
// using the overridden message when one is set.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("[%d] %s", e.Code.Code(), e.Message())
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Message returns the effective human message: the override when set,
// otherwise the catalog's default-language text.
func (e *Error) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Code.Message()
}

// MessageLang returns the effective message for the given language tag.
// An explicit override wins regardless of language; otherwise the catalog
// text (with its usual default-language fallback) is used.
func (e *Error) MessageLang(lang string) string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Code.MessageLang(lang)
}

// WithMsg returns a shallow copy of e with the message override set.
// The original error is not modified.
func (e *Error) WithMsg(msg string) *Error {
	cp := *e
	cp.Msg = msg
	return &cp
}

// WithData returns a shallow copy of e with the structured payload attached.
// The payload is stored as-is; it is treated as immutable from here on.
func (e *Error) WithData(data any) *Error {
	cp := *e
	cp.Data = data
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// View converts the error into its serializable response-body form, with the
// message resolved for the given language tag.
func (e *Error) View(lang string) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code: e.Code.Code(),
		Msg:  e.MessageLang(lang),
		Data: e.Data,
	}
}
