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

// ErrorCode is the public contract of a compiled error catalog.
//
// Every variant type produced by the catalog compiler, whether generated as
// source by bizerrgen or materialized at startup by the registry, satisfies
// this interface. Values are expected to be small, comparable, and safe to
// copy; the closed variant set guarantees that every method below is total
// (every variant is handled, with no fallible runtime key lookup).
//
// Adapters (HTTP, gRPC) and the bizerr.Error wrapper speak exclusively in
// terms of this interface so that they never need to know which front-end
// compiled the catalog.
type ErrorCode interface {
	error

	// Code returns the numeric business error code, e.g. 4000.
	Code() int32

	// Message returns the human-readable text in the catalog's default
	// language. Equivalent to MessageLang(defaultLanguage).
	Message() string

	// MessageLang returns the text for the given language tag.
	//
	// For a language the entry does not declare, the default-language text is
	// returned instead; when the entry lacks a default-language message
	// altogether, the fallback is the empty string. This empty-string
	// behavior is part of the documented catalog contract.
	MessageLang(lang string) string

	// HTTPStatus returns the protocol status for this variant, always within
	// 100..599 (enforced when the catalog was compiled).
	HTTPStatus() int
}
