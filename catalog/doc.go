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

// Package catalog loads and validates declarative error-catalog schemas.
//
// A catalog is a closed set of business error codes declared in YAML:
//
//	default_language: en
//	errors:
//	  not_found:
//	    code: 4040
//	    http_status: 404
//	    message:
//	      en: "NOT FOUND"
//	      zh-CN: "未找到"
//
// Parse turns the raw schema text into an in-memory Catalog that preserves
// declaration order. Validate checks the cross-entry invariants that must hold
// before any code is emitted. Both are pure: no storage is touched, and a
// failing invocation produces exactly one error describing the first violated
// rule. A single invalid entry invalidates the whole compilation, so there is
// no value in accumulating diagnostics here.
//
// The Catalog produced by Parse is the single input shared by both compiler
// front-ends (the startup registry and the source generator); neither front-end
// re-implements any part of the transformation.
package catalog
