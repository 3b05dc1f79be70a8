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

// Package codegen emits a strongly-typed Go error-code unit from a validated
// catalog.
//
// The emitted file declares one ErrorCode variant per catalog entry plus four
// total lookups over the variant set: numeric code, default-language message,
// language-aware message, and HTTP status. Lookups are exhaustive switches:
// the mapping is fixed at generation time with zero parsing cost at runtime.
//
// The transformation is synchronous and pure: the same schema text always
// produces byte-identical output, and no state is shared between invocations.
// Wire it up with go:generate:
//
//	//go:generate bizerrgen -schema biz_errors.yaml -out errcodes.gen.go -pkg myservice
package codegen
