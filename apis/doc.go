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

// Package apis defines the transport-neutral contracts shared across bizerr.
//
// It intentionally contains no behavior: just the ErrorCode interface that
// every compiled catalog satisfies and the small view struct that adapters
// serialize. Keeping these here (and only these) prevents dependency cycles
// between the compiler front-ends, the error wrapper, and the transport
// adapters.
package apis
