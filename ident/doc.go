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

// Package ident derives canonical Go identifiers from raw catalog entry names.
//
// A raw name is the key of an entry in the error-catalog schema, such as
// "not_found" or "invalid_param". Its canonical identifier is the PascalCase
// form used to name the generated variant ("NotFound", "InvalidParam").
//
// The derivation is deliberately tiny and deterministic: identifier stability
// across repeated compilations is part of the generated artifact's contract.
package ident
