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

// Package registry compiles an error-catalog schema at startup, with no
// generated artifact.
//
// It is the second front-end over the catalog pipeline: where bizerrgen
// writes generated Go source, the registry builds the same total lookup
// tables in memory once at process start, typically from a
// go:embed-ed schema. Use it when regenerating source on schema changes is
// not worth the build step; use bizerrgen when you want compile-time-checked
// variant identifiers.
package registry
