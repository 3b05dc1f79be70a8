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

package ident

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pascal derives the canonical, type-safe identifier for a raw catalog name.
//
// The raw name is treated as a sequence of tokens separated by '_'. The first
// character of every token is uppercased and the tokens are concatenated with
// no separator:
//
//	"not_found"      -> "NotFound"
//	"invalid_param"  -> "InvalidParam"
//	"success"        -> "Success"
//
// The mapping is a pure function of the raw name: no external state, no
// per-invocation randomness. The same schema therefore always produces the
// same identifiers, no matter which front-end triggers the compilation.
//
// IMPORTANT: Pascal does NOT normalize or reject its input. Two distinct raw
// names may map to the same identifier (e.g. "foo_bar" and "fooBar" do not,
// but "foo_bar" and "Foo_bar" do); detecting such collisions is the
// validator's job, never this package's.
func Pascal(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, tok := range strings.Split(raw, "_") {
		if tok == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(tok)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(tok[size:])
	}
	return b.String()
}
