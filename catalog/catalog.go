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

package catalog

// DefaultLanguage is used when the schema does not declare a
// default_language of its own.
const DefaultLanguage = "en"

// DefaultHTTPStatus is assumed for entries that do not declare http_status.
const DefaultHTTPStatus = 500

// Catalog is the in-memory representation of one parsed error-catalog schema.
//
// Entries keep the declaration order of the source schema; this order is
// preserved all the way into the generated enumeration of all codes. A Catalog
// is created once per compiler invocation, never mutated after Parse, and
// discarded after emission completes.
type Catalog struct {
	// DefaultLang is the language used for documentation comments and as the
	// fallback for message lookups in unknown languages.
	DefaultLang string

	// Entries holds one record per declared error code, in schema order.
	Entries []Entry
}

// Entry is a single catalog record.
type Entry struct {
	// Name is the raw schema key, e.g. "not_found". Unique within a catalog.
	Name string

	// Code is the numeric business error code. Required; there is no default.
	Code int32

	// HTTPStatus is the protocol status for this entry, default 500.
	// Validate enforces the 100..599 range before emission.
	HTTPStatus int

	// Messages holds the per-language human-readable texts, in declaration
	// order. Guaranteed non-empty after Validate.
	Messages []Message
}

// Message is one language/text pair of an entry.
type Message struct {
	Lang string
	Text string
}

// Text returns the message text for the given language tag.
// The second result reports whether the language is declared on the entry.
func (e *Entry) Text(lang string) (string, bool) {
	for _, m := range e.Messages {
		if m.Lang == lang {
			return m.Text, true
		}
	}
	return "", false
}

// DefaultText returns the entry's text in the catalog's default language,
// or "" when the default language is not declared on this entry.
//
// The empty-string fallback is deliberate, documented behavior: an entry
// without a default-language message yields empty text for every unmatched
// lookup rather than failing the compilation.
func (e *Entry) DefaultText(defaultLang string) string {
	t, _ := e.Text(defaultLang)
	return t
}
