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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry(name string, code int32) Entry {
	return Entry{
		Name:       name,
		Code:       code,
		HTTPStatus: DefaultHTTPStatus,
		Messages:   []Message{{Lang: "en", Text: "X"}},
	}
}

func TestValidate_OK(t *testing.T) {
	cat, err := Parse([]byte(exampleSchema))
	require.NoError(t, err)
	require.NoError(t, cat.Validate())
}

func TestValidate_StatusOutOfRange(t *testing.T) {
	src := "errors:\n  weird:\n    code: 1\n    http_status: 999\n    message:\n      en: \"x\"\n"
	cat, err := Parse([]byte(src))
	require.NoError(t, err)

	var serr *StatusOutOfRangeError
	require.ErrorAs(t, cat.Validate(), &serr)
	assert.Equal(t, "weird", serr.Entry)
	assert.Equal(t, 999, serr.Status)

	// Low end of the range as well: never clamped, always rejected.
	cat = &Catalog{DefaultLang: "en", Entries: []Entry{validEntry("low", 1)}}
	cat.Entries[0].HTTPStatus = 99
	require.ErrorAs(t, cat.Validate(), &serr)
	assert.Equal(t, 99, serr.Status)
}

func TestValidate_EmptyMessages(t *testing.T) {
	cat := &Catalog{DefaultLang: "en", Entries: []Entry{{Name: "bare", Code: 1, HTTPStatus: 500}}}
	var ferr *MissingFieldError
	require.ErrorAs(t, cat.Validate(), &ferr)
	assert.Equal(t, "message", ferr.Field)
}

func TestValidate_DuplicateName(t *testing.T) {
	cat := &Catalog{DefaultLang: "en", Entries: []Entry{
		validEntry("dup", 1),
		validEntry("other", 2),
		validEntry("dup", 3),
	}}
	var derr *DuplicateNameError
	require.ErrorAs(t, cat.Validate(), &derr)
	assert.Equal(t, "dup", derr.Name)
}

func TestValidate_IdentifierCollision(t *testing.T) {
	// Distinct raw names collapsing to the same canonical identifier must be
	// rejected before any emission, never silently overwritten.
	src := "errors:\n  foo_bar:\n    code: 1\n    message:\n      en: \"a\"\n  foo_Bar:\n    code: 2\n    message:\n      en: \"b\"\n"
	cat, err := Parse([]byte(src))
	require.NoError(t, err)

	var cerr *IdentifierCollisionError
	require.ErrorAs(t, cat.Validate(), &cerr)
	assert.Equal(t, "FooBar", cerr.Ident)
	assert.Equal(t, [2]string{"foo_bar", "foo_Bar"}, cerr.Names)
}

func TestValidate_SharedNumericCodesPermitted(t *testing.T) {
	// Numeric-code uniqueness is deliberately not enforced.
	cat := &Catalog{DefaultLang: "en", Entries: []Entry{
		validEntry("first", 42),
		validEntry("second", 42),
	}}
	require.NoError(t, cat.Validate())
}
