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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSchema = `default_language: en
errors:
  success:
    code: 0
    http_status: 200
    message:
      en: "SUCCESS"
      zh-CN: "成功"
  invalid_param:
    code: 4000
    message:
      en: "INVALID PARAMETER"
  not_found:
    code: 4040
    http_status: 404
    message:
      en: "NOT FOUND"
`

func TestParse_Example(t *testing.T) {
	cat, err := Parse([]byte(exampleSchema))
	require.NoError(t, err)

	assert.Equal(t, "en", cat.DefaultLang)
	require.Len(t, cat.Entries, 3)

	// Declaration order must survive parsing.
	assert.Equal(t, "success", cat.Entries[0].Name)
	assert.Equal(t, "invalid_param", cat.Entries[1].Name)
	assert.Equal(t, "not_found", cat.Entries[2].Name)

	success := cat.Entries[0]
	assert.Equal(t, int32(0), success.Code)
	assert.Equal(t, 200, success.HTTPStatus)
	require.Len(t, success.Messages, 2)
	assert.Equal(t, Message{Lang: "en", Text: "SUCCESS"}, success.Messages[0])
	assert.Equal(t, Message{Lang: "zh-CN", Text: "成功"}, success.Messages[1])

	// http_status defaults to 500 when absent.
	assert.Equal(t, 500, cat.Entries[1].HTTPStatus)
}

func TestParse_DefaultLanguageDefault(t *testing.T) {
	cat, err := Parse([]byte("errors:\n  oops:\n    code: 1\n    message:\n      fr: \"zut\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "en", cat.DefaultLang)
}

func TestParse_MissingErrorsSection(t *testing.T) {
	for _, src := range []string{
		"default_language: en\n",
		"",
		"errors: 12\n",
	} {
		_, err := Parse([]byte(src))
		var serr *MissingSectionError
		require.ErrorAs(t, err, &serr, "schema: %q", src)
		assert.Equal(t, "errors", serr.Section)
	}
}

func TestParse_MissingCode(t *testing.T) {
	src := "errors:\n  broken:\n    message:\n      en: \"x\"\n"
	_, err := Parse([]byte(src))
	var ferr *MissingFieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "broken", ferr.Entry)
	assert.Equal(t, "code", ferr.Field)
}

func TestParse_NonIntegerCodeIsMissing(t *testing.T) {
	src := "errors:\n  broken:\n    code: \"1\"\n    message:\n      en: \"x\"\n"
	_, err := Parse([]byte(src))
	var ferr *MissingFieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "code", ferr.Field)
}

func TestParse_MissingMessage(t *testing.T) {
	src := "errors:\n  broken:\n    code: 1\n"
	_, err := Parse([]byte(src))
	var ferr *MissingFieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "broken", ferr.Entry)
	assert.Equal(t, "message", ferr.Field)
}

func TestParse_InvalidMessageEntry(t *testing.T) {
	// A non-string message value (nested mapping) must be rejected.
	src := "errors:\n  broken:\n    code: 1\n    message:\n      en:\n        nested: \"x\"\n"
	_, err := Parse([]byte(src))
	var merr *InvalidMessageEntryError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "broken", merr.Entry)
	assert.Equal(t, "en", merr.Lang)
}

func TestParse_NonIntegerHTTPStatusFallsBack(t *testing.T) {
	// The schema dialect treats a non-integer http_status as absent.
	src := "errors:\n  odd:\n    code: 1\n    http_status: \"teapot\"\n    message:\n      en: \"x\"\n"
	cat, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 500, cat.Entries[0].HTTPStatus)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("errors: [unclosed\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.NotNil(t, errors.Unwrap(perr))
}
