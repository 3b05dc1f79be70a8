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

package registry

import (
	"fmt"

	"bizerr.dev/bizerr/apis"
	"bizerr.dev/bizerr/catalog"
	"bizerr.dev/bizerr/ident"
)

// Code is one variant of a registry-compiled catalog.
//
// It is a small comparable value (two codes are equal exactly when they come
// from the same Registry and denote the same variant) and satisfies
// apis.ErrorCode, so registry-backed variants plug into the same wrapper and
// transport adapters as generated ones.
//
// The zero Code is not a valid variant; obtain codes from a Registry. Every
// lookup below is total for codes a Registry handed out: the index is bound
// to an entry at construction and the tables are frozen.
type Code struct {
	reg *Registry
	idx int
}

var _ apis.ErrorCode = Code{}

// entry returns the frozen record backing c.
func (c Code) entry() *entry {
	if c.reg == nil {
		panic("registry: zero Code used as a variant")
	}
	return &c.reg.entries[c.idx]
}

// Name returns the raw schema name, e.g. "invalid_param".
func (c Code) Name() string { return c.entry().name }

// Ident returns the canonical identifier, e.g. "InvalidParam".
func (c Code) Ident() string { return c.entry().ident }

// Code returns the numeric business error code.
func (c Code) Code() int32 { return c.entry().code }

// HTTPStatus returns the HTTP status for this variant, range checked at
// compilation.
func (c Code) HTTPStatus() int { return c.entry().status }

// Message returns the text in the catalog's default language.
func (c Code) Message() string {
	return c.MessageLang(c.reg.defaultLang)
}

// MessageLang returns the text for the given language tag. Languages the
// entry does not declare fall back to the default-language text, or "" when
// the entry has no default-language message.
func (c Code) MessageLang(lang string) string {
	e := c.entry()
	if text, ok := e.messages[lang]; ok {
		return text
	}
	return e.fallback
}

// String renders the variant as "[code] message".
func (c Code) String() string {
	return fmt.Sprintf("[%d] %s", c.Code(), c.Message())
}

// Error makes a variant usable directly as a Go error.
func (c Code) Error() string {
	return c.String()
}

// identOf derives the canonical identifier for a catalog entry.
func identOf(e *catalog.Entry) string {
	return ident.Pascal(e.Name)
}
