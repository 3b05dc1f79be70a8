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

import "fmt"

// The error taxonomy mirrors the three stages of a compilation:
//
//   - ParseError: the schema text is not well-formed YAML;
//   - MissingSectionError, MissingFieldError, InvalidMessageEntryError: the
//     document is structurally valid YAML but lacks required sections/fields
//     or has ill-typed message entries;
//   - DuplicateNameError, IdentifierCollisionError, StatusOutOfRangeError:
//     the catalog is structurally complete but semantically invalid.
//
// Every function in this package returns the first error it encounters.
// Nothing is retried (the transformation is deterministic and pure) and
// nothing is downgraded to a warning. Callers are expected to match with
// errors.As and to prepend the schema path at the I/O boundary.

// ParseError reports malformed schema syntax. It wraps the underlying
// yaml error so the position information survives.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog: invalid schema syntax: %v", e.Err)
}

// Unwrap returns the underlying yaml error.
func (e *ParseError) Unwrap() error { return e.Err }

// MissingSectionError reports a required top-level section that is absent
// or has the wrong shape (e.g. "errors" is not a mapping).
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("catalog: missing required section %q", e.Section)
}

// MissingFieldError reports a required per-entry field that is absent or not
// of the required type.
type MissingFieldError struct {
	Entry string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("catalog: entry %q: missing required field %q", e.Entry, e.Field)
}

// InvalidMessageEntryError reports a per-language message entry whose key or
// value is not a plain string.
type InvalidMessageEntryError struct {
	Entry string
	Lang  string
}

func (e *InvalidMessageEntryError) Error() string {
	return fmt.Sprintf("catalog: entry %q: message entry %q must map a string language tag to a string text", e.Entry, e.Lang)
}

// DuplicateNameError reports two entries sharing the same raw name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("catalog: duplicate entry name %q", e.Name)
}

// IdentifierCollisionError reports two distinct raw names that collapse to
// the same canonical identifier. Such catalogs are rejected before any
// emission is attempted; the collision is never silently resolved by
// overwriting one of the entries.
type IdentifierCollisionError struct {
	Ident string
	Names [2]string
}

func (e *IdentifierCollisionError) Error() string {
	return fmt.Sprintf("catalog: entries %q and %q collapse to the same identifier %q",
		e.Names[0], e.Names[1], e.Ident)
}

// StatusOutOfRangeError reports an http_status outside the valid protocol
// range 100..599. Out-of-range values are a validation error, never a
// runtime panic and never a silent clamp.
type StatusOutOfRangeError struct {
	Entry  string
	Status int
}

func (e *StatusOutOfRangeError) Error() string {
	return fmt.Sprintf("catalog: entry %q: http_status %d out of range 100..599", e.Entry, e.Status)
}
