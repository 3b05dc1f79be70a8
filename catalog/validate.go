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

import "bizerr.dev/bizerr/ident"

// Validate checks the cross-entry invariants that must hold before emission.
//
// Checks run in a fixed order and stop at the first violation:
//
//  1. every entry has a non-empty message mapping;
//  2. every http_status lies in 100..599;
//  3. no two entries share a raw name (Parse admits duplicate yaml keys
//     permissively, so this must be re-checked here);
//  4. no two distinct raw names collapse to the same canonical identifier.
//
// Numeric-code uniqueness is deliberately NOT validated: entries are
// identified by raw name, and the catalog dialect permits several names
// sharing one numeric code.
//
// A nil return means the catalog is safe to emit: in particular, every
// status value can be used to construct a protocol status without failing,
// so emission never produces a user-facing status error.
func (c *Catalog) Validate() error {
	for i := range c.Entries {
		e := &c.Entries[i]
		// A zero code is a legal code (e.g. "success: code: 0"); only the
		// loader can tell presence apart from zero, which is why Parse
		// treats a missing code as a hard schema error. Here we only guard
		// hand-built entries with no messages at all.
		if len(e.Messages) == 0 {
			return &MissingFieldError{Entry: e.Name, Field: "message"}
		}
	}

	for i := range c.Entries {
		e := &c.Entries[i]
		if e.HTTPStatus < 100 || e.HTTPStatus > 599 {
			return &StatusOutOfRangeError{Entry: e.Name, Status: e.HTTPStatus}
		}
	}

	seen := make(map[string]struct{}, len(c.Entries))
	for i := range c.Entries {
		name := c.Entries[i].Name
		if _, ok := seen[name]; ok {
			return &DuplicateNameError{Name: name}
		}
		seen[name] = struct{}{}
	}

	idents := make(map[string]string, len(c.Entries))
	for i := range c.Entries {
		name := c.Entries[i].Name
		id := ident.Pascal(name)
		if prev, ok := idents[id]; ok {
			return &IdentifierCollisionError{Ident: id, Names: [2]string{prev, name}}
		}
		idents[id] = name
	}

	return nil
}
