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
	"io/fs"

	"bizerr.dev/bizerr/catalog"
)

// Registry is a frozen, in-memory compilation of an error-catalog schema.
//
// New runs the same parse and validate pipeline as the source generator and
// then freezes the result into lookup tables built once at startup. No
// references to the schema text remain after construction, nothing is mutable
// afterwards, and all lookups are safe for concurrent use.
type Registry struct {
	defaultLang string
	entries     []entry
	byName      map[string]int
	byIdent     map[string]int
}

// entry is the frozen form of one catalog record.
type entry struct {
	name     string
	ident    string
	code     int32
	status   int
	messages map[string]string
	fallback string
}

// New compiles raw schema text into a frozen Registry.
//
// This is the no-artifact front-end: where bizerrgen writes the compiled
// catalog out as Go source, New materializes the identical lookup tables in
// memory. Both front-ends share one transformation; the registry adds only
// the freeze step.
func New(data []byte) (*Registry, error) {
	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return freeze(cat), nil
}

// Load reads the schema at path from fsys and compiles it. The typical fsys
// is an embed.FS so the schema travels inside the binary:
//
//	//go:embed biz_errors.yaml
//	var schemaFS embed.FS
//
//	var Errors = registry.MustLoad(schemaFS, "biz_errors.yaml")
func Load(fsys fs.FS, path string) (*Registry, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("registry: reading schema: %w", err)
	}
	r, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("registry: schema %s: %w", path, err)
	}
	return r, nil
}

// MustLoad is the panic-on-error variant of Load, for package-level var
// blocks. The panic message carries the schema path and the precise violated
// rule, the startup-time analog of a compile diagnostic.
func MustLoad(fsys fs.FS, path string) *Registry {
	r, err := Load(fsys, path)
	if err != nil {
		panic(err)
	}
	return r
}

// freeze copies a validated catalog into registry-owned tables. Message maps
// are fresh allocations; no part of the catalog model is retained.
func freeze(cat *catalog.Catalog) *Registry {
	r := &Registry{
		defaultLang: cat.DefaultLang,
		entries:     make([]entry, 0, len(cat.Entries)),
		byName:      make(map[string]int, len(cat.Entries)),
		byIdent:     make(map[string]int, len(cat.Entries)),
	}
	for i := range cat.Entries {
		ce := &cat.Entries[i]
		msgs := make(map[string]string, len(ce.Messages))
		for _, m := range ce.Messages {
			msgs[m.Lang] = m.Text
		}
		r.entries = append(r.entries, entry{
			name:     ce.Name,
			ident:    identOf(ce),
			code:     ce.Code,
			status:   ce.HTTPStatus,
			messages: msgs,
			fallback: ce.DefaultText(cat.DefaultLang),
		})
		// Uniqueness of both keys is guaranteed by Validate.
		r.byName[ce.Name] = i
		r.byIdent[r.entries[i].ident] = i
	}
	return r
}

// DefaultLang returns the catalog's default language tag.
func (r *Registry) DefaultLang() string { return r.defaultLang }

// Len returns the number of variants in the catalog.
func (r *Registry) Len() int { return len(r.entries) }

// All returns one Code per variant, in the catalog's declaration order.
// The returned slice is a fresh copy and safe for the caller to keep.
func (r *Registry) All() []Code {
	all := make([]Code, len(r.entries))
	for i := range r.entries {
		all[i] = Code{reg: r, idx: i}
	}
	return all
}

// ByName resolves a variant by its raw schema name, e.g. "not_found".
func (r *Registry) ByName(name string) (Code, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Code{}, false
	}
	return Code{reg: r, idx: i}, true
}

// ByIdent resolves a variant by its canonical identifier, e.g. "NotFound".
func (r *Registry) ByIdent(id string) (Code, bool) {
	i, ok := r.byIdent[id]
	if !ok {
		return Code{}, false
	}
	return Code{reg: r, idx: i}, true
}

// MustByName is the panic-on-miss variant of ByName, for binding variants to
// package-level vars right next to MustLoad:
//
//	var (
//		Errors      = registry.MustLoad(schemaFS, "biz_errors.yaml")
//		ErrNotFound = Errors.MustByName("not_found")
//	)
func (r *Registry) MustByName(name string) Code {
	c, ok := r.ByName(name)
	if !ok {
		panic(fmt.Sprintf("registry: unknown error name %q", name))
	}
	return c
}
