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

package codegen

import (
	"fmt"
	"os"

	"bizerr.dev/bizerr/catalog"
)

// Generate is the file-producing front-end: it reads the schema at
// schemaPath, runs the shared Parse, Validate, Emit pipeline and writes the
// complete generated source to outPath.
//
// The generated text is fully buffered in memory before anything touches
// outPath: a read, parse, validation or rendering failure returns without
// writing, so a half-written artifact can never be left behind.
//
// Every returned error names the schema path together with the precise
// violated rule or field.
func Generate(schemaPath, outPath string, opts Options) error {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("codegen: reading schema: %w", err)
	}

	src, err := Compile(data, opts)
	if err != nil {
		return fmt.Errorf("codegen: schema %s: %w", schemaPath, err)
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("codegen: writing %s: %w", outPath, err)
	}
	return nil
}

// Compile runs the full transformation on raw schema text and returns the
// generated source. Both front-ends (Generate above and the startup registry)
// are thin adapters over this same pipeline; neither duplicates any of it.
func Compile(data []byte, opts Options) ([]byte, error) {
	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return Emit(cat, opts)
}
