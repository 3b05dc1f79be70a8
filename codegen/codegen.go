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
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"bizerr.dev/bizerr/catalog"
	"bizerr.dev/bizerr/ident"
)

// Options configures the generated output.
type Options struct {
	// PackageName is the package clause of the generated file.
	// Empty means "errcodes".
	PackageName string
}

// DefaultPackageName is used when Options.PackageName is empty.
const DefaultPackageName = "errcodes"

// variantDef is the flattened, template-ready form of one catalog entry.
type variantDef struct {
	// Ident is the canonical PascalCase identifier, e.g. "InvalidParam".
	Ident string
	// Doc is the default-language message used as the variant's doc comment.
	Doc string
	// Code is the numeric business error code.
	Code int32
	// Status is the validated HTTP status.
	Status int
	// Messages holds the per-language arms, in declaration order.
	Messages []catalog.Message
	// Fallback is the default-language text returned for any language the
	// entry does not declare; "" when the default language itself is absent.
	Fallback string
}

// fileDef is the root template payload.
type fileDef struct {
	Package     string
	DefaultLang string
	Variants    []variantDef
}

// Emit walks a validated catalog and renders the complete generated unit:
// the variant set, the numeric-code lookup, the language-aware message
// lookup, the status lookup and the exhaustive enumeration, all in the
// catalog's declaration order.
//
// Emit assumes cat passed (*catalog.Catalog).Validate. It does not re-run
// validation; callers compose Parse, Validate, Emit. With a validated catalog
// the output is deterministic: the same catalog yields byte-identical text on
// every invocation.
//
// Every lookup in the generated unit is an exhaustive one-arm-per-variant
// switch rather than a runtime map, so exhaustiveness is checkable at compile
// time. The only unreachable path, a conversion from an out-of-range integer,
// panics rather than returning junk.
func Emit(cat *catalog.Catalog, opts Options) ([]byte, error) {
	pkg := opts.PackageName
	if pkg == "" {
		pkg = DefaultPackageName
	}

	def := fileDef{Package: pkg, DefaultLang: cat.DefaultLang}
	for i := range cat.Entries {
		e := &cat.Entries[i]
		fallback := e.DefaultText(cat.DefaultLang)
		def.Variants = append(def.Variants, variantDef{
			Ident:    ident.Pascal(e.Name),
			Doc:      fallback,
			Code:     e.Code,
			Status:   e.HTTPStatus,
			Messages: e.Messages,
			Fallback: fallback,
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, def); err != nil {
		return nil, fmt.Errorf("codegen: rendering catalog: %w", err)
	}

	// gofmt the rendered text. A formatting failure here means the template
	// emitted invalid Go for input that passed validation, an internal
	// consistency bug, not a user-facing schema error.
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: generated source does not format (internal bug): %w", err)
	}
	return src, nil
}

var fileTemplate = template.Must(template.New("errcodes").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(fileTemplateText))
