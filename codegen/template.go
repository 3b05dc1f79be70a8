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

// fileTemplateText renders the complete generated unit. The rendered text is
// passed through go/format before being returned, so the template only has to
// be syntactically correct, not pretty.
//
// Layout notes:
//   - the wildcard (default-language) message arm is the return placed after
//     each variant's inner language switch: it always sits after the exact
//     arms and can never shadow another variant, because the variant is the
//     outer switch key;
//   - the trailing panic in each lookup is unreachable for declared variants
//     and only guards conversions of out-of-range integers to ErrorCode.
const fileTemplateText = `// Code generated by bizerrgen. DO NOT EDIT.
// To change an error code, edit the catalog schema and regenerate.

package {{.Package}}

import (
	"fmt"

	"bizerr.dev/bizerr/apis"
)

// ErrorCode is the closed set of business error codes compiled from the
// error-catalog schema. One variant exists per catalog entry, in schema
// declaration order.
type ErrorCode int

const (
{{- range $i, $v := .Variants}}
{{- if $v.Doc}}
	// {{$v.Doc}}
{{- end}}
	{{$v.Ident}}{{if eq $i 0}} ErrorCode = iota{{end}}
{{- end}}
)

var _ apis.ErrorCode = ErrorCode(0)

// AllErrorCodes lists exactly one representative of every variant, in the
// catalog's declaration order.
var AllErrorCodes = []ErrorCode{
{{- range .Variants}}
	{{.Ident}},
{{- end}}
}

// Code returns the numeric business error code.
func (c ErrorCode) Code() int32 {
	switch c {
{{- range .Variants}}
	case {{.Ident}}:
		return {{.Code}}
{{- end}}
	}
	panic(fmt.Sprintf("{{.Package}}: unknown ErrorCode %d", int(c)))
}

// Message returns the text in the catalog's default language ({{.DefaultLang}}).
func (c ErrorCode) Message() string {
	return c.MessageLang({{quote .DefaultLang}})
}

// MessageLang returns the text for the given language tag. Languages the
// entry does not declare fall back to the default-language text; entries
// without a default-language message fall back to "".
func (c ErrorCode) MessageLang(lang string) string {
	switch c {
{{- range .Variants}}
	case {{.Ident}}:
		switch lang {
{{- range .Messages}}
		case {{quote .Lang}}:
			return {{quote .Text}}
{{- end}}
		}
		return {{quote .Fallback}}
{{- end}}
	}
	panic(fmt.Sprintf("{{.Package}}: unknown ErrorCode %d", int(c)))
}

// HTTPStatus returns the HTTP status for this variant. All values were range
// checked when the catalog was compiled.
func (c ErrorCode) HTTPStatus() int {
	switch c {
{{- range .Variants}}
	case {{.Ident}}:
		return {{.Status}}
{{- end}}
	}
	panic(fmt.Sprintf("{{.Package}}: unknown ErrorCode %d", int(c)))
}

// String renders the variant as "[code] message".
func (c ErrorCode) String() string {
	return fmt.Sprintf("[%d] %s", c.Code(), c.Message())
}

// Error makes every variant usable directly as a Go error.
func (c ErrorCode) Error() string {
	return c.String()
}
`
