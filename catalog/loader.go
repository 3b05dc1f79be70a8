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
	"strconv"

	"gopkg.in/yaml.v3"
)

// Parse turns raw schema text into a Catalog.
//
// The schema is walked through the yaml node tree rather than decoded into
// Go maps: mapping order in the source text is the declaration order of the
// catalog and must survive into the model.
//
// Parse performs no I/O. Reading the schema from storage is the caller's
// concern; so is attaching the schema path to the returned error.
//
// Structural rules:
//
//   - default_language: optional top-level scalar, default "en";
//   - errors: required top-level mapping;
//   - per entry: code (required integer), http_status (optional integer,
//     default 500), message (required mapping of language tag to text with
//     string keys and string values).
//
// Duplicate entry names are admitted here and rejected by Validate; yaml
// mappings walked node-by-node do not enforce key uniqueness.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &MissingSectionError{Section: "errors"}
	}

	cat := &Catalog{DefaultLang: DefaultLanguage}

	var errorsNode *yaml.Node
	mappingPairs(root)(func(k, v *yaml.Node) bool {
		switch k.Value {
		case "default_language":
			if isString(v) {
				cat.DefaultLang = v.Value
			}
		case "errors":
			errorsNode = v
		}
		return true
	})
	if errorsNode == nil || errorsNode.Kind != yaml.MappingNode {
		return nil, &MissingSectionError{Section: "errors"}
	}

	var entryErr error
	mappingPairs(errorsNode)(func(k, v *yaml.Node) bool {
		entry, err := parseEntry(k.Value, v)
		if err != nil {
			entryErr = err
			return false
		}
		cat.Entries = append(cat.Entries, entry)
		return true
	})
	if entryErr != nil {
		return nil, entryErr
	}

	return cat, nil
}

// parseEntry extracts one catalog record from its yaml mapping node.
func parseEntry(name string, node *yaml.Node) (Entry, error) {
	entry := Entry{Name: name, HTTPStatus: DefaultHTTPStatus}
	if node == nil || node.Kind != yaml.MappingNode {
		return Entry{}, &MissingFieldError{Entry: name, Field: "code"}
	}

	var (
		haveCode     bool
		haveMessages bool
	)
	var msgErr error
	mappingPairs(node)(func(k, v *yaml.Node) bool {
		switch k.Value {
		case "code":
			n, ok := intValue(v)
			if !ok {
				return true
			}
			entry.Code = int32(n)
			haveCode = true
		case "http_status":
			// Non-integer values are treated as absent, like code: the
			// original schema dialect falls back to the 500 default here.
			if n, ok := intValue(v); ok {
				entry.HTTPStatus = int(n)
			}
		case "message":
			if v.Kind != yaml.MappingNode {
				return true
			}
			haveMessages = true
			mappingPairs(v)(func(lk, lv *yaml.Node) bool {
				if !isString(lk) || !isString(lv) {
					msgErr = &InvalidMessageEntryError{Entry: name, Lang: lk.Value}
					return false
				}
				entry.Messages = append(entry.Messages, Message{Lang: lk.Value, Text: lv.Value})
				return true
			})
			if msgErr != nil {
				return false
			}
		}
		return true
	})
	if msgErr != nil {
		return Entry{}, msgErr
	}

	if !haveCode {
		return Entry{}, &MissingFieldError{Entry: name, Field: "code"}
	}
	if !haveMessages {
		return Entry{}, &MissingFieldError{Entry: name, Field: "message"}
	}
	return entry, nil
}

// documentRoot unwraps the document node produced by yaml.Unmarshal into a
// *yaml.Node and returns the top-level content node, or nil for an empty
// document.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	return doc.Content[0]
}

// mappingPairs iterates the key/value node pairs of a mapping node in
// declaration order.
func mappingPairs(n *yaml.Node) func(yield func(k, v *yaml.Node) bool) {
	return func(yield func(k, v *yaml.Node) bool) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i], n.Content[i+1]) {
				return
			}
		}
	}
}

// isString reports whether the node is a plain or quoted string scalar.
func isString(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag == "!!str"
}

// intValue extracts an integer scalar, reporting false for anything else.
func intValue(n *yaml.Node) (int64, bool) {
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!int" {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Value, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
