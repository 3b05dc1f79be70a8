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

package bizerr

import (
	"errors"
	"strings"
	"testing"
)

// stubCode is a minimal catalog variant for wrapper tests.
type stubCode struct {
	code   int32
	status int
	msgs   map[string]string
	def    string
}

func (s stubCode) Code() int32     { return s.code }
func (s stubCode) HTTPStatus() int { return s.status }
func (s stubCode) Message() string { return s.MessageLang(s.def) }
func (s stubCode) MessageLang(lang string) string {
	if m, ok := s.msgs[lang]; ok {
		return m
	}
	return s.msgs[s.def]
}
func (s stubCode) Error() string { return s.Message() }

var invalidParam = stubCode{
	code:   4000,
	status: 400,
	msgs:   map[string]string{"en": "INVALID PARAMETER", "zh-CN": "无效参数"},
	def:    "en",
}

func TestError_Basics(t *testing.T) {
	e := E(invalidParam,
		WithMsgOption("user id must not be empty"),
		WithDataOption(map[string]any{"field": "user_id"}),
	)

	if e.Code.Code() != 4000 {
		t.Fatal("code mismatch")
	}
	if e.Message() != "user id must not be empty" {
		t.Fatal("override must win")
	}

	s := e.Error()
	for _, sub := range []string{"4000", "user id must not be empty"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_DefaultMessage(t *testing.T) {
	e := E(invalidParam)
	if e.Message() != "INVALID PARAMETER" {
		t.Fatalf("default message mismatch: %q", e.Message())
	}
	if e.MessageLang("zh-CN") != "无效参数" {
		t.Fatalf("zh-CN message mismatch: %q", e.MessageLang("zh-CN"))
	}
	if e.MessageLang("fr") != "INVALID PARAMETER" {
		t.Fatalf("fallback mismatch: %q", e.MessageLang("fr"))
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(invalidParam)
	e2 := e1.WithMsg("custom")

	if e1.Msg != "" {
		t.Fatal("original mutated")
	}
	if e2.Msg != "custom" {
		t.Fatal("copy missing override")
	}
	if e1.WithData(42) == e1 {
		t.Fatal("WithData must copy")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(invalidParam).WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
	if e.WithCause(nil) != e {
		t.Fatal("nil cause must return the same error")
	}
}

func TestError_View(t *testing.T) {
	e := E(invalidParam, WithDataOption(map[string]any{"field": "user_id"}))

	v := e.View("")
	if v.Code != 4000 || v.Msg != "INVALID PARAMETER" {
		t.Fatalf("view mismatch: %+v", v)
	}
	if v.Data == nil {
		t.Fatal("view must carry the payload")
	}

	vzh := e.View("zh-CN")
	if vzh.Msg != "无效参数" {
		t.Fatalf("zh-CN view mismatch: %+v", vzh)
	}

	vo := e.WithMsg("custom").View("zh-CN")
	if vo.Msg != "custom" {
		t.Fatal("override must win regardless of language")
	}
}
