/*
 * Copyright 2019 The Kythe Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"testing"
)

func parseCMakeFile(t *testing.T, input string) *CMakeFile {
	t.Helper()
	file, err := NewParser().ParseString(input)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", input, err)
	}
	return file
}

func tokenStrings(c CommandInvocation) []string {
	var out []string
	for _, tok := range c.Tokens() {
		out = append(out, tok.String())
	}
	return out
}

func TestUnquotedArgumentPreservesVariableReferences(t *testing.T) {
	file := parseCMakeFile(t, `directive(1234 Unquoted;List Nested${VAR}Ref)`)
	if len(file.Commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(file.Commands))
	}
	got := tokenStrings(file.Commands[0])
	want := []string{"1234", "Unquoted;List", "Nested${VAR}Ref"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestQuotedArgumentIsMarkedQuoted(t *testing.T) {
	file := parseCMakeFile(t, `directive("hello world" bare)`)
	toks := file.Commands[0].Tokens()
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if !toks[0].Quoted || toks[0].String() != "hello world" {
		t.Fatalf("got %#v, want quoted %q", toks[0], "hello world")
	}
	if toks[1].Quoted {
		t.Fatalf("got %#v, want unquoted", toks[1])
	}
}

func TestBracketArgumentIsNeverQuoted(t *testing.T) {
	file := parseCMakeFile(t, `directive([==[${var}]==])`)
	toks := file.Commands[0].Tokens()
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	if toks[0].Quoted || toks[0].String() != "${var}" {
		t.Fatalf("got %#v", toks[0])
	}
}

func TestEmptyArgumentList(t *testing.T) {
	for _, input := range []string{"directive()", "directive(  )", "directive(\n \n )"} {
		file := parseCMakeFile(t, input)
		if len(file.Commands[0].Tokens()) != 0 {
			t.Errorf("%q: expected zero arguments", input)
		}
	}
}

func TestCommentsAreIgnoredInArgumentLists(t *testing.T) {
	file := parseCMakeFile(t, "directive(a #comment\n b)")
	got := tokenStrings(file.Commands[0])
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v, want [a b]", got)
	}
}

func TestNestedArgumentListIsFlattened(t *testing.T) {
	// Flattening joins the nested list's elements with single spaces; the
	// original inter-token spacing is not preserved (it carries no meaning
	// in a condition).
	file := parseCMakeFile(t, `directive(A (B AND NOT(C OR D)))`)
	got := tokenStrings(file.Commands[0])
	want := []string{"A", "(B AND NOT (C OR D))"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMultipleCommandInvocations(t *testing.T) {
	file := parseCMakeFile(t, "one(\nCOMMAND   )\ntwo(\nCOMMAND\n\n  )\n")
	if len(file.Commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(file.Commands))
	}
	if file.Commands[0].Name != "one" || file.Commands[1].Name != "two" {
		t.Fatalf("got names %q, %q", file.Commands[0].Name, file.Commands[1].Name)
	}
}

func TestEscapeSequencesAreErased(t *testing.T) {
	file := parseCMakeFile(t, `directive(Escaped\ Space "Escaped\"Quote")`)
	got := tokenStrings(file.Commands[0])
	want := []string{"Escaped Space", `Escaped"Quote`}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
