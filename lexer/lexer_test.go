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

package lexer

import (
	"strings"
	"testing"

	plex "github.com/alecthomas/participle/lexer"
)

func lexString(t *testing.T, value string) []plex.Token {
	t.Helper()
	l, err := New().Lex(strings.NewReader(value))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	toks, err := plex.ConsumeAll(l)
	if err != nil {
		t.Fatalf("ConsumeAll: %v", err)
	}
	return toks
}

func significant(toks []plex.Token) []plex.Token {
	var r []plex.Token
	for _, tok := range toks {
		switch tok.Type {
		case Space, Newline, plex.EOF:
			continue
		default:
			r = append(r, tok)
		}
	}
	return r
}

func TestLexIdentifierAndArguments(t *testing.T) {
	toks := significant(lexString(t, "add_library( foo bar )\n"))
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Value)
	}
	want := []string{"add_library", "(", "foo", "bar", ")"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLexQuotedArgument(t *testing.T) {
	toks := significant(lexString(t, `set(x "hello world")`))
	var quoted *plex.Token
	for i := range toks {
		if toks[i].Type == Quoted {
			quoted = &toks[i]
		}
	}
	if quoted == nil {
		t.Fatalf("no Quoted token among %v", toks)
	}
	if quoted.Value != "hello world" {
		t.Fatalf("got %q, want %q", quoted.Value, "hello world")
	}
}

func TestLexBracketArgumentStripsLeadingNewline(t *testing.T) {
	toks := significant(lexString(t, "set(x [==[\nfirst\nsecond]==])"))
	var content *plex.Token
	for i := range toks {
		if toks[i].Type == BracketContent {
			content = &toks[i]
		}
	}
	if content == nil {
		t.Fatalf("no BracketContent token among %v", toks)
	}
	if content.Value != "first\nsecond" {
		t.Fatalf("got %q, want %q", content.Value, "first\nsecond")
	}
}

func TestLexCommentIsDropped(t *testing.T) {
	toks := significant(lexString(t, "foo(bar) # a comment\nbaz(qux)"))
	var names []string
	for _, tok := range toks {
		if tok.Type == Unquoted {
			names = append(names, tok.Value)
		}
	}
	want := []string{"foo", "bar", "baz", "qux"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestLexCommentFollowedByNewlineStillYieldsNewline(t *testing.T) {
	// Regression test: a naive comment-skipper can swallow the newline
	// that terminates the comment along with the comment text itself.
	toks := lexString(t, "foo() # comment\nbar()")
	sawNewlineBeforeBar := false
	for i, tok := range toks {
		if tok.Type == Newline {
			sawNewlineBeforeBar = true
		}
		if tok.Value == "bar" && !sawNewlineBeforeBar {
			t.Fatalf("expected a Newline token before %q at index %d: %v", tok.Value, i, toks)
		}
	}
}
