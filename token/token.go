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

// Package token defines the borrowed argument token shared by the tokenizer
// and the argument-decoder engine.
package token

import "fmt"

// Token is a single CMake command argument: an immutable view of a
// contiguous byte range from the source buffer, plus whether it was
// written in double-quoted form.
//
// Tokens are never copied or mutated by the decoder; they are borrowed
// for the lifetime of the input buffer.
type Token struct {
	Bytes  []byte
	Quoted bool
}

// New returns a Token wrapping s, useful in tests and for constructing
// synthetic keyword tokens.
func New(s string) Token {
	return Token{Bytes: []byte(s)}
}

// Quote returns a quoted Token wrapping s.
func Quote(s string) Token {
	return Token{Bytes: []byte(s), Quoted: true}
}

// String returns the token text as a string.
func (t Token) String() string {
	return string(t.Bytes)
}

// Equal reports whether t and o carry the same bytes, ignoring the
// quoted flag: keyword matching is textual only.
func (t Token) Equal(o Token) bool {
	return string(t.Bytes) == string(o.Bytes)
}

// Is reports whether t's text equals the literal keyword s.
func (t Token) Is(s string) bool {
	return string(t.Bytes) == s
}

// GoString supports %#v and makes test failure output readable.
func (t Token) GoString() string {
	if t.Quoted {
		return fmt.Sprintf("token.Quote(%q)", string(t.Bytes))
	}
	return fmt.Sprintf("token.New(%q)", string(t.Bytes))
}

// List is a convenience constructor for unquoted token slices in tests
// and call sites that build synthetic argument lists.
func List(ss ...string) []Token {
	toks := make([]Token, len(ss))
	for i, s := range ss {
		toks[i] = New(s)
	}
	return toks
}
