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

package decode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cmakeparser/cmakelists/token"
)

func TestEngineFlagPresentAbsent(t *testing.T) {
	var verbatim bool
	e := NewEngine()
	e.Flag(&verbatim, "VERBATIM")
	if err := e.Run(nil); err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if verbatim {
		t.Fatal("flag should default false")
	}

	verbatim = false
	e = NewEngine()
	e.Flag(&verbatim, "VERBATIM")
	if err := e.Run(token.List("VERBATIM")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verbatim {
		t.Fatal("flag should be true when keyword present")
	}
}

func TestEngineFlagWithPayloadIsNotFlagError(t *testing.T) {
	var verbatim bool
	e := NewEngine()
	e.Flag(&verbatim, "VERBATIM")
	err := e.Run(token.List("VERBATIM", "x"))
	if _, ok := err.(*NotFlagError); !ok {
		t.Fatalf("expected *NotFlagError, got %#v", err)
	}
}

func TestEngineFlagPayloadFallsToDefaultBucket(t *testing.T) {
	// With a default bucket registered, a token after a flag keyword is
	// not a payload at all; it belongs to the bucket, the way
	// add_executable(name WIN32 a.cpp) routes a.cpp into its sources.
	var win32 bool
	var sources []token.Token
	e := NewEngine()
	e.Default(&sources)
	e.Flag(&win32, "WIN32")
	if err := e.Run(token.List("WIN32", "a.cpp")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !win32 {
		t.Fatal("expected WIN32 flag to be set")
	}
	want := token.List("a.cpp")
	if diff := cmp.Diff(want, sources, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineValueLastWins(t *testing.T) {
	var offset token.Token
	e := NewEngine()
	e.Value(&offset, "OFFSET")
	if err := e.Run(token.List("OFFSET", "1", "OFFSET", "2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offset.String() != "2" {
		t.Fatalf("expected last occurrence to win, got %q", offset.String())
	}
}

func TestEngineValuesAccumulateInOrder(t *testing.T) {
	var depends []token.Token
	e := NewEngine()
	e.Values(&depends, "DEPENDS")
	if err := e.Run(token.List("DEPENDS", "a", "b", "DEPENDS", "c")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := token.List("a", "b", "c")
	if diff := cmp.Diff(want, depends, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineOptionalValueAbsentLeavesNil(t *testing.T) {
	var docstring *token.Token
	e := NewEngine()
	e.OptionalValue(&docstring, "DOC")
	if err := e.Run(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docstring != nil {
		t.Fatalf("expected absent field to remain nil, got %v", docstring)
	}
}

func TestEngineDefaultBucketAbsorbsUnclaimedTokens(t *testing.T) {
	var compileOptions []token.Token
	e := NewEngine()
	e.Default(&compileOptions)
	if err := e.Run(token.List("-foo", "-bar")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := token.List("-foo", "-bar")
	if diff := cmp.Diff(want, compileOptions, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineUnknownOptionWithNoDefaultBucket(t *testing.T) {
	var verbatim bool
	e := NewEngine()
	e.Flag(&verbatim, "VERBATIM")
	err := e.Run(token.List("NOT_A_KEYWORD"))
	if _, ok := err.(*UnknownOptionError); !ok {
		t.Fatalf("expected *UnknownOptionError, got %#v", err)
	}
}

func TestEngineEnumMatchesTableOrFails(t *testing.T) {
	type libType int
	const (
		static libType = iota
		shared
	)
	table := map[string]libType{"STATIC": static, "SHARED": shared}

	var got libType
	e := NewEngine()
	Enum(e, &got, "TYPE", table)
	if err := e.Run(token.List("TYPE", "SHARED")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != shared {
		t.Fatalf("expected shared, got %v", got)
	}

	got = static
	e = NewEngine()
	Enum(e, &got, "TYPE", table)
	err := e.Run(token.List("TYPE", "BOGUS"))
	if _, ok := err.(*UnexpectedTokenError); !ok {
		t.Fatalf("expected *UnexpectedTokenError, got %#v", err)
	}
}

func TestEngineRecordSeqAppendsOncePerOccurrence(t *testing.T) {
	type cmdRecord struct {
		Name string
		Args []token.Token
	}
	decodeRecord := func(buf []token.Token) (cmdRecord, error) {
		if len(buf) == 0 {
			return cmdRecord{}, &TokenRequiredError{Field: "command name"}
		}
		return cmdRecord{Name: buf[0].String(), Args: buf[1:]}, nil
	}

	var commands []cmdRecord
	e := NewEngine()
	RecordSeq(e, &commands, "COMMAND", decodeRecord)
	if err := e.Run(token.List("COMMAND", "cmd1", "arg1", "arg2", "COMMAND", "cmd2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(commands), commands)
	}
	if commands[0].Name != "cmd1" || len(commands[0].Args) != 2 {
		t.Fatalf("unexpected first record: %+v", commands[0])
	}
	if commands[1].Name != "cmd2" || len(commands[1].Args) != 0 {
		t.Fatalf("unexpected second record: %+v", commands[1])
	}
}

func TestEngineTaggedRecordFlushesOnSiblingKeyword(t *testing.T) {
	type inner struct{ Value string }
	decodeInner := func(buf []token.Token) (inner, error) {
		if len(buf) != 1 {
			return inner{}, &UnexpectedTokenError{Expected: "one token", Found: "?"}
		}
		return inner{Value: buf[0].String()}, nil
	}

	var doc *inner
	var force bool
	e := NewEngine()
	TaggedRecord(e, &doc, "DOC", decodeInner)
	e.Flag(&force, "FORCE")
	if err := e.Run(token.List("DOC", "docstring", "FORCE")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc == nil || doc.Value != "docstring" {
		t.Fatalf("expected tagged record to decode, got %v", doc)
	}
	if !force {
		t.Fatal("expected FORCE flag to be set")
	}
}

func TestEngineDuplicateKeywordRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate keyword registration")
		}
	}()
	var a, b bool
	e := NewEngine()
	e.Flag(&a, "FORCE")
	e.Flag(&b, "FORCE")
}
