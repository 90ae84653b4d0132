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

	"bitbucket.org/creachadair/stringset"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cmakeparser/cmakelists/token"
)

func TestCursorTakeConsumesInOrder(t *testing.T) {
	c := NewCursor(token.List("a", "b", "c"))
	first, err := c.Take("first")
	if err != nil || first.String() != "a" {
		t.Fatalf("Take(1): %v, %v", first, err)
	}
	second, err := c.Take("second")
	if err != nil || second.String() != "b" {
		t.Fatalf("Take(2): %v, %v", second, err)
	}
	if diff := cmp.Diff(token.List("c"), c.Remaining(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorTakeOnEmptyFails(t *testing.T) {
	c := NewCursor(nil)
	_, err := c.Take("field")
	if _, ok := err.(*TokenRequiredError); !ok {
		t.Fatalf("expected *TokenRequiredError, got %#v", err)
	}
}

func TestCursorTakeOptionalAbsentDoesNotConsume(t *testing.T) {
	c := NewCursor(nil)
	_, ok := c.TakeOptional()
	if ok {
		t.Fatal("expected absent")
	}

	c = NewCursor(token.List("x", "y"))
	v, ok := c.TakeOptional()
	if !ok || v.String() != "x" {
		t.Fatalf("expected present x, got %v %v", v, ok)
	}
	if diff := cmp.Diff(token.List("y"), c.Remaining(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorTakeLiteralOnlyConsumesMatch(t *testing.T) {
	c := NewCursor(token.List("OBJECT", "a.cpp"))
	if !c.TakeLiteral("OBJECT") {
		t.Fatal("expected literal match")
	}
	if c.TakeLiteral("OBJECT") {
		t.Fatal("expected no further match")
	}
	if diff := cmp.Diff(token.List("a.cpp"), c.Remaining(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorRequireEmpty(t *testing.T) {
	c := NewCursor(nil)
	if err := c.RequireEmpty(); err != nil {
		t.Fatalf("unexpected error on empty cursor: %v", err)
	}
	c = NewCursor(token.List("leftover"))
	err := c.RequireEmpty()
	if ie, ok := err.(*IncompleteError); !ok || ie.Remaining != 1 {
		t.Fatalf("expected *IncompleteError{Remaining:1}, got %#v", err)
	}
}

func TestCursorTakeUntilSplitsAtStopKeyword(t *testing.T) {
	c := NewCursor(token.List("hello", "world", "CACHE", "STRING", "doc"))
	value := c.TakeUntil(true, "CACHE", "PARENT_SCOPE")
	if diff := cmp.Diff(token.List("hello", "world"), value, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(token.List("CACHE", "STRING", "doc"), c.Remaining(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorTakeUntilNoStopKeywordAllowEmpty(t *testing.T) {
	c := NewCursor(token.List("hello", "world"))
	value := c.TakeUntil(true, "CACHE")
	if value != nil {
		t.Fatalf("expected nil/absent value, got %v", value)
	}
	if diff := cmp.Diff(token.List("hello", "world"), c.Remaining(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("remaining should be untouched (-want +got):\n%s", diff)
	}
}

func TestCursorTakeUntilNoStopKeywordDisallowEmptyConsumesRest(t *testing.T) {
	c := NewCursor(token.List("hello", "world"))
	value := c.TakeUntil(false, "CACHE")
	if diff := cmp.Diff(token.List("hello", "world"), value, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
	if !c.Done() {
		t.Fatal("expected cursor to be fully drained")
	}
}

func TestCursorRequireDrained(t *testing.T) {
	c := NewCursor(nil)
	if err := c.RequireDrained(); err != nil {
		t.Fatalf("unexpected error on empty cursor: %v", err)
	}
	c = NewCursor(token.List("residue"))
	err := c.RequireDrained()
	if ne, ok := err.(*NotEmptyError); !ok || ne.Remaining != 1 {
		t.Fatalf("expected *NotEmptyError{Remaining:1}, got %#v", err)
	}
}

func TestCursorTakeLastLeavesPrefixUntouched(t *testing.T) {
	c := NewCursor(token.List("a", "b", "c"))
	last, err := c.TakeLast("mode")
	if err != nil || last.String() != "c" {
		t.Fatalf("TakeLast: %v, %v", last, err)
	}
	if diff := cmp.Diff(token.List("a", "b"), c.Remaining(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeEnumMatchesOrFails(t *testing.T) {
	table := map[string]int{"ON": 1, "OFF": 0}
	c := NewCursor(token.List("ON"))
	v, err := TakeEnum(c, "toggle", table)
	if err != nil || v != 1 {
		t.Fatalf("TakeEnum: %v, %v", v, err)
	}

	c = NewCursor(token.List("MAYBE"))
	_, err = TakeEnum(c, "toggle", table)
	if _, ok := err.(*UnexpectedTokenError); !ok {
		t.Fatalf("expected *UnexpectedTokenError, got %#v", err)
	}
}

func TestKeywordsPresentAndComplement(t *testing.T) {
	keywords := stringset.New("ALIAS", "OBJECT")
	present := token.List("name", "OBJECT", "a.cpp")
	absent := token.List("name", "a.cpp")

	if !KeywordsPresent(present, keywords) {
		t.Fatal("expected OBJECT to be detected as present")
	}
	if KeywordsPresent(absent, keywords) {
		t.Fatal("expected no match")
	}
	if !NoKeywordsPresent(absent, keywords) {
		t.Fatal("expected NoKeywordsPresent to hold when nothing matches")
	}
	if NoKeywordsPresent(present, keywords) {
		t.Fatal("expected NoKeywordsPresent to fail when a keyword matches")
	}
}

func TestTryArmsFirstSuccessWinsInDeclarationOrder(t *testing.T) {
	type result struct{ arm string }
	armA := func(c *Cursor) (result, error) {
		if !c.TakeLiteral("ALIAS") {
			return result{}, &UnexpectedTokenError{Expected: "ALIAS", Found: "?"}
		}
		return result{arm: "A"}, nil
	}
	armB := func(c *Cursor) (result, error) {
		return result{arm: "B"}, nil
	}

	v, rest, err := TryArms(token.List("ALIAS", "tgt"), armA, armB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.arm != "A" {
		t.Fatalf("expected arm A to win, got %q", v.arm)
	}
	if diff := cmp.Diff(token.List("tgt"), rest, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("rest mismatch (-want +got):\n%s", diff)
	}

	v, _, err = TryArms(token.List("plain"), armA, armB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.arm != "B" {
		t.Fatalf("expected fallback arm B, got %q", v.arm)
	}
}

func TestTryArmsAllFailReturnsLastError(t *testing.T) {
	armA := func(c *Cursor) (int, error) {
		return 0, &UnexpectedTokenError{Expected: "a", Found: "?"}
	}
	armB := func(c *Cursor) (int, error) {
		return 0, &TokenRequiredError{Field: "b"}
	}
	_, _, err := TryArms(token.List("x"), armA, armB)
	if _, ok := err.(*TokenRequiredError); !ok {
		t.Fatalf("expected the last arm's error, got %#v", err)
	}
}
