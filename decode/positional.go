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
	"bitbucket.org/creachadair/stringset"
	"github.com/cmakeparser/cmakelists/token"
)

// Cursor implements positional decoding: fields are consumed strictly
// left-to-right from the remaining tokens, with no keyword dispatch,
// until the field set is exhausted or a sibling's keyword is reached (the
// caller decides that boundary by calling Remaining and handing the tail
// to a keyword Engine of its own).
type Cursor struct {
	toks []token.Token
}

// NewCursor starts a positional decode over toks.
func NewCursor(toks []token.Token) *Cursor {
	return &Cursor{toks: toks}
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool { return len(c.toks) == 0 }

// Remaining returns the tokens not yet consumed.
func (c *Cursor) Remaining() []token.Token { return c.toks }

// RequireEmpty implements the `complete` modifier: any remaining input is
// an error.
func (c *Cursor) RequireEmpty() error {
	if len(c.toks) > 0 {
		return &IncompleteError{Remaining: len(c.toks)}
	}
	return nil
}

// RequireDrained is RequireEmpty for a purely positional record decoded
// against a bounded window: residue there is the field's own fault (its
// declaration claimed the whole window), reported as NotEmptyError rather
// than the record-level IncompleteError.
func (c *Cursor) RequireDrained() error {
	if len(c.toks) > 0 {
		return &NotEmptyError{Remaining: len(c.toks)}
	}
	return nil
}

// Take consumes exactly one token, the required single-value field kind.
// It fails with TokenRequiredError if input is exhausted.
func (c *Cursor) Take(field string) (token.Token, error) {
	if len(c.toks) == 0 {
		return token.Token{}, &TokenRequiredError{Field: field}
	}
	t := c.toks[0]
	c.toks = c.toks[1:]
	return t, nil
}

// TakeOptional is Take for an optional single-token field: it consumes a
// token if one remains, and reports "absent" (ok=false) otherwise. It
// never fails.
func (c *Cursor) TakeOptional() (t token.Token, ok bool) {
	if len(c.toks) == 0 {
		return token.Token{}, false
	}
	t = c.toks[0]
	c.toks = c.toks[1:]
	return t, true
}

// TakeLiteral consumes one token only if it textually equals lit, used for
// `Keyword`-typed sentinel fields (e.g. add_library's bare OBJECT/ALIAS
// discriminators) and for the literal K of a `keyword_after = K` field.
// ok is false, and no token is consumed, if the next token doesn't match.
func (c *Cursor) TakeLiteral(lit string) (ok bool) {
	if len(c.toks) == 0 || !c.toks[0].Is(lit) {
		return false
	}
	c.toks = c.toks[1:]
	return true
}

// TakeRest consumes every remaining token, the greedy sequence kind when
// it is the last field of a positional record.
func (c *Cursor) TakeRest() []token.Token {
	rest := c.toks
	c.toks = nil
	return rest
}

// TakeRestOptional is TakeRest but reports "absent" rather than an empty
// slice when nothing remains, distinguishing an omitted trailing sequence
// from a present-but-empty one.
func (c *Cursor) TakeRestOptional() ([]token.Token, bool) {
	if len(c.toks) == 0 {
		return nil, false
	}
	return c.TakeRest(), true
}

// TakeUntil consumes tokens up to (but not including) the first
// occurrence of any of
// stopKeywords, handing that window to the field and leaving the
// sibling's keyword for the enclosing keyword decoder. If none of
// stopKeywords occurs, allowEmpty decides whether the field claims
// everything (allowEmpty=false, the default) or nothing (allowEmpty=true).
func (c *Cursor) TakeUntil(allowEmpty bool, stopKeywords ...string) []token.Token {
	for i, t := range c.toks {
		for _, kw := range stopKeywords {
			if t.Is(kw) {
				window := c.toks[:i]
				c.toks = c.toks[i:]
				return window
			}
		}
	}
	if allowEmpty {
		return nil
	}
	return c.TakeRest()
}

// TakeLast consumes the final token of the remaining positional window,
// leaving everything before it untouched for earlier fields that have not
// yet run (used by records where a trailing token follows a greedy body,
// e.g. list(GET <list> <element-index>... <output-variable>)).
func (c *Cursor) TakeLast(field string) (token.Token, error) {
	if len(c.toks) == 0 {
		return token.Token{}, &TokenRequiredError{Field: field}
	}
	last := c.toks[len(c.toks)-1]
	c.toks = c.toks[:len(c.toks)-1]
	return last, nil
}

// Peek reports the text of the next token without consuming it, and
// whether one exists. It is used by untagged/transparent sum dispatch to
// decide which arm to try.
func (c *Cursor) Peek() (token.Token, bool) {
	if len(c.toks) == 0 {
		return token.Token{}, false
	}
	return c.toks[0], true
}

// TakeEnum consumes one token and matches it, case-sensitively, against
// table: a bare literal enum, not preceded by a keyword.
func TakeEnum[T any](c *Cursor, field string, table map[string]T) (T, error) {
	var zero T
	t, err := c.Take(field)
	if err != nil {
		return zero, err
	}
	v, ok := table[t.String()]
	if !ok {
		return zero, &UnexpectedTokenError{Expected: field, Found: t.String()}
	}
	return v, nil
}

// KeywordsPresent reports whether any token in toks textually matches a
// keyword in keywords. An untagged arm guarded this way is only eligible
// once one of its own keywords is seen, which lets callers skip a trial
// decode of arms that can't possibly apply.
func KeywordsPresent(toks []token.Token, keywords stringset.Set) bool {
	for _, t := range toks {
		if keywords.Contains(t.String()) {
			return true
		}
	}
	return false
}

// NoKeywordsPresent is the complement: an arm guarded this way is only
// eligible if none of excluded appear anywhere in toks, which is how
// sibling arms' discriminator keywords are kept out of a default-bucket
// arm.
func NoKeywordsPresent(toks []token.Token, excluded stringset.Set) bool {
	return !KeywordsPresent(toks, excluded)
}

// TryArms decodes an untagged alternative: each arm is attempted, in
// order, against a fresh Cursor over the same starting
// tokens (arms are side-effect-free trial decodes; nothing is committed
// until one succeeds). The first arm that returns a nil error wins; if
// every arm fails, the last arm's error is returned.
func TryArms[T any](toks []token.Token, arms ...func(*Cursor) (T, error)) (T, []token.Token, error) {
	var zero T
	var lastErr error
	for _, arm := range arms {
		c := NewCursor(toks)
		v, err := arm(c)
		if err == nil {
			return v, c.Remaining(), nil
		}
		lastErr = err
	}
	return zero, toks, lastErr
}
