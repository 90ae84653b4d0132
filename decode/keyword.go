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

// fieldHandle is the engine's internal view of one registered field: its
// start/update/end hooks plus the buffer the engine accumulates for it
// while it is the active field.
type fieldHandle struct {
	name    string
	keyword string // "" for the default bucket, which has no keyword of its own
	isFlag  bool   // flags take no payload; Run reports NotFlagError for one
	buf     []token.Token

	// start fires when keyword is matched in the input. rest is every
	// token following the keyword. It reports whether the field becomes
	// the new active field (mode) and how many leading tokens of rest it
	// consumed immediately as an attached value (consumed), the
	// "transparent" case where a keyword's own value sits right after it.
	start func(rest []token.Token) (mode bool, consumed int, err error)

	// update absorbs a buffered window mid-decode, when a sibling keyword
	// preempts this field.
	update func(buf []token.Token) error

	// end finalizes with the last buffered window, at end of input.
	end func(buf []token.Token) error
}

// Engine is the keyword-decoder state machine: it holds one active field
// at a time, buffers tokens for it, and flips the active field when a
// registered keyword is recognized.
type Engine struct {
	byKeyword map[string]*fieldHandle
	keywords  stringset.Set
	def       *fieldHandle
	active    *fieldHandle
}

// NewEngine returns an Engine with no fields registered. Register fields
// (Flag, Value, Values, OptionalValue, Enum, TaggedRecord, RecordSeq,
// Default) before calling Run.
func NewEngine() *Engine {
	return &Engine{byKeyword: map[string]*fieldHandle{}, keywords: stringset.New()}
}

// Keywords returns the set of keywords registered so far. Keywords are
// unique across a record's fields, and the set gives untagged-arm
// dispatch (KeywordsPresent/NoKeywordsPresent in positional.go) something
// to test candidacy against without decoding.
func (e *Engine) Keywords() stringset.Set { return e.keywords }

func (e *Engine) addField(h *fieldHandle) {
	if e.keywords.Contains(h.keyword) {
		panic("decode: duplicate keyword registration for " + h.keyword)
	}
	e.keywords.Add(h.keyword)
	e.byKeyword[h.keyword] = h
}

// Default registers the record's default bucket: every token not claimed
// by another field's keyword is appended to dst. It is the engine's
// initial active field, and the field that resumes collection whenever a
// flag keyword closes without opening a window of its own.
func (e *Engine) Default(dst *[]token.Token) {
	h := &fieldHandle{name: "default"}
	h.update = func(buf []token.Token) error {
		*dst = append(*dst, buf...)
		return nil
	}
	h.end = h.update
	e.def = h
	e.active = h
}

// Flag registers a no-payload keyword: present once sets *dst true. A
// token following the keyword goes to the default bucket if one is
// registered; with no default bucket to claim it, Run reports it as a
// NotFlagError.
func (e *Engine) Flag(dst *bool, keyword string) {
	h := &fieldHandle{name: keyword, keyword: keyword, isFlag: true}
	h.start = func(rest []token.Token) (bool, int, error) {
		*dst = true
		return false, 0, nil
	}
	// Flags never become the active field, so no buffer ever reaches
	// update/end.
	noop := func([]token.Token) error { return nil }
	h.update, h.end = noop, noop
	e.addField(h)
}

// Value registers a single-token field. If the keyword recurs, the last
// occurrence wins. If the keyword never occurs, *dst is left unchanged and
// Run does not report the field as missing.
func (e *Engine) Value(dst *token.Token, keyword string) {
	h := &fieldHandle{name: keyword, keyword: keyword}
	h.start = func(rest []token.Token) (bool, int, error) { return true, 0, nil }
	flush := func(buf []token.Token) error {
		if len(buf) > 0 {
			*dst = buf[len(buf)-1]
		}
		return nil
	}
	h.update, h.end = flush, flush
	e.addField(h)
}

// OptionalValue registers a single-token field that is absent unless its
// keyword appears. *dst is left nil if the keyword never occurs.
func (e *Engine) OptionalValue(dst **token.Token, keyword string) {
	h := &fieldHandle{name: keyword, keyword: keyword}
	h.start = func(rest []token.Token) (bool, int, error) { return true, 0, nil }
	flush := func(buf []token.Token) error {
		if len(buf) == 0 {
			return nil
		}
		t := buf[len(buf)-1]
		*dst = &t
		return nil
	}
	h.update, h.end = flush, flush
	e.addField(h)
}

// Values registers a multi-value sequence field: repeated occurrences of
// keyword concatenate in source order, one append per flush.
func (e *Engine) Values(dst *[]token.Token, keyword string) {
	h := &fieldHandle{name: keyword, keyword: keyword}
	h.start = func(rest []token.Token) (bool, int, error) { return true, 0, nil }
	flush := func(buf []token.Token) error {
		*dst = append(*dst, buf...)
		return nil
	}
	h.update, h.end = flush, flush
	e.addField(h)
}

// Enum registers a keyword whose single attached value must be one of
// table's keys; repeats overwrite (last-wins), matching Value.
func Enum[T any](e *Engine, dst *T, keyword string, table map[string]T) {
	h := &fieldHandle{name: keyword, keyword: keyword}
	h.start = func(rest []token.Token) (bool, int, error) { return true, 0, nil }
	flush := func(buf []token.Token) error {
		if len(buf) == 0 {
			return nil
		}
		last := buf[len(buf)-1]
		v, ok := table[last.String()]
		if !ok {
			return &UnexpectedTokenError{Expected: keyword, Found: last.String()}
		}
		*dst = v
		return nil
	}
	h.update, h.end = flush, flush
	e.addField(h)
}

// TaggedRecord registers a single nested record, recognized by keyword,
// whose body is everything up to the next sibling keyword; decode builds
// the record from that window.
func TaggedRecord[T any](e *Engine, dst **T, keyword string, decode func([]token.Token) (T, error)) {
	h := &fieldHandle{name: keyword, keyword: keyword}
	h.start = func(rest []token.Token) (bool, int, error) { return true, 0, nil }
	flush := func(buf []token.Token) error {
		v, err := decode(buf)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	h.update, h.end = flush, flush
	e.addField(h)
}

// RecordSeq registers a repeatable nested record: each occurrence of
// keyword opens a new window extending to the next sibling keyword, and
// decode is invoked once per occurrence, appending to *dst in source
// order. This is add_custom_target's COMMAND ... COMMAND ... shape.
func RecordSeq[T any](e *Engine, dst *[]T, keyword string, decode func([]token.Token) (T, error)) {
	h := &fieldHandle{name: keyword, keyword: keyword}
	h.start = func(rest []token.Token) (bool, int, error) { return true, 0, nil }
	flush := func(buf []token.Token) error {
		v, err := decode(buf)
		if err != nil {
			return err
		}
		*dst = append(*dst, v)
		return nil
	}
	h.update, h.end = flush, flush
	e.addField(h)
}

// Run drives the state machine across tokens, dispatching each to
// whichever field's keyword matches it, or to the active field's buffer
// otherwise. A token that matches no keyword while no field (default or
// otherwise) is active is a NotFlagError when it trails directly behind a
// flag keyword (the flag was handed a payload it cannot accept), and an
// UnknownOptionError otherwise.
func (e *Engine) Run(tokens []token.Token) error {
	var lastFlag *fieldHandle
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if h, ok := e.byKeyword[t.String()]; ok {
			if e.active != nil {
				if err := e.active.update(e.active.buf); err != nil {
					return err
				}
				e.active.buf = nil
			}
			mode, consumed, err := h.start(tokens[i+1:])
			if err != nil {
				return err
			}
			i += 1 + consumed
			if mode {
				e.active = h
			} else {
				e.active = e.def
			}
			if h.isFlag && e.active == nil {
				lastFlag = h
			} else {
				lastFlag = nil
			}
			continue
		}
		if e.active == nil {
			if lastFlag != nil {
				return &NotFlagError{Keyword: lastFlag.keyword}
			}
			return &UnknownOptionError{Keyword: t.String()}
		}
		e.active.buf = append(e.active.buf, t)
		i++
	}
	if e.active != nil {
		if err := e.active.end(e.active.buf); err != nil {
			return err
		}
		e.active.buf = nil
	}
	return nil
}
