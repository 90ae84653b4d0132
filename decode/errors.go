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

// Package decode is the argument-decoder engine: the declarative schema
// primitives (field kinds and record modifiers) and the state machines that
// interpret them against a flat token slice. It knows nothing about any
// particular CMake command; package command builds schemas from these
// primitives.
package decode

import "fmt"

// MissingTokenError reports that a required field had no value by the time
// its enclosing record finished decoding.
type MissingTokenError struct {
	Field string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("missing required token for field %q", e.Field)
}

// UnknownCommandError reports a dispatcher miss: no schema is registered for
// the given command identifier.
type UnknownCommandError struct {
	Identifier string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Identifier)
}

// UnknownOptionError reports a token that matched no field's keyword and
// that no default bucket was available to absorb.
type UnknownOptionError struct {
	Keyword string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Keyword)
}

// UnexpectedTokenError reports a positional mismatch: the decoder expected
// one shape of token (e.g. an enum literal) and found another.
type UnexpectedTokenError struct {
	Expected string
	Found    string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: expected %s, found %q", e.Expected, e.Found)
}

// TokenRequiredError reports that input ran out in the middle of decoding a
// field that still needed at least one more token.
type TokenRequiredError struct {
	Field string
}

func (e *TokenRequiredError) Error() string {
	return fmt.Sprintf("token required for field %q but input was exhausted", e.Field)
}

// NotFlagError reports that a flag field's keyword was followed by a
// payload token it cannot accept.
type NotFlagError struct {
	Keyword string
}

func (e *NotFlagError) Error() string {
	return fmt.Sprintf("%q is a flag and takes no value", e.Keyword)
}

// IncompleteError reports that a `complete` record left trailing, unclaimed
// input after decoding.
type IncompleteError struct {
	Remaining int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d trailing token(s) after complete decode", e.Remaining)
}

// NotEmptyError reports that an allow_empty-less positional record found
// residue where none was expected.
type NotEmptyError struct {
	Remaining int
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("%d token(s) left over", e.Remaining)
}

// CommandParseError wraps any decode failure with the command identifier
// that produced it, for display at the Doc boundary.
type CommandParseError struct {
	Command string
	Err     error
}

func (e *CommandParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Err)
}

func (e *CommandParseError) Unwrap() error { return e.Err }
