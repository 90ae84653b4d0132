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

package command

import (
	"strings"

	"github.com/cmakeparser/cmakelists/decode"
	"github.com/cmakeparser/cmakelists/token"
)

// schemaFunc decodes one command's token slice into its typed Command.
type schemaFunc func([]token.Token) (Command, error)

// registry maps a lowercase CMake command identifier to its schema. It is
// built up by register calls in each scope file's init, then never
// mutated again; Decode only ever reads from it.
var registry = map[string]schemaFunc{}

// register adds identifier to the dispatch table. It panics on a duplicate
// registration, since that can only be a programming error in this
// package, never a property of input.
func register(identifier string, fn schemaFunc) {
	if _, exists := registry[identifier]; exists {
		panic("command: duplicate registration for " + identifier)
	}
	registry[identifier] = fn
}

// Decode looks up identifier in the dispatch table and runs its schema
// against tokens. CMake command identifiers
// are case-insensitive (add_library, ADD_LIBRARY, and Add_Library all name
// the same command), so lookup normalizes to lowercase before indexing the
// registry; the identifier reported in errors preserves the caller's
// original spelling. An unregistered identifier yields UnknownCommandError;
// a schema failure is wrapped in CommandParseError naming the command.
func Decode(identifier string, tokens []token.Token) (Command, error) {
	fn, ok := registry[strings.ToLower(identifier)]
	if !ok {
		return nil, &decode.UnknownCommandError{Identifier: identifier}
	}
	cmd, err := fn(tokens)
	if err != nil {
		return nil, &decode.CommandParseError{Command: identifier, Err: err}
	}
	return cmd, nil
}

// Registered reports whether identifier has a schema, without decoding
// anything. Callers that want to skip unrecognized invocations rather
// than treat them as errors can use this to filter ahead of Decode.
func Registered(identifier string) bool {
	_, ok := registry[strings.ToLower(identifier)]
	return ok
}
