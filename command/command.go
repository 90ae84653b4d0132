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

// Package command holds the schema for every recognized CMake command: one
// Go type per command, decoded from a flat token slice by package decode's
// engine. It knows nothing about tokenizing or dispatch bookkeeping beyond
// its own registration; see dispatch.go for the identifier table.
package command

// Command is the tagged union of every decoded CMake command invocation.
// Each concrete type mirrors one command's documented option grammar.
type Command interface {
	// CommandIdentifier returns the CMake command name the value was
	// decoded from, e.g. "add_library".
	CommandIdentifier() string
}
