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

// Package doc is the thin entry point tying the tokenizer (package ast) to
// the command decoder (package command): it drives the decoder across every
// invocation in a parsed file.
package doc

import (
	"fmt"

	"github.com/cmakeparser/cmakelists/ast"
	"github.com/cmakeparser/cmakelists/command"
)

// Doc wraps a parsed CMakeLists.txt file.
type Doc struct {
	file *ast.CMakeFile
}

// FromBytes parses raw listfile bytes into a Doc.
func FromBytes(b []byte) (*Doc, error) {
	file, err := ast.NewParser().ParseBytes(b)
	if err != nil {
		return nil, fmt.Errorf("cmakelists: parse: %w", err)
	}
	return &Doc{file: file}, nil
}

// FromString parses raw listfile text into a Doc.
func FromString(s string) (*Doc, error) {
	file, err := ast.NewParser().ParseString(s)
	if err != nil {
		return nil, fmt.Errorf("cmakelists: parse: %w", err)
	}
	return &Doc{file: file}, nil
}

// From wraps an already-parsed file, for callers that ran the parser
// themselves and kept the AST.
func From(file *ast.CMakeFile) *Doc {
	return &Doc{file: file}
}

// Commands decodes every invocation in the file, eagerly, and returns the
// first error encountered (later invocations are still decodable via
// CommandsIter, which does not abort the whole file on one bad invocation).
func (d *Doc) Commands() ([]command.Command, error) {
	var out []command.Command
	it := d.CommandsIter()
	for it.Next() {
		cmd, err := it.Command()
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// CommandsIter returns a lazy, per-invocation iterator. Unlike Commands, a
// decode failure on one invocation does not prevent the caller from
// continuing to the next.
func (d *Doc) CommandsIter() *CommandIter {
	return &CommandIter{invocations: d.file.Commands}
}

// CommandIter iterates over the decoded commands of a Doc one at a time.
type CommandIter struct {
	invocations []ast.CommandInvocation
	idx         int
	cur         command.Command
	err         error
}

// Next advances the iterator. It returns false once the invocations are
// exhausted.
func (it *CommandIter) Next() bool {
	if it.idx >= len(it.invocations) {
		return false
	}
	inv := it.invocations[it.idx]
	it.idx++
	it.cur, it.err = command.Decode(inv.Name, inv.Tokens())
	return true
}

// Command returns the result of the most recent Next call.
func (it *CommandIter) Command() (command.Command, error) {
	return it.cur, it.err
}
